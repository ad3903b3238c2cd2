package contracts

import (
	"context"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
)

// VideoService 视频业务契约
type VideoService interface {
	// Fetch 获取视频信息, 失败返回 FETCH_FAILED
	Fetch(ctx context.Context, url string) (*entities.VideoInfo, error)

	// Download 下载指定格式, 失败返回 DOWNLOAD_FAILED
	Download(ctx context.Context, req entities.DownloadRequest) error

	// BackendName 当前使用的抽取后端
	BackendName() string
}
