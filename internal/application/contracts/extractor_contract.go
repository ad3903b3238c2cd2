package contracts

import (
	"context"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
)

// Extractor 视频抽取能力
// 实现方负责把后端的松散结构转换为 entities.VideoInfo,
// 返回错误的 Error() 即为面向用户的原始错误信息
type Extractor interface {
	// Name 后端名称
	Name() string

	// Extract 获取视频元数据和全部可用格式, 不下载
	Extract(ctx context.Context, url string) (*entities.VideoInfo, error)

	// Download 按格式ID下载到 req.OutputDir, 文件名模板 %(title)s.%(ext)s
	// 阻塞直到完成或失败
	Download(ctx context.Context, req entities.DownloadRequest) error
}
