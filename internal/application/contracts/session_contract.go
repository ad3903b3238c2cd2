package contracts

import (
	"context"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
)

// SessionService 页面会话契约
// 所有输入事件都会先清除上一次的提示条
type SessionService interface {
	// Open 获取会话, 不存在时创建新会话
	Open(ctx context.Context, id string) (*entities.Session, error)

	// Snapshot 返回会话的只读副本, 会话正忙时 busy 为 true
	Snapshot(ctx context.Context, id string) (snapshot *entities.Session, busy bool, err error)

	// Activity 会话当前阻塞操作的提示, 不等待会话锁
	Activity(ctx context.Context, id string) string

	// SubmitURL 提交URL并抓取视频信息
	SubmitURL(ctx context.Context, id, url, outputDir string) error

	// Download 下载下拉框中选中的格式
	Download(ctx context.Context, id, selection, outputDir string) error

	// Reset 清空会话
	Reset(ctx context.Context, id string) error

	// SweepIdle 清理空闲会话
	SweepIdle(ctx context.Context) (int, error)
}
