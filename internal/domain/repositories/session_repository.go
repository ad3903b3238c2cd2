package repositories

import (
	"context"
	"time"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
)

// SessionRepository 会话存储接口
type SessionRepository interface {
	Create(ctx context.Context, outputDir string) (*entities.Session, error)
	GetByID(ctx context.Context, id string) (*entities.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteIdle 删除空闲超过 ttl 的会话, 返回删除数量
	DeleteIdle(ctx context.Context, ttl time.Duration) (int, error)
	Count(ctx context.Context) int
}
