package repository

import (
	"context"
	"sync"
	"time"

	"github.com/easayliu/ytdl-web/internal/domain/entities"
	"github.com/easayliu/ytdl-web/internal/domain/repositories"
	"github.com/easayliu/ytdl-web/internal/shared/errors"
	"github.com/google/uuid"
)

// SessionRepository 内存会话存储
// 会话只存在于进程内, 重启即丢失
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entities.Session
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*entities.Session),
	}
}

// Create 创建新会话
func (r *SessionRepository) Create(ctx context.Context, outputDir string) (*entities.Session, error) {
	session := entities.NewSession(uuid.New().String(), outputDir)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session, nil
}

// GetByID 根据ID获取会话
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, errors.NewServiceError(errors.ErrorCodeNotFound, "session not found: "+id)
	}
	return session, nil
}

// Delete 删除会话
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// DeleteIdle 删除空闲超过 ttl 的会话
// 正在处理请求的会话拿不到锁, 本轮跳过
func (r *SessionRepository) DeleteIdle(ctx context.Context, ttl time.Duration) (int, error) {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !session.TryLock() {
			continue
		}
		idle := session.IdleSince(now) > ttl
		session.Unlock()

		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Count 当前会话数量
func (r *SessionRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
