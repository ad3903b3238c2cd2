package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter 抽取后端调用限速器
// 同一进程内所有会话共享, 避免短时间大量请求触发站点风控
type Limiter struct {
	mu      sync.RWMutex
	qps     int
	limiter *rate.Limiter
}

// New 创建限速器, qps <= 0 表示不限制
func New(qps int) *Limiter {
	l := &Limiter{}
	l.SetQPS(qps)
	return l
}

// Wait 阻塞直到获得令牌或 ctx 结束
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.RLock()
	limiter := l.limiter
	l.mu.RUnlock()

	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// Allow 非阻塞地尝试获取令牌
func (l *Limiter) Allow() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.limiter.Allow()
}

// SetQPS 动态调整限速, 桶容量等于 qps
func (l *Limiter) SetQPS(qps int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if qps <= 0 {
		l.qps = 0
		l.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	l.qps = qps
	l.limiter = rate.NewLimiter(rate.Limit(qps), qps)
}

// QPS 当前限速, 0 表示不限制
func (l *Limiter) QPS() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.qps
}

// Unlimited 是否不限速
func (l *Limiter) Unlimited() bool {
	return l.QPS() == 0
}
