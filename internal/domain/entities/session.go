package entities

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/easayliu/ytdl-web/internal/domain/valueobjects"
)

// BannerLevel 提示条级别
type BannerLevel string

const (
	BannerInfo    BannerLevel = "info"
	BannerSuccess BannerLevel = "success"
	BannerWarning BannerLevel = "warning"
	BannerError   BannerLevel = "error"
)

// Banner 页面提示条, 保留到下一次输入事件
type Banner struct {
	Level   BannerLevel `json:"level"`
	Message string      `json:"message"`
}

// Session 单个浏览器的页面状态
// 同一会话的输入事件通过 Lock/Unlock 串行处理
type Session struct {
	ID        string                 `json:"id"`
	URL       string                 `json:"url"`
	OutputDir string                 `json:"output_dir"`
	Selection string                 `json:"selection"`
	Info      *VideoInfo             `json:"info,omitempty"` // 最近一次成功抓取的快照
	State     valueobjects.ViewState `json:"state"`
	Banners   []Banner               `json:"banners"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`

	mu       sync.Mutex
	activity atomic.Value // 当前阻塞操作的提示文本, 无锁读取
}

// NewSession 创建空闲会话
func NewSession(id, outputDir string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		OutputDir: outputDir,
		State:     valueobjects.ViewStateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Lock 获取会话锁
func (s *Session) Lock() { s.mu.Lock() }

// TryLock 尝试获取会话锁, 会话忙时返回 false
func (s *Session) TryLock() bool { return s.mu.TryLock() }

// Unlock 释放会话锁
func (s *Session) Unlock() { s.mu.Unlock() }

// SetActivity 设置当前阻塞操作的提示, 空串表示空闲
func (s *Session) SetActivity(message string) {
	s.activity.Store(message)
}

// Activity 当前阻塞操作的提示, 不需要持有会话锁
func (s *Session) Activity() string {
	if v, ok := s.activity.Load().(string); ok {
		return v
	}
	return ""
}

// Touch 刷新最后活动时间
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// ClearBanners 清除上一次事件留下的提示
func (s *Session) ClearBanners() {
	s.Banners = nil
}

// AddBanner 追加提示
func (s *Session) AddBanner(level BannerLevel, message string) {
	s.Banners = append(s.Banners, Banner{Level: level, Message: message})
}

// LoadInfo 整体替换视频信息快照并进入 Loaded
func (s *Session) LoadInfo(info *VideoInfo) {
	s.Info = info
	s.Selection = ""
	s.State = valueobjects.ViewStateLoaded
}

// Clear 回到初始空闲状态, 保留下载目录
func (s *Session) Clear() {
	s.URL = ""
	s.Selection = ""
	s.Info = nil
	s.State = valueobjects.ViewStateIdle
	s.Banners = nil
}

// IdleSince 距最后一次活动的时长
func (s *Session) IdleSince(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}

// Snapshot 复制会话字段, 调用方需持有会话锁
// Info 本身只读, 共享指针即可
func (s *Session) Snapshot() *Session {
	banners := make([]Banner, len(s.Banners))
	copy(banners, s.Banners)
	return &Session{
		ID:        s.ID,
		URL:       s.URL,
		OutputDir: s.OutputDir,
		Selection: s.Selection,
		Info:      s.Info,
		State:     s.State,
		Banners:   banners,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
