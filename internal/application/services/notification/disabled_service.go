package notification

import (
	"context"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
)

// DisabledNotificationService 未配置 Telegram 时使用, 所有通知直接忽略
type DisabledNotificationService struct{}

// NewDisabledNotificationService 创建禁用的通知服务
func NewDisabledNotificationService() contracts.NotificationService {
	return &DisabledNotificationService{}
}

func (s *DisabledNotificationService) NotifyDownloadComplete(ctx context.Context, req contracts.DownloadNotificationRequest) error {
	return nil
}

func (s *DisabledNotificationService) NotifyDownloadFailed(ctx context.Context, req contracts.DownloadNotificationRequest) error {
	return nil
}

// IsEnabled 始终返回false
func (s *DisabledNotificationService) IsEnabled() bool {
	return false
}
