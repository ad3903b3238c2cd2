package notification

import (
	"context"
	"time"

	"github.com/easayliu/ytdl-web/internal/application/contracts"
	"github.com/easayliu/ytdl-web/internal/infrastructure/telegram"
)

// messageSender 由 telegram.Client 实现
type messageSender interface {
	SendNotification(msg *telegram.NotificationMessage) error
}

// AppNotificationService 通过 Telegram 推送下载结果
type AppNotificationService struct {
	sender messageSender
}

// NewAppNotificationService 创建通知服务
func NewAppNotificationService(client *telegram.Client) contracts.NotificationService {
	return &AppNotificationService{sender: client}
}

// NotifyDownloadComplete 下载成功通知
func (s *AppNotificationService) NotifyDownloadComplete(ctx context.Context, req contracts.DownloadNotificationRequest) error {
	return s.sender.SendNotification(buildMessage(telegram.MessageDownloadCompleted, req))
}

// NotifyDownloadFailed 下载失败通知
func (s *AppNotificationService) NotifyDownloadFailed(ctx context.Context, req contracts.DownloadNotificationRequest) error {
	return s.sender.SendNotification(buildMessage(telegram.MessageDownloadFailed, req))
}

// IsEnabled 始终为 true
func (s *AppNotificationService) IsEnabled() bool {
	return true
}

func buildMessage(msgType string, req contracts.DownloadNotificationRequest) *telegram.NotificationMessage {
	msg := &telegram.NotificationMessage{
		Type:      msgType,
		URL:       req.URL,
		FormatID:  req.FormatID,
		OutputDir: req.OutputDir,
		Error:     req.ErrorMessage,
		Timestamp: time.Now(),
	}
	if req.Duration > 0 {
		msg.Elapsed = req.Duration.Round(time.Second).String()
	}
	return msg
}
