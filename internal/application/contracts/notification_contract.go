package contracts

import (
	"context"
	"time"
)

// DownloadNotificationRequest 下载结果通知
type DownloadNotificationRequest struct {
	URL          string        `json:"url"`
	FormatID     string        `json:"format_id"`
	OutputDir    string        `json:"output_dir"`
	Duration     time.Duration `json:"duration"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// NotificationService 通知服务契约
type NotificationService interface {
	NotifyDownloadComplete(ctx context.Context, req DownloadNotificationRequest) error
	NotifyDownloadFailed(ctx context.Context, req DownloadNotificationRequest) error
	IsEnabled() bool
}
