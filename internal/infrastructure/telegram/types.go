package telegram

import "time"

// 通知类型
const (
	MessageDownloadCompleted = "download_completed"
	MessageDownloadFailed    = "download_failed"
)

// NotificationMessage 推送到 Telegram 的通知
type NotificationMessage struct {
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	FormatID  string    `json:"format_id"`
	OutputDir string    `json:"output_dir"`
	Elapsed   string    `json:"elapsed"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
