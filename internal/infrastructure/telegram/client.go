package telegram

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	"github.com/easayliu/ytdl-web/pkg/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender 发送消息的最小接口, 便于替换 BotAPI
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Client struct {
	config *config.TelegramConfig
	bot    sender
}

// NewClient 连接 Telegram Bot API
func NewClient(cfg *config.TelegramConfig) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info("Telegram bot connected successfully", "username", bot.Self.UserName)
	return &Client{config: cfg, bot: bot}, nil
}

// SendMessage 发送 HTML 格式消息
func (c *Client) SendMessage(chatID int64, text string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram bot not initialized")
	}

	msg := tgbotapi.NewMessage(chatID, cleanUTF8(text))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// SendNotification 推送给所有配置的 chat, 单个失败不影响其它
func (c *Client) SendNotification(msg *NotificationMessage) error {
	if len(c.config.ChatIDs) == 0 {
		logger.Debug("No telegram chat IDs configured")
		return nil
	}

	text := formatNotification(msg)

	var failed int
	for _, chatID := range c.config.ChatIDs {
		if err := c.SendMessage(chatID, text); err != nil {
			logger.Error("Failed to send notification", "chat_id", chatID, "error", err)
			failed++
			continue
		}
		logger.Debug("Notification sent", "chat_id", chatID, "type", msg.Type)
	}

	if failed == len(c.config.ChatIDs) {
		return fmt.Errorf("notification failed for all %d chats", failed)
	}
	return nil
}

func formatNotification(msg *NotificationMessage) string {
	var b strings.Builder
	switch msg.Type {
	case MessageDownloadCompleted:
		b.WriteString("✅ <b>Download completed</b>\n\n")
	case MessageDownloadFailed:
		b.WriteString("❌ <b>Download failed</b>\n\n")
	default:
		b.WriteString("<b>" + html.EscapeString(msg.Type) + "</b>\n\n")
	}

	fmt.Fprintf(&b, "🔗 %s\n", html.EscapeString(msg.URL))
	fmt.Fprintf(&b, "🎞 Format: <code>%s</code>\n", html.EscapeString(msg.FormatID))
	fmt.Fprintf(&b, "📁 %s\n", html.EscapeString(msg.OutputDir))
	if msg.Elapsed != "" {
		fmt.Fprintf(&b, "⏱ %s\n", html.EscapeString(msg.Elapsed))
	}
	if msg.Error != "" {
		fmt.Fprintf(&b, "🚨 <code>%s</code>\n", html.EscapeString(msg.Error))
	}
	fmt.Fprintf(&b, "⏰ %s", msg.Timestamp.Format("2006-01-02 15:04:05"))
	return b.String()
}

// cleanUTF8 确保文本是有效的UTF-8编码
func cleanUTF8(text string) string {
	if !utf8.ValidString(text) {
		return strings.ToValidUTF8(text, "?")
	}
	return text
}
