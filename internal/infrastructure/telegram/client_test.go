package telegram

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/easayliu/ytdl-web/internal/infrastructure/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	fail map[int64]bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg := c.(tgbotapi.MessageConfig)
	if f.fail[msg.ChatID] {
		return tgbotapi.Message{}, errors.New("forbidden")
	}
	f.sent = append(f.sent, msg)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func sampleMessage() *NotificationMessage {
	return &NotificationMessage{
		Type:      MessageDownloadFailed,
		URL:       "https://www.youtube.com/watch?v=abc&t=<1>",
		FormatID:  "137",
		OutputDir: "/tmp",
		Error:     "ERROR: Requested format is not available",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestFormatNotification(t *testing.T) {
	text := formatNotification(sampleMessage())

	for _, want := range []string{"Download failed", "v=abc&amp;t=&lt;1&gt;", "<code>137</code>", "Requested format is not available", "2024-01-02 03:04:05"} {
		if !strings.Contains(text, want) {
			t.Errorf("notification should contain %q, got:\n%s", want, text)
		}
	}
}

func TestSendNotification(t *testing.T) {
	fake := &fakeSender{fail: map[int64]bool{2: true}}
	client := &Client{
		config: &config.TelegramConfig{Enabled: true, ChatIDs: []int64{1, 2, 3}},
		bot:    fake,
	}

	if err := client.SendNotification(sampleMessage()); err != nil {
		t.Fatalf("partial failure should not return error: %v", err)
	}
	if len(fake.sent) != 2 {
		t.Errorf("expected 2 delivered messages, got %d", len(fake.sent))
	}
	if fake.sent[0].ParseMode != tgbotapi.ModeHTML {
		t.Errorf("unexpected parse mode: %s", fake.sent[0].ParseMode)
	}
}

func TestSendNotification_AllFailed(t *testing.T) {
	fake := &fakeSender{fail: map[int64]bool{1: true}}
	client := &Client{
		config: &config.TelegramConfig{Enabled: true, ChatIDs: []int64{1}},
		bot:    fake,
	}

	if err := client.SendNotification(sampleMessage()); err == nil {
		t.Error("expected error when every chat fails")
	}
}

func TestSendNotification_NoChats(t *testing.T) {
	client := &Client{config: &config.TelegramConfig{Enabled: true}, bot: &fakeSender{}}
	if err := client.SendNotification(sampleMessage()); err != nil {
		t.Errorf("no chats should be a no-op, got %v", err)
	}
}
