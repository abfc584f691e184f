// Package chat delivers replies to the chat network the bot is attached to.
package chat

import (
	"context"
	"fmt"

	"nba-bot/internal/api"
	"nba-bot/internal/config"

	"github.com/rs/zerolog"
)

type Sender interface {
	Send(ctx context.Context, room, text string) error
}

// MarkdownSender is implemented by networks that render Markdown replies.
type MarkdownSender interface {
	Sender
	SendMarkdown(ctx context.Context, room, text string) error
}

// Reply sends text as Markdown when the sender supports it and as plain text otherwise.
// Empty replies are dropped.
func Reply(ctx context.Context, sender Sender, room, text string) error {
	if text == "" {
		return nil
	}
	if md, ok := sender.(MarkdownSender); ok {
		return md.SendMarkdown(ctx, room, text)
	}
	return sender.Send(ctx, room, text)
}

// NewSender picks the sender for the configured adapter.
func NewSender(cfg *config.Config, http *api.HTTPClient, logger zerolog.Logger) (Sender, error) {
	switch cfg.ChatAdapter {
	case config.AdapterTelegram:
		return NewTelegramSender(http, cfg.TelegramAPIURL, cfg.TelegramToken, logger), nil
	case config.AdapterLog:
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unknown chat adapter %q", cfg.ChatAdapter)
	}
}

// LogSender writes replies to the log. It backs the plain webhook and local runs.
type LogSender struct {
	logger zerolog.Logger
}

func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, room, text string) error {
	s.logger.Info().Str("room", room).Str("text", text).Msg("reply")
	return nil
}
