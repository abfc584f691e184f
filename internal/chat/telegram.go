package chat

import (
	"context"
	"fmt"
	"strings"

	"nba-bot/internal/api"
	"nba-bot/internal/domain"

	"github.com/rs/zerolog"
)

const parseModeMarkdown = "Markdown"

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// TelegramSender posts replies through the Bot API sendMessage method.
type TelegramSender struct {
	http     *api.HTTPClient
	endpoint string
	token    string
	logger   zerolog.Logger
}

func NewTelegramSender(http *api.HTTPClient, baseURL, token string, logger zerolog.Logger) *TelegramSender {
	return &TelegramSender{
		http:     http,
		endpoint: fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(baseURL, "/"), token),
		token:    token,
		logger:   logger,
	}
}

func (s *TelegramSender) Send(ctx context.Context, room, text string) error {
	return s.send(ctx, sendMessageRequest{ChatID: room, Text: text})
}

func (s *TelegramSender) SendMarkdown(ctx context.Context, room, text string) error {
	return s.send(ctx, sendMessageRequest{ChatID: room, Text: text, ParseMode: parseModeMarkdown})
}

func (s *TelegramSender) send(ctx context.Context, msg sendMessageRequest) error {
	if _, err := s.http.PostJSON(ctx, s.endpoint, msg); err != nil {
		// the endpoint carries the bot token, keep it out of logs and errors
		cause := err.Error()
		if s.token != "" {
			cause = strings.ReplaceAll(cause, s.token, "<token>")
		}
		s.logger.Error().Str("error", cause).Str("chat_id", msg.ChatID).Msg("failed to send telegram message")
		return fmt.Errorf("%w: telegram sendMessage to %s", domain.ErrUpstream, msg.ChatID)
	}
	s.logger.Debug().Str("chat_id", msg.ChatID).Int("len", len(msg.Text)).Msg("telegram message sent")
	return nil
}
