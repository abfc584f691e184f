package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"nba-bot/internal/bot"
	"nba-bot/internal/chat"
	"nba-bot/internal/constants"

	"github.com/rs/zerolog"
)

type telegramUpdate struct {
	UpdateID int              `json:"update_id"`
	Message  *telegramMessage `json:"message"`
}

type telegramMessage struct {
	MessageID int    `json:"message_id"`
	Text      string `json:"text"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
}

type webhookMessage struct {
	Room string `json:"room"`
	Text string `json:"text"`
}

type healthResponse struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	Version         string `json:"version"`
	DirectoryLoaded bool   `json:"directory_loaded"`
}

// TelegramWebhook handles Bot API updates. Telegram redelivers anything that
// is not a 2xx, so only malformed updates are rejected.
func (s *BotServer) TelegramWebhook(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var update telegramUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid update", err)
		return
	}
	if update.Message == nil || update.Message.Text == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	room := strconv.FormatInt(update.Message.Chat.ID, 10)
	reply, err := s.dispatcher.Dispatch(r.Context(), update.Message.Text)
	switch {
	case errors.Is(err, bot.ErrNoRoute):
	case err != nil:
		logger.Error().Err(err).Int("update_id", update.UpdateID).Msg("failed to dispatch update")
	default:
		if err := chat.Reply(r.Context(), s.sender, room, reply); err != nil {
			logger.Error().Err(err).Str("room", room).Msg("failed to deliver reply")
		}
	}
	w.WriteHeader(http.StatusOK)
}

// Webhook takes {room, text}, delivers the reply through the configured sender
// and echoes it back. Messages that name no command get 204.
func (s *BotServer) Webhook(w http.ResponseWriter, r *http.Request) {
	var msg webhookMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid message", err)
		return
	}

	reply, err := s.dispatcher.Dispatch(r.Context(), msg.Text)
	if errors.Is(err, bot.ErrNoRoute) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to dispatch message", err)
		return
	}

	if err := chat.Reply(r.Context(), s.sender, msg.Room, reply); err != nil {
		respondError(w, http.StatusBadGateway, "failed to deliver reply", err)
		return
	}
	respondJSON(w, http.StatusOK, webhookMessage{Room: msg.Room, Text: reply})
}

func (s *BotServer) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		Service:         constants.ServiceName,
		Version:         constants.ServiceVersion,
		DirectoryLoaded: s.directory.Loaded(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]any{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
