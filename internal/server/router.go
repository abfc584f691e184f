package server

import (
	"net/http"

	"nba-bot/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// NewRouter mounts the RPC, webhook and health routes behind CORS and request ids.
func NewRouter(s *BotServer, logger zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.Recover(logger))

	router.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	router.HandleFunc("/webhook", s.Webhook).Methods(http.MethodPost)
	router.HandleFunc("/webhook/telegram", s.TelegramWebhook).Methods(http.MethodPost)

	path, handler := s.NewCommandHandler()
	router.Handle(path, handler).Methods(http.MethodPost, http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}
