package chat_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"nba-bot/internal/api"
	"nba-bot/internal/chat"
	"nba-bot/internal/config"
	"nba-bot/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordedMessage struct {
	path string
	body map[string]string
}

func newTelegram(t *testing.T, status int) (*httptest.Server, func() []recordedMessage) {
	t.Helper()
	var mu sync.Mutex
	var got []recordedMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body := map[string]string{}
		_ = json.Unmarshal(raw, &body)

		mu.Lock()
		got = append(got, recordedMessage{path: r.URL.Path, body: body})
		mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []recordedMessage {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedMessage(nil), got...)
	}
}

func TestReplyUsesMarkdownOnTelegram(t *testing.T) {
	srv, messages := newTelegram(t, http.StatusOK)
	sender := chat.NewTelegramSender(api.NewHTTPClient(), srv.URL+"/", "123:abc", zerolog.Nop())

	require.NoError(t, chat.Reply(t.Context(), sender, "42", "*Knicks* at Celtics"))

	got := messages()
	require.Len(t, got, 1)
	require.Equal(t, "/bot123:abc/sendMessage", got[0].path)
	require.Equal(t, map[string]string{
		"chat_id":    "42",
		"text":       "*Knicks* at Celtics",
		"parse_mode": "Markdown",
	}, got[0].body)
}

func TestTelegramPlainSend(t *testing.T) {
	srv, messages := newTelegram(t, http.StatusOK)
	sender := chat.NewTelegramSender(api.NewHTTPClient(), srv.URL, "t", zerolog.Nop())

	require.NoError(t, sender.Send(t.Context(), "42", "hi"))
	got := messages()
	require.Len(t, got, 1)
	require.NotContains(t, got[0].body, "parse_mode")
}

func TestTelegramFailureHidesToken(t *testing.T) {
	srv, _ := newTelegram(t, http.StatusBadRequest)
	sender := chat.NewTelegramSender(api.NewHTTPClient(), srv.URL, "secret-token", zerolog.Nop())

	err := chat.Reply(t.Context(), sender, "42", "hi")
	require.ErrorIs(t, err, domain.ErrUpstream)
	require.NotContains(t, err.Error(), "secret-token")
}

func TestReplyDropsEmptyText(t *testing.T) {
	srv, messages := newTelegram(t, http.StatusOK)
	sender := chat.NewTelegramSender(api.NewHTTPClient(), srv.URL, "t", zerolog.Nop())

	require.NoError(t, chat.Reply(t.Context(), sender, "42", ""))
	require.Empty(t, messages())
}

func TestNewSender(t *testing.T) {
	sender, err := chat.NewSender(&config.Config{ChatAdapter: config.AdapterLog}, api.NewHTTPClient(), zerolog.Nop())
	require.NoError(t, err)
	require.IsType(t, &chat.LogSender{}, sender)
	require.NoError(t, chat.Reply(t.Context(), sender, "room", "text"))

	sender, err = chat.NewSender(&config.Config{ChatAdapter: config.AdapterTelegram, TelegramToken: "t"}, api.NewHTTPClient(), zerolog.Nop())
	require.NoError(t, err)
	require.IsType(t, &chat.TelegramSender{}, sender)

	_, err = chat.NewSender(&config.Config{ChatAdapter: "irc"}, api.NewHTTPClient(), zerolog.Nop())
	require.Error(t, err)
}
