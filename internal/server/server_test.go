package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"nba-bot/internal/bot"
	"nba-bot/internal/server"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type fakeDispatcher struct{}

func (fakeDispatcher) Dispatch(_ context.Context, text string) (string, error) {
	switch text {
	case "nba scores":
		return "Celtics at *Knicks*\nFinal | 101 - 110", nil
	case "nba crash":
		return "", errors.New("boom")
	default:
		return "", bot.ErrNoRoute
	}
}

type sent struct {
	room     string
	text     string
	markdown bool
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (r *recordingSender) Send(_ context.Context, room, text string) error {
	return r.record(sent{room: room, text: text})
}

func (r *recordingSender) SendMarkdown(_ context.Context, room, text string) error {
	return r.record(sent{room: room, text: text, markdown: true})
}

func (r *recordingSender) record(s sent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, s)
	return nil
}

func (r *recordingSender) messages() []sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sent(nil), r.sent...)
}

type fakeDirectory bool

func (f fakeDirectory) Loaded() bool { return bool(f) }

func newServer(t *testing.T, sender *recordingSender) *httptest.Server {
	t.Helper()
	s := server.NewBotServer(fakeDispatcher{}, sender, fakeDirectory(true), zerolog.Nop())
	srv := httptest.NewServer(server.NewRouter(s, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestCommandRPC(t *testing.T) {
	srv := newServer(t, &recordingSender{})
	client := connect.NewClient[wrapperspb.StringValue, wrapperspb.StringValue](srv.Client(), srv.URL+server.CommandProcedure)

	resp, err := client.CallUnary(t.Context(), connect.NewRequest(wrapperspb.String("nba scores")))
	require.NoError(t, err)
	require.Equal(t, "Celtics at *Knicks*\nFinal | 101 - 110", resp.Msg.GetValue())
	require.NotEmpty(t, resp.Header().Get("X-Request-ID"))

	_, err = client.CallUnary(t.Context(), connect.NewRequest(wrapperspb.String("hello")))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.CallUnary(t.Context(), connect.NewRequest(wrapperspb.String("nba crash")))
	require.Equal(t, connect.CodeInternal, connect.CodeOf(err))
}

func TestWebhook(t *testing.T) {
	sender := &recordingSender{}
	srv := newServer(t, sender)

	resp := post(t, srv.URL+"/webhook", `{"room":"general","text":"nba scores"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, map[string]string{"room": "general", "text": "Celtics at *Knicks*\nFinal | 101 - 110"}, body)
	require.Equal(t, []sent{{room: "general", text: "Celtics at *Knicks*\nFinal | 101 - 110", markdown: true}}, sender.messages())
}

func TestWebhookNoRoute(t *testing.T) {
	sender := &recordingSender{}
	srv := newServer(t, sender)

	resp := post(t, srv.URL+"/webhook", `{"room":"general","text":"good morning"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, sender.messages())
}

func TestWebhookErrors(t *testing.T) {
	srv := newServer(t, &recordingSender{})

	resp := post(t, srv.URL+"/webhook", `{"room":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv.URL+"/webhook", `{"room":"general","text":"nba crash"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	failing := newServer(t, &recordingSender{err: errors.New("network down")})
	resp = post(t, failing.URL+"/webhook", `{"room":"general","text":"nba scores"}`)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestTelegramWebhook(t *testing.T) {
	sender := &recordingSender{}
	srv := newServer(t, sender)

	resp := post(t, srv.URL+"/webhook/telegram",
		`{"update_id":1,"message":{"message_id":7,"text":"nba scores","chat":{"id":-100123}}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []sent{{room: "-100123", text: "Celtics at *Knicks*\nFinal | 101 - 110", markdown: true}}, sender.messages())

	// updates without a command are acknowledged and ignored
	resp = post(t, srv.URL+"/webhook/telegram", `{"update_id":2,"message":{"text":"hi","chat":{"id":1}}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = post(t, srv.URL+"/webhook/telegram", `{"update_id":3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sender.messages(), 1)

	resp = post(t, srv.URL+"/webhook/telegram", `not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newServer(t, &recordingSender{})

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "nba-bot", body["service"])
	require.Equal(t, true, body["directory_loaded"])
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t, &recordingSender{})

	req, err := http.NewRequestWithContext(t.Context(), http.MethodOptions, srv.URL+server.CommandProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
