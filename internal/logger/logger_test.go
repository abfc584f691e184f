package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"nba-bot/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewStampsService(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf)
	l.Info().Msg("ready")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "nba-bot", line["service"])
	require.Equal(t, "1.0.0", line["version"])
	require.Equal(t, "ready", line["message"])
	require.Contains(t, line, "time")
	require.Contains(t, line, "caller")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	base := logger.NewWithWriter(&buf)
	require.Equal(t, zerolog.DebugLevel, base.GetLevel())

	require.Equal(t, zerolog.ErrorLevel, logger.SetLevel(base, "error").GetLevel())
	require.Equal(t, zerolog.DebugLevel, logger.SetLevel(base, "loud").GetLevel())
	require.Equal(t, zerolog.DebugLevel, logger.SetLevel(base, "").GetLevel())

	buf.Reset()
	warn := logger.SetLevel(base, "warn")
	warn.Info().Msg("dropped")
	require.Empty(t, buf.String())
}
