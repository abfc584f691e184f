package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"nba-bot/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) []string {
	return []string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CHAT_ADAPTER", "")
	t.Setenv("SEASON", "2025-26")

	cfg, err := config.LoadArgs(zerolog.Nop(), missingEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, config.AdapterLog, cfg.ChatAdapter)
	require.Equal(t, "2025-26", cfg.Season)
	require.Contains(t, cfg.ScoresURL, "00_todays_scores.json")
}

func TestLoadPortFlag(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := config.LoadArgs(zerolog.Nop(), append(missingEnvFile(t), "--port", "9100"))
	require.NoError(t, err)
	require.Equal(t, "9100", cfg.ServerPort)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.env")
	require.NoError(t, os.WriteFile(path, []byte("BOT_NAME=dunkbot\n"), 0o600))
	t.Setenv("BOT_NAME", "")
	require.NoError(t, os.Unsetenv("BOT_NAME"))

	cfg, err := config.LoadArgs(zerolog.Nop(), []string{"-e", path})
	require.NoError(t, err)
	require.Equal(t, "dunkbot", cfg.BotName)
}

func TestLoadTelegramRequiresToken(t *testing.T) {
	t.Setenv("CHAT_ADAPTER", "telegram")
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := config.LoadArgs(zerolog.Nop(), missingEnvFile(t))
	require.Error(t, err)
}

func TestLoadUnknownAdapter(t *testing.T) {
	t.Setenv("CHAT_ADAPTER", "irc")

	_, err := config.LoadArgs(zerolog.Nop(), missingEnvFile(t))
	require.Error(t, err)
}

func TestCurrentSeason(t *testing.T) {
	require.Equal(t, "2026-27", config.CurrentSeason(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2025-26", config.CurrentSeason(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "1999-00", config.CurrentSeason(time.Date(1999, time.November, 1, 0, 0, 0, 0, time.UTC)))
}
