package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"nba-bot/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const (
	AdapterLog      = "log"
	AdapterTelegram = "telegram"
)

type Config struct {
	ServerPort     string
	LogLevel       string
	BotName        string
	ChatAdapter    string
	TelegramToken  string
	TelegramAPIURL string
	StatsBaseURL   string
	ScoresURL      string
	StandingsURL   string
	PlayersURL     string
	Season         string
}

func Load(logger zerolog.Logger) (*Config, error) {
	return LoadArgs(logger, os.Args[1:])
}

// LoadArgs reads the optional env file named by --env-file, then the environment,
// then applies flag overrides.
func LoadArgs(logger zerolog.Logger, args []string) (*Config, error) {
	flags := pflag.NewFlagSet(constants.ServiceName, pflag.ContinueOnError)
	envFile := flags.StringP("env-file", "e", ".env", "path to a .env file")
	port := flags.StringP("port", "p", "", "HTTP port, overrides SERVER_PORT")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := godotenv.Load(*envFile); err != nil {
		logger.Debug().Str("env_file", *envFile).Msg(".env file not found, using environment variables or defaults")
	}

	now := time.Now()
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		BotName:        getEnv("BOT_NAME", "hubot"),
		ChatAdapter:    strings.ToLower(getEnv("CHAT_ADAPTER", AdapterLog)),
		TelegramToken:  getEnv("TELEGRAM_TOKEN", ""),
		TelegramAPIURL: getEnv("TELEGRAM_API_URL", constants.TelegramURL),
		StatsBaseURL:   getEnv("STATS_BASE_URL", constants.StatsBaseURL),
		ScoresURL:      getEnv("SCORES_URL", fmt.Sprintf(constants.ScoresURLFormat, seasonStartYear(now))),
		StandingsURL:   getEnv("STANDINGS_URL", constants.StandingsURL),
		PlayersURL:     getEnv("PLAYERS_URL", constants.PlayersURL),
		Season:         getEnv("SEASON", CurrentSeason(now)),
	}
	if *port != "" {
		cfg.ServerPort = *port
	}

	switch cfg.ChatAdapter {
	case AdapterLog:
	case AdapterTelegram:
		if cfg.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_TOKEN is required for the %s adapter", AdapterTelegram)
		}
	default:
		return nil, fmt.Errorf("unknown CHAT_ADAPTER %q", cfg.ChatAdapter)
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("bot_name", cfg.BotName).
		Str("chat_adapter", cfg.ChatAdapter).
		Str("season", cfg.Season).
		Msg("configuration loaded")

	return cfg, nil
}

// CurrentSeason renders the season in progress at t, e.g. "2026-27".
func CurrentSeason(t time.Time) string {
	start := seasonStartYear(t)
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

func seasonStartYear(t time.Time) int {
	if t.Month() >= constants.SeasonStartMonth {
		return t.Year()
	}
	return t.Year() - 1
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
