package logger

import (
	"io"
	"os"

	"nba-bot/internal/constants"

	"github.com/rs/zerolog"
)

func New() zerolog.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter builds the service logger on w: JSON lines stamped with the
// service name and version, debug until SetLevel narrows it.
func NewWithWriter(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(w).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Caller().
		Str("service", constants.ServiceName).
		Str("version", constants.ServiceVersion).
		Logger()
}

// SetLevel parses a level name such as "info" or "warn"; unknown names keep debug.
func SetLevel(logger zerolog.Logger, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		logger.Warn().Str("level", level).Msg("unknown log level, keeping debug")
		return logger
	}
	return logger.Level(lvl)
}
