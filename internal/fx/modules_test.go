package fx_test

import (
	"testing"

	"nba-bot/internal/config"
	fxmodules "nba-bot/internal/fx"
	"nba-bot/internal/server"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraphComplete(t *testing.T) {
	err := fx.ValidateApp(
		fxmodules.Module,
		fx.Invoke(func(*server.BotServer, *config.Config, zerolog.Logger) {}),
	)
	require.NoError(t, err)
}

func TestProvideLoggerAppliesLevel(t *testing.T) {
	l := fxmodules.ProvideLogger(zerolog.Nop().Level(zerolog.DebugLevel), &config.Config{LogLevel: "warn"})
	require.Equal(t, zerolog.WarnLevel, l.GetLevel())
}
