package fx

import (
	"nba-bot/internal/api"
	"nba-bot/internal/bot"
	"nba-bot/internal/chat"
	"nba-bot/internal/config"
	"nba-bot/internal/directory"
	"nba-bot/internal/logger"
	"nba-bot/internal/server"
	"nba-bot/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// The unleveled logger config.Load reports through before LOG_LEVEL is known.
const bootstrapLogger = `name:"bootstrap"`

func ProvideLogger(base zerolog.Logger, cfg *config.Config) zerolog.Logger {
	return logger.SetLevel(base, cfg.LogLevel)
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(logger.New, fx.ResultTags(bootstrapLogger))),
	fx.Provide(fx.Annotate(config.Load, fx.ParamTags(bootstrapLogger))),
	fx.Provide(fx.Annotate(ProvideLogger, fx.ParamTags(bootstrapLogger))),
	// upstream clients
	fx.Provide(api.NewHTTPClient),
	fx.Provide(api.NewStatsClient),
	fx.Provide(
		fx.Annotate(api.NewScoresClient, fx.As(new(service.ScoresSource))),
		fx.Annotate(api.NewStandingsClient, fx.As(new(service.StandingsSource))),
		fx.Annotate(api.NewPlayersClient, fx.As(new(directory.PlayerSource))),
	),
	fx.Provide(
		func(c *api.StatsClient) service.PlayerStatsProvider { return c },
		func(c *api.StatsClient) service.TeamStatsProvider { return c },
		func(c *api.StatsClient) service.HustleProvider { return c },
	),
	// player directory
	fx.Provide(directory.New),
	fx.Provide(
		func(d *directory.Directory) service.PlayerDirectory { return d },
		func(d *directory.Directory) server.DirectoryStatus { return d },
	),
	// svc
	fx.Provide(
		fx.Annotate(service.NewPlayerService, fx.As(new(bot.PlayerLookup))),
		fx.Annotate(service.NewTeamService, fx.As(new(bot.TeamLookup))),
		fx.Annotate(service.NewLeagueService, fx.As(new(bot.LeagueLookup))),
		fx.Annotate(service.NewHustleService, fx.As(new(bot.HustleLookup))),
	),
	fx.Provide(fx.Annotate(bot.NewDispatcher, fx.As(new(server.Dispatcher)))),
	// chat + server
	fx.Provide(chat.NewSender),
	fx.Provide(server.NewBotServer),
)
