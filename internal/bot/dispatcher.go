// Package bot routes chat text to the stat services and renders their replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"nba-bot/internal/config"
	"nba-bot/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// ErrNoRoute is returned for text that does not name a command.
var ErrNoRoute = errors.New("no command matched")

type PlayerLookup interface {
	Find(ctx context.Context, fragment string) (*domain.Player, error)
	Summary(ctx context.Context, playerID int) (string, error)
}

type TeamLookup interface {
	Resolve(name string) (int, error)
	Stats(ctx context.Context, teamID int) (*domain.TeamStats, error)
	Roster(ctx context.Context, teamID int) ([]domain.Player, error)
	Coaches(ctx context.Context, teamID int) ([]domain.Coach, error)
}

type LeagueLookup interface {
	Scores(ctx context.Context) ([]domain.Game, error)
	Standings(ctx context.Context) ([]domain.ConferenceStanding, error)
}

type HustleLookup interface {
	Leaders(ctx context.Context) ([]domain.HustleStatCategory, error)
}

type handlerFunc func(ctx context.Context, arg string) string

type route struct {
	name    string
	pattern *regexp.Regexp
	handle  handlerFunc
}

type Dispatcher struct {
	botName string
	prefix  *regexp.Regexp
	routes  []route
	players PlayerLookup
	teams   TeamLookup
	league  LeagueLookup
	hustle  HustleLookup
	logger  zerolog.Logger
}

func NewDispatcher(
	cfg *config.Config,
	players PlayerLookup,
	teams TeamLookup,
	league LeagueLookup,
	hustle HustleLookup,
	logger zerolog.Logger,
) *Dispatcher {
	d := &Dispatcher{
		botName: cfg.BotName,
		players: players,
		teams:   teams,
		league:  league,
		hustle:  hustle,
		logger:  logger,
	}
	if cfg.BotName != "" {
		d.prefix = regexp.MustCompile(`(?i)^\s*@?` + regexp.QuoteMeta(cfg.BotName) + `\S*?[:,]?\s+`)
	}
	d.routes = []route{
		{"player", regexp.MustCompile(`(?i)^nba player (.+)`), d.player},
		{"team", regexp.MustCompile(`(?i)^nba team (.+)`), d.team},
		{"roster", regexp.MustCompile(`(?i)^nba roster (.+)`), d.roster},
		{"coaches", regexp.MustCompile(`(?i)^nba coaches (.+)`), d.coaches},
		{"scores", regexp.MustCompile(`(?i)^nba scores\b`), d.scores},
		{"standings", regexp.MustCompile(`(?i)^nba standings?\b`), d.standings},
		{"hustle", regexp.MustCompile(`(?i)^nba hustle\b`), d.hustleLeaders},
		{"help", regexp.MustCompile(`(?i)^nba help\b`), d.help},
	}
	return d
}

// Dispatch answers one chat message. The bot name or an @mention may precede
// the command. Text that matches no command yields ErrNoRoute.
func (d *Dispatcher) Dispatch(ctx context.Context, text string) (string, error) {
	command := text
	if d.prefix != nil {
		command = d.prefix.ReplaceAllString(command, "")
	}
	command = strings.TrimSpace(command)

	for _, r := range d.routes {
		m := r.pattern.FindStringSubmatch(command)
		if m == nil {
			continue
		}
		arg := ""
		if len(m) > 1 {
			arg = strings.TrimSpace(m[1])
		}

		invocation, err := gonanoid.New()
		if err != nil {
			return "", fmt.Errorf("failed to generate nanoid: %w", err)
		}
		logger := d.requestLogger(ctx).With().Str("invocation_id", invocation).Str("command", r.name).Logger()
		logger.Info().Str("arg", arg).Msg("command received")

		reply := r.handle(logger.WithContext(ctx), arg)

		logger.Debug().Int("reply_len", len(reply)).Msg("command answered")
		return reply, nil
	}

	return "", ErrNoRoute
}

// requestLogger prefers the logger the transport attached to ctx.
func (d *Dispatcher) requestLogger(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return d.logger
}

func (d *Dispatcher) player(ctx context.Context, name string) string {
	player, err := d.players.Find(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Sprintf("Couldn't find player with name \"%s\"", name)
	}
	if err != nil {
		return errorReply(ctx, "player stats", err)
	}

	summary, err := d.players.Summary(ctx, player.ID)
	if err != nil {
		return errorReply(ctx, "player stats", err)
	}
	return summary
}

func (d *Dispatcher) team(ctx context.Context, name string) string {
	teamID, err := d.teams.Resolve(name)
	if err != nil {
		return fmt.Sprintf("Couldn't find team with name \"%s\"", name)
	}

	stats, err := d.teams.Stats(ctx, teamID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Sprintf("Couldn't find stats for team \"%d\"", teamID)
	}
	if err != nil {
		return errorReply(ctx, "team stats", err)
	}
	return RenderTeamStats(stats)
}

func (d *Dispatcher) roster(ctx context.Context, name string) string {
	teamID, err := d.teams.Resolve(name)
	if err != nil {
		return fmt.Sprintf("Couldn't find team with name \"%s\"", name)
	}

	players, err := d.teams.Roster(ctx, teamID)
	if err != nil {
		return errorReply(ctx, "team roster", err)
	}
	return RenderRoster(players)
}

func (d *Dispatcher) coaches(ctx context.Context, name string) string {
	teamID, err := d.teams.Resolve(name)
	if err != nil {
		return fmt.Sprintf("Couldn't find team with name \"%s\"", name)
	}

	coaches, err := d.teams.Coaches(ctx, teamID)
	if err != nil {
		return errorReply(ctx, "team coaches", err)
	}
	return RenderCoaches(coaches)
}

func (d *Dispatcher) scores(ctx context.Context, _ string) string {
	games, err := d.league.Scores(ctx)
	if err != nil {
		return errorReply(ctx, "scores", err)
	}
	return RenderScores(games)
}

func (d *Dispatcher) standings(ctx context.Context, _ string) string {
	conferences, err := d.league.Standings(ctx)
	if err != nil {
		return errorReply(ctx, "standings", err)
	}
	return RenderStandings(conferences)
}

func (d *Dispatcher) hustleLeaders(ctx context.Context, _ string) string {
	categories, err := d.hustle.Leaders(ctx)
	if err != nil {
		return errorReply(ctx, "hustle leaders", err)
	}
	return RenderHustle(categories)
}

func (d *Dispatcher) help(_ context.Context, _ string) string {
	return RenderHelp(d.botName)
}
