package service

import (
	"context"
	"fmt"
	"strings"

	"nba-bot/internal/domain"
	"nba-bot/internal/format"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const careerURLFormat = "http://nba.com/stats/player/%d/career"

type PlayerStatsProvider interface {
	PlayerInfo(ctx context.Context, playerID int) (*domain.PlayerInfo, error)
	PlayerProfile(ctx context.Context, playerID int) ([]domain.SeasonAverages, error)
}

type PlayerDirectory interface {
	FindPlayerByName(ctx context.Context, fragment string) (*domain.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID int) ([]domain.Player, error)
}

type PlayerService struct {
	stats     PlayerStatsProvider
	directory PlayerDirectory
	logger    zerolog.Logger
}

func NewPlayerService(stats PlayerStatsProvider, directory PlayerDirectory, logger zerolog.Logger) *PlayerService {
	return &PlayerService{stats: stats, directory: directory, logger: logger}
}

// Find resolves a name fragment to a player from the directory.
func (s *PlayerService) Find(ctx context.Context, fragment string) (*domain.Player, error) {
	player, err := s.directory.FindPlayerByName(ctx, fragment)
	if err != nil {
		s.logger.Error().Err(err).Str("fragment", fragment).Msg("failed to search player directory")
		return nil, err
	}
	if player == nil {
		s.logger.Debug().Str("fragment", fragment).Msg("no player matched")
		return nil, fmt.Errorf("player %q: %w", fragment, domain.ErrNotFound)
	}
	return player, nil
}

// Summary fetches player info and career averages together and renders them.
// Either call failing fails the whole summary.
func (s *PlayerService) Summary(ctx context.Context, playerID int) (string, error) {
	g, gCtx := errgroup.WithContext(ctx)
	var info *domain.PlayerInfo
	var seasons []domain.SeasonAverages

	g.Go(func() error {
		var err error
		info, err = s.stats.PlayerInfo(gCtx, playerID)
		return err
	})

	g.Go(func() error {
		var err error
		seasons, err = s.stats.PlayerProfile(gCtx, playerID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Int("player_id", playerID).Msg("failed to fetch player summary")
		return "", fmt.Errorf("failed to fetch player %d: %w", playerID, err)
	}

	// the profile lists seasons oldest first
	if len(seasons) == 0 {
		return "", fmt.Errorf("player %d has no regular season totals: %w", playerID, domain.ErrNotFound)
	}
	averages := seasons[len(seasons)-1]

	s.logger.Debug().Int("player_id", playerID).Str("season", averages.SeasonID).Msg("player summary fetched")
	return RenderPlayerSummary(info, averages), nil
}

func RenderPlayerSummary(info *domain.PlayerInfo, avg domain.SeasonAverages) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s #%s\n", info.DisplayName, info.Jersey)
	fmt.Fprintf(&b, "%s %s | %s\n", info.TeamCity, info.TeamName, info.Position)
	fmt.Fprintf(&b, "%s %s lbs\n", info.Height, info.Weight)
	b.WriteString("\nSeason averages\n")
	b.WriteString(RenderAverages(avg))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, careerURLFormat, info.ID)
	return b.String()
}

func RenderAverages(avg domain.SeasonAverages) string {
	n := format.Number
	pct := format.Percentage
	return format.TwoColumnTable([]string{
		n(avg.GP) + " GP",
		n(avg.MIN) + " MIN",
		n(avg.PTS) + " PTS",
		n(avg.FGM) + " FGM",
		n(avg.FGA) + " FGA",
		pct(avg.FGPct) + " FG%",
		n(avg.FG3M) + " 3PM",
		n(avg.FG3A) + " 3PA",
		pct(avg.FG3Pct) + " 3P%",
		n(avg.FTM) + " FTM",
		n(avg.FTA) + " FTA",
		pct(avg.FTPct) + " FT%",
		n(avg.OREB) + " OREB",
		n(avg.DREB) + " DREB",
		n(avg.REB) + " REB",
		n(avg.AST) + " AST",
		n(avg.STL) + " STL",
		n(avg.BLK) + " BLK",
	})
}
