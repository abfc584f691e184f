package service

import (
	"context"
	"fmt"

	"nba-bot/internal/api"
	"nba-bot/internal/domain"

	"github.com/rs/zerolog"
)

type TeamStatsProvider interface {
	TeamStats(ctx context.Context, teamID int) (*domain.TeamStats, error)
	Coaches(ctx context.Context, teamID int) ([]domain.Coach, error)
}

type TeamService struct {
	stats     TeamStatsProvider
	directory PlayerDirectory
	logger    zerolog.Logger
}

func NewTeamService(stats TeamStatsProvider, directory PlayerDirectory, logger zerolog.Logger) *TeamService {
	return &TeamService{stats: stats, directory: directory, logger: logger}
}

func (s *TeamService) Resolve(name string) (int, error) {
	id, ok := api.TeamIDFromName(name)
	if !ok {
		return 0, fmt.Errorf("team %q: %w", name, domain.ErrNotFound)
	}
	if team, ok := api.TeamByID(id); ok {
		s.logger.Debug().Str("query", name).Str("team", team.Abbreviation).Msg("team resolved")
	}
	return id, nil
}

// Stats returns the team's season line; ErrNotFound when the provider has none.
func (s *TeamService) Stats(ctx context.Context, teamID int) (*domain.TeamStats, error) {
	stats, err := s.stats.TeamStats(ctx, teamID)
	if err != nil {
		s.logger.Error().Err(err).Int("team_id", teamID).Msg("failed to fetch team stats")
		return nil, fmt.Errorf("failed to fetch team stats: %w", err)
	}
	if stats == nil {
		return nil, fmt.Errorf("stats for team %d: %w", teamID, domain.ErrNotFound)
	}
	return stats, nil
}

func (s *TeamService) Roster(ctx context.Context, teamID int) ([]domain.Player, error) {
	players, err := s.directory.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		s.logger.Error().Err(err).Int("team_id", teamID).Msg("failed to list roster")
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	s.logger.Debug().Int("team_id", teamID).Int("count", len(players)).Msg("roster listed")
	return players, nil
}

func (s *TeamService) Coaches(ctx context.Context, teamID int) ([]domain.Coach, error) {
	coaches, err := s.stats.Coaches(ctx, teamID)
	if err != nil {
		s.logger.Error().Err(err).Int("team_id", teamID).Msg("failed to fetch coaches")
		return nil, fmt.Errorf("failed to fetch coaches: %w", err)
	}
	return coaches, nil
}
