package service

import (
	"context"
	"fmt"

	"nba-bot/internal/domain"

	"github.com/rs/zerolog"
)

type ScoresSource interface {
	FetchScores(ctx context.Context) ([]domain.Game, error)
}

type StandingsSource interface {
	FetchStandings(ctx context.Context) ([]domain.ConferenceStanding, error)
}

// LeagueService serves the league-wide views: today's games and the standings.
type LeagueService struct {
	scores    ScoresSource
	standings StandingsSource
	logger    zerolog.Logger
}

func NewLeagueService(scores ScoresSource, standings StandingsSource, logger zerolog.Logger) *LeagueService {
	return &LeagueService{scores: scores, standings: standings, logger: logger}
}

func (s *LeagueService) Scores(ctx context.Context) ([]domain.Game, error) {
	games, err := s.scores.FetchScores(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch scores")
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}
	s.logger.Debug().Int("count", len(games)).Msg("scores fetched")
	return games, nil
}

func (s *LeagueService) Standings(ctx context.Context) ([]domain.ConferenceStanding, error) {
	conferences, err := s.standings.FetchStandings(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch standings")
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}
	return conferences, nil
}
