// Package directory keeps the league-wide player list for the life of the process.
package directory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"nba-bot/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const playersKey = "players"

type PlayerSource interface {
	FetchPlayers(ctx context.Context) ([]domain.Player, error)
}

// Directory fetches the player list once and serves every later read from
// memory. A failed fetch is not remembered; the next call tries again.
type Directory struct {
	source PlayerSource
	logger zerolog.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	players []domain.Player
	loaded  bool
}

func New(source PlayerSource, logger zerolog.Logger) *Directory {
	return &Directory{source: source, logger: logger}
}

func (d *Directory) cached() ([]domain.Player, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.players, d.loaded
}

// Loaded reports whether the list has been fetched successfully.
func (d *Directory) Loaded() bool {
	_, ok := d.cached()
	return ok
}

// Players returns the cached list, fetching it on first use. Concurrent first
// callers share a single fetch. The returned slice is shared and must not be modified.
func (d *Directory) Players(ctx context.Context) ([]domain.Player, error) {
	if players, ok := d.cached(); ok {
		return players, nil
	}

	v, err, shared := d.group.Do(playersKey, func() (any, error) {
		if players, ok := d.cached(); ok {
			return players, nil
		}

		// callers joining the flight must not inherit the first caller's cancellation
		d.logger.Info().Msg("fetching player directory")
		players, err := d.source.FetchPlayers(context.WithoutCancel(ctx))
		if err != nil {
			d.logger.Error().Err(err).Msg("failed to fetch player directory")
			return nil, err
		}

		d.mu.Lock()
		d.players = players
		d.loaded = true
		d.mu.Unlock()

		d.logger.Info().Int("count", len(players)).Msg("player directory cached")
		return players, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}

	d.logger.Debug().Bool("shared", shared).Msg("player directory loaded")
	return v.([]domain.Player), nil
}

// FindPlayerByName returns the first player whose full name contains fragment,
// ignoring case. It returns nil when nothing matches.
func (d *Directory) FindPlayerByName(ctx context.Context, fragment string) (*domain.Player, error) {
	players, err := d.Players(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(fragment)
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.FullName), needle) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

// ListPlayersByTeam returns the players whose team id equals teamID, in directory order.
func (d *Directory) ListPlayersByTeam(ctx context.Context, teamID int) ([]domain.Player, error) {
	players, err := d.Players(ctx)
	if err != nil {
		return nil, err
	}

	roster := []domain.Player{}
	for _, p := range players {
		if p.TeamID == teamID {
			roster = append(roster, p)
		}
	}
	return roster, nil
}
