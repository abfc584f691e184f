package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"nba-bot/internal/config"
	"nba-bot/internal/domain"
)

const (
	leagueID          = "00"
	seasonTypeRegular = "Regular Season"

	setTeamStats     = "LeagueDashTeamStats"
	setCoaches       = "Coaches"
	setPlayerInfo    = "CommonPlayerInfo"
	setRegularSeason = "SeasonTotalsRegularSeason"
)

// StatsClient talks to the stats.nba.com endpoints.
type StatsClient struct {
	http    *HTTPClient
	baseURL string
	season  string
}

func NewStatsClient(http *HTTPClient, cfg *config.Config) *StatsClient {
	return &StatsClient{
		http:    http,
		baseURL: strings.TrimRight(cfg.StatsBaseURL, "/"),
		season:  cfg.Season,
	}
}

func (c *StatsClient) endpoint(name string, params url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.baseURL, name, params.Encode())
}

func (c *StatsClient) fetch(ctx context.Context, name string, params url.Values) (*statsResponse, error) {
	return doRequest[statsResponse](ctx, c.http, c.endpoint(name, params))
}

// TeamStats returns per-game team stats for the configured season, or nil when
// the provider has no row for the team.
func (c *StatsClient) TeamStats(ctx context.Context, teamID int) (*domain.TeamStats, error) {
	params := url.Values{
		"LeagueID":       {leagueID},
		"MeasureType":    {"Base"},
		"PerMode":        {"PerGame"},
		"PlusMinus":      {"N"},
		"PaceAdjust":     {"N"},
		"Rank":           {"N"},
		"Season":         {c.season},
		"SeasonType":     {seasonTypeRegular},
		"TeamID":         {strconv.Itoa(teamID)},
		"LastNGames":     {"0"},
		"Month":          {"0"},
		"OpponentTeamID": {"0"},
		"PORound":        {"0"},
		"Period":         {"0"},
		"TwoWay":         {"0"},
	}
	resp, err := c.fetch(ctx, "leaguedashteamstats", params)
	if err != nil {
		return nil, err
	}
	set, err := resp.set(setTeamStats)
	if err != nil {
		return nil, err
	}

	for _, rec := range set.Records() {
		f := fieldReader{rec: rec}
		stats := domain.TeamStats{
			TeamID:   f.int("TEAM_ID"),
			TeamName: f.string("TEAM_NAME"),
			W:        f.int("W"),
			L:        f.int("L"),
			PTS:      f.float("PTS"),
			AST:      f.float("AST"),
			REB:      f.float("REB"),
		}
		if f.err != nil {
			return nil, f.err
		}
		if stats.TeamID == teamID {
			return &stats, nil
		}
	}
	return nil, nil
}

func (c *StatsClient) Coaches(ctx context.Context, teamID int) ([]domain.Coach, error) {
	params := url.Values{
		"LeagueID": {leagueID},
		"Season":   {c.season},
		"TeamID":   {strconv.Itoa(teamID)},
	}
	resp, err := c.fetch(ctx, "commonteamroster", params)
	if err != nil {
		return nil, err
	}
	set, err := resp.set(setCoaches)
	if err != nil {
		return nil, err
	}

	coaches := make([]domain.Coach, 0, len(set.RowSet))
	for _, rec := range set.Records() {
		f := fieldReader{rec: rec}
		coach := domain.Coach{
			Name:   f.string("COACH_NAME"),
			Type:   f.string("COACH_TYPE"),
			School: f.string("SCHOOL"),
		}
		if f.err != nil {
			return nil, f.err
		}
		coaches = append(coaches, coach)
	}
	return coaches, nil
}

func (c *StatsClient) PlayerInfo(ctx context.Context, playerID int) (*domain.PlayerInfo, error) {
	params := url.Values{
		"LeagueID": {leagueID},
		"PlayerID": {strconv.Itoa(playerID)},
	}
	resp, err := c.fetch(ctx, "commonplayerinfo", params)
	if err != nil {
		return nil, err
	}
	set, err := resp.set(setPlayerInfo)
	if err != nil {
		return nil, err
	}

	records := set.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("player %d: %w", playerID, domain.ErrNotFound)
	}
	f := fieldReader{rec: records[0]}
	rawHeight := f.string("HEIGHT")
	info := &domain.PlayerInfo{
		ID:          playerID,
		DisplayName: f.string("DISPLAY_FIRST_LAST"),
		Jersey:      f.string("JERSEY"),
		TeamCity:    f.string("TEAM_CITY"),
		TeamName:    f.string("TEAM_NAME"),
		Position:    f.string("POSITION"),
		Weight:      f.string("WEIGHT"),
	}
	if f.err != nil {
		return nil, f.err
	}
	if info.Height, err = domain.ParseHeight(rawHeight); err != nil {
		return nil, fmt.Errorf("%w: player %d: %w", domain.ErrDecode, playerID, err)
	}
	return info, nil
}

// PlayerProfile returns per-game regular season averages, oldest season first.
func (c *StatsClient) PlayerProfile(ctx context.Context, playerID int) ([]domain.SeasonAverages, error) {
	params := url.Values{
		"LeagueID": {leagueID},
		"PerMode":  {"PerGame"},
		"PlayerID": {strconv.Itoa(playerID)},
	}
	resp, err := c.fetch(ctx, "playerprofilev2", params)
	if err != nil {
		return nil, err
	}
	set, err := resp.set(setRegularSeason)
	if err != nil {
		return nil, err
	}

	seasons := make([]domain.SeasonAverages, 0, len(set.RowSet))
	for _, rec := range set.Records() {
		f := fieldReader{rec: rec}
		avg := domain.SeasonAverages{
			SeasonID: f.string("SEASON_ID"),
			GP:       f.float("GP"),
			MIN:      f.float("MIN"),
			PTS:      f.float("PTS"),
			FGM:      f.float("FGM"),
			FGA:      f.float("FGA"),
			FGPct:    f.float("FG_PCT"),
			FG3M:     f.float("FG3M"),
			FG3A:     f.float("FG3A"),
			FG3Pct:   f.float("FG3_PCT"),
			FTM:      f.float("FTM"),
			FTA:      f.float("FTA"),
			FTPct:    f.float("FT_PCT"),
			OREB:     f.float("OREB"),
			DREB:     f.float("DREB"),
			REB:      f.float("REB"),
			AST:      f.float("AST"),
			STL:      f.float("STL"),
			BLK:      f.float("BLK"),
		}
		if f.err != nil {
			return nil, f.err
		}
		seasons = append(seasons, avg)
	}
	return seasons, nil
}

// HustleLeaders returns the raw leader tables, one per hustle category.
func (c *StatsClient) HustleLeaders(ctx context.Context) ([]ResultSet, error) {
	params := url.Values{
		"LeagueID":   {leagueID},
		"PerMode":    {"Totals"},
		"Season":     {c.season},
		"SeasonType": {seasonTypeRegular},
	}
	resp, err := c.fetch(ctx, "leaguehustlestatsplayerleaders", params)
	if err != nil {
		return nil, err
	}
	return resp.sets(), nil
}
