package api

import (
	"context"
	"fmt"

	"nba-bot/internal/config"
	"nba-bot/internal/domain"
)

type standingsResponse struct {
	Content struct {
		Standings struct {
			Groups []standingsGroup `json:"groups"`
		} `json:"standings"`
	} `json:"content"`
}

type standingsGroup struct {
	Name      string `json:"name"`
	Standings struct {
		Entries []standingsEntry `json:"entries"`
	} `json:"standings"`
}

type standingsEntry struct {
	Team struct {
		Name         string     `json:"name"`
		Location     string     `json:"location"`
		Abbreviation string     `json:"abbreviation"`
		Seed         FlexString `json:"seed"`
	} `json:"team"`
	Stats []standingsStat `json:"stats"`
}

type standingsStat struct {
	Name         string     `json:"name"`
	DisplayValue FlexString `json:"displayValue"`
}

// StandingsClient reads conference standings from the ESPN feed.
type StandingsClient struct {
	http *HTTPClient
	url  string
}

func NewStandingsClient(http *HTTPClient, cfg *config.Config) *StandingsClient {
	return &StandingsClient{http: http, url: cfg.StandingsURL}
}

func (c *StandingsClient) FetchStandings(ctx context.Context) ([]domain.ConferenceStanding, error) {
	resp, err := doRequest[standingsResponse](ctx, c.http, c.url)
	if err != nil {
		return nil, err
	}

	conferences := make([]domain.ConferenceStanding, 0, len(resp.Content.Standings.Groups))
	for _, group := range resp.Content.Standings.Groups {
		conference, err := mapConference(group)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, conference)
	}
	return conferences, nil
}

func mapConference(group standingsGroup) (domain.ConferenceStanding, error) {
	teams := make([]domain.TeamStanding, 0, len(group.Standings.Entries))
	for _, entry := range group.Standings.Entries {
		team, err := mapTeamStanding(entry)
		if err != nil {
			return domain.ConferenceStanding{}, fmt.Errorf("%s: %w", group.Name, err)
		}
		teams = append(teams, team)
	}
	return domain.ConferenceStanding{Name: group.Name, Teams: teams}, nil
}

func mapTeamStanding(entry standingsEntry) (domain.TeamStanding, error) {
	stat := func(name string) (string, error) {
		for _, s := range entry.Stats {
			if s.Name == name {
				return s.DisplayValue.String(), nil
			}
		}
		return "", &domain.MissingFieldError{Field: name, Context: entry.Team.Name + " stats"}
	}

	team := domain.TeamStanding{
		Name:         entry.Team.Name,
		City:         entry.Team.Location,
		Abbreviation: entry.Team.Abbreviation,
		Seed:         entry.Team.Seed.String(),
	}

	var err error
	if team.Wins, err = stat("wins"); err != nil {
		return team, err
	}
	if team.Losses, err = stat("losses"); err != nil {
		return team, err
	}
	if team.WinPercent, err = stat("winPercent"); err != nil {
		return team, err
	}
	if team.GamesBehind, err = stat("gamesBehind"); err != nil {
		return team, err
	}
	return team, nil
}
