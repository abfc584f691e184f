package api

import (
	"context"

	"nba-bot/internal/config"
	"nba-bot/internal/domain"
)

const (
	statusFinal = "Final"
	clockZero   = "00:00.0"
)

type scoresResponse struct {
	GS struct {
		G []scoreGame `json:"g"`
	} `json:"gs"`
}

type scoreGame struct {
	Clock       FlexString `json:"cl"`
	Status      string     `json:"stt"`
	Visitor     scoreTeam  `json:"v"`
	Home        scoreTeam  `json:"h"`
	LastMeeting struct {
		Series string `json:"seri"`
	} `json:"lm"`
}

type scoreTeam struct {
	ID           FlexInt `json:"tid"`
	City         string  `json:"tc"`
	Name         string  `json:"tn"`
	Abbreviation string  `json:"ta"`
	Score        FlexInt `json:"s"`
}

// ScoresClient reads today's games from the mobile scores feed.
type ScoresClient struct {
	http *HTTPClient
	url  string
}

func NewScoresClient(http *HTTPClient, cfg *config.Config) *ScoresClient {
	return &ScoresClient{http: http, url: cfg.ScoresURL}
}

func (c *ScoresClient) FetchScores(ctx context.Context) ([]domain.Game, error) {
	resp, err := doRequest[scoresResponse](ctx, c.http, c.url)
	if err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(resp.GS.G))
	for _, g := range resp.GS.G {
		games = append(games, mapGame(g))
	}
	return games, nil
}

func mapGame(g scoreGame) domain.Game {
	return domain.Game{
		HasBegun: g.Clock != "",
		IsOver:   g.Status == statusFinal,
		Status:   gameStatus(g),
		Away:     mapScoreTeam(g.Visitor),
		Home:     mapScoreTeam(g.Home),
		Series:   g.LastMeeting.Series,
	}
}

func mapScoreTeam(t scoreTeam) domain.Team {
	return domain.Team{
		ID:           t.ID.Value,
		City:         t.City,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		Score:        t.Score.Value,
	}
}

func gameStatus(g scoreGame) string {
	switch {
	case g.Status == statusFinal:
		return statusFinal
	case g.Clock == "" || g.Clock == clockZero:
		return g.Status
	default:
		return g.Clock.String() + " - " + g.Status
	}
}
