package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nba-bot/internal/config"
	"nba-bot/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

const nextDataSelector = "#__NEXT_DATA__"

type nextData struct {
	Props struct {
		PageProps struct {
			Players []playerListing `json:"players"`
		} `json:"pageProps"`
	} `json:"props"`
}

type playerListing struct {
	PersonID    FlexInt    `json:"PERSON_ID"`
	FirstName   string     `json:"PLAYER_FIRST_NAME"`
	LastName    string     `json:"PLAYER_LAST_NAME"`
	TeamID      FlexInt    `json:"TEAM_ID"`
	Jersey      FlexString `json:"JERSEY_NUMBER"`
	Position    FlexString `json:"POSITION"`
	Height      FlexString `json:"HEIGHT"`
	Weight      FlexString `json:"WEIGHT"`
	College     FlexString `json:"COLLEGE"`
	DraftYear   FlexInt    `json:"DRAFT_YEAR"`
	DraftRound  FlexInt    `json:"DRAFT_ROUND"`
	DraftNumber FlexInt    `json:"DRAFT_NUMBER"`
}

// PlayersClient scrapes the players listing page.
type PlayersClient struct {
	http *HTTPClient
	url  string
}

func NewPlayersClient(http *HTTPClient, cfg *config.Config) *PlayersClient {
	return &PlayersClient{http: http, url: cfg.PlayersURL}
}

func (c *PlayersClient) FetchPlayers(ctx context.Context) ([]domain.Player, error) {
	body, err := c.http.Get(ctx, c.url)
	if err != nil {
		return nil, err
	}
	return ParsePlayersPage(body)
}

// ParsePlayersPage decodes the JSON data island embedded in the page markup.
func ParsePlayersPage(markup []byte) ([]domain.Player, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse HTML: %w", domain.ErrDecode, err)
	}

	island := strings.TrimSpace(doc.Find(nextDataSelector).First().Text())
	if island == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, &domain.MissingFieldError{Field: nextDataSelector, Context: "players page"})
	}

	var data nextData
	if err := json.Unmarshal([]byte(island), &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDecode, nextDataSelector, err)
	}

	players := make([]domain.Player, 0, len(data.Props.PageProps.Players))
	for _, p := range data.Props.PageProps.Players {
		player, err := mapPlayer(p)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func mapPlayer(p playerListing) (domain.Player, error) {
	height, err := domain.ParseHeight(p.Height.String())
	if err != nil {
		return domain.Player{}, fmt.Errorf("%w: player %d: %w", domain.ErrDecode, p.PersonID.Value, err)
	}

	player := domain.Player{
		ID:        p.PersonID.Value,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FirstName + " " + p.LastName,
		TeamID:    p.TeamID.Value,
		Jersey:    p.Jersey.String(),
		Position:  p.Position.String(),
		Height:    height,
		Weight:    p.Weight.String(),
		College:   p.College.String(),
	}
	if p.DraftYear.Valid && p.DraftRound.Valid && p.DraftNumber.Valid {
		player.Draft = &domain.Draft{
			Round: p.DraftRound.Value,
			Pick:  p.DraftNumber.Value,
			Year:  p.DraftYear.Value,
		}
	}
	return player, nil
}
