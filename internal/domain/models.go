package domain

import (
	"fmt"
	"strings"
)

type Height struct {
	Feet   string
	Inches string
}

// ParseHeight splits a "feet-inches" token such as "6-11".
func ParseHeight(raw string) (Height, error) {
	feet, inches, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok || feet == "" || inches == "" {
		return Height{}, fmt.Errorf("invalid height %q", raw)
	}
	return Height{Feet: feet, Inches: inches}, nil
}

func (h Height) String() string {
	return fmt.Sprintf("%s'%s\"", h.Feet, h.Inches)
}

type Draft struct {
	Round int
	Pick  int
	Year  int
}

type Player struct {
	ID        int
	FirstName string
	LastName  string
	FullName  string
	TeamID    int
	Jersey    string
	Position  string
	Height    Height
	Weight    string
	College   string
	Draft     *Draft // nil when undrafted
}

type PlayerInfo struct {
	ID          int
	DisplayName string
	Jersey      string
	TeamCity    string
	TeamName    string
	Position    string
	Height      Height
	Weight      string
}

type SeasonAverages struct {
	SeasonID string
	GP       float64
	MIN      float64
	PTS      float64
	FGM      float64
	FGA      float64
	FGPct    float64
	FG3M     float64
	FG3A     float64
	FG3Pct   float64
	FTM      float64
	FTA      float64
	FTPct    float64
	OREB     float64
	DREB     float64
	REB      float64
	AST      float64
	STL      float64
	BLK      float64
}

type Team struct {
	ID           int
	Name         string
	City         string
	Abbreviation string
	Score        int
}

type TeamStats struct {
	TeamID   int
	TeamName string
	W        int
	L        int
	PTS      float64
	AST      float64
	REB      float64
}

type Coach struct {
	Name   string
	Type   string
	School string
}

type Game struct {
	Home     Team
	Away     Team
	Status   string
	HasBegun bool
	IsOver   bool
	Series   string
}

// HomeWon reports whether the home side finished ahead.
func (g Game) HomeWon() bool {
	return g.Home.Score > g.Away.Score
}

type ConferenceStanding struct {
	Name  string
	Teams []TeamStanding
}

type TeamStanding struct {
	Name         string
	City         string
	Abbreviation string
	Seed         string
	Wins         string
	Losses       string
	WinPercent   string
	GamesBehind  string
}

// IsLeader is true for the team the rest of the conference is measured against.
func (t TeamStanding) IsLeader() bool {
	return t.GamesBehind == "-" || t.GamesBehind == ""
}

type HustleMetric struct {
	Name  string
	Value float64
}

type HustleLeader struct {
	PlayerID         int
	PlayerName       string
	TeamID           int
	TeamAbbreviation string
	Age              float64
	Rank             int
	Metric           HustleMetric
}

type HustleStatCategory struct {
	Name       string
	MetricName string
	Leaders    []HustleLeader
}
