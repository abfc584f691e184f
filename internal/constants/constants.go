package constants

import "time"

const (
	ServiceName    = "nba-bot"
	ServiceVersion = "1.0.0"
)

const (
	StatsBaseURL = "https://stats.nba.com/stats"
	StandingsURL = "http://cdn.espn.go.com/core/nba/standings?xhr=1&device=desktop"
	PlayersURL   = "https://www.nba.com/players"
	TelegramURL  = "https://api.telegram.org"

	// %d is the scores feed year
	ScoresURLFormat = "http://data.nba.com/data/5s/v2015/json/mobile_teams/nba/%d/scores/00_todays_scores.json"
)

const (
	UpstreamReadTimeout  = 15 * time.Second
	UpstreamWriteTimeout = 10 * time.Second
	UpstreamIdleTimeout  = 1 * time.Minute
	UpstreamMaxConns     = 64
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// NBA seasons roll over in October.
	SeasonStartMonth = time.October
)
