package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nba-bot/internal/domain"
	"nba-bot/internal/format"

	"github.com/rs/zerolog"
)

var commandHelp = []struct {
	usage       string
	description string
}{
	{"nba player <player name>", "view individual stats"},
	{"nba team <team name>", "view team stats"},
	{"nba roster <team name>", "view list team's players"},
	{"nba coaches <team name>", "view list team's coaches"},
	{"nba scores", "view the scores and schedules of today's games"},
	{"nba standings", "view Eastern and Western conference standings"},
	{"nba hustle", "view hustle stat leaders"},
}

// errorReply logs err and renders it as "Error getting <resource>" followed by
// an indented JSON payload.
func errorReply(ctx context.Context, resource string, err error) string {
	zerolog.Ctx(ctx).Error().Err(err).Str("resource", resource).Msg("command failed")

	payload, marshalErr := json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
	if marshalErr != nil {
		return "Error getting " + resource
	}
	return "Error getting " + resource + "\n" + string(payload)
}

func RenderTeamStats(s *domain.TeamStats) string {
	return fmt.Sprintf("%s (%d-%d)\n%spts, %sast, %sreb",
		s.TeamName, s.W, s.L, format.Number(s.PTS), format.Number(s.AST), format.Number(s.REB))
}

func draftDetails(d *domain.Draft) string {
	if d == nil {
		return "Undrafted"
	}
	return fmt.Sprintf("Round %d, Pick %d (%d)", d.Round, d.Pick, d.Year)
}

// RenderRoster lists one entry per player, separated by a blank line.
func RenderRoster(players []domain.Player) string {
	listings := make([]string, 0, len(players))
	for _, p := range players {
		entry := fmt.Sprintf("%s %s #%s (%s)\n%s %s lbs\n%s | %s",
			p.FirstName, p.LastName, p.Jersey, p.Position,
			p.Height, p.Weight,
			p.College, draftDetails(p.Draft))
		listings = append(listings, strings.TrimSpace(entry))
	}
	return strings.Join(listings, "\n\n")
}

func RenderCoaches(coaches []domain.Coach) string {
	listings := make([]string, 0, len(coaches))
	for _, c := range coaches {
		listings = append(listings, strings.TrimSpace(fmt.Sprintf("%s, %s\n%s", c.Name, c.Type, c.School)))
	}
	return strings.Join(listings, "\n\n")
}

// gameTeams names both sides, starring the winner once the game is final.
func gameTeams(g domain.Game) string {
	switch {
	case !g.IsOver:
		return fmt.Sprintf("%s at %s", g.Away.Name, g.Home.Name)
	case g.HomeWon():
		return fmt.Sprintf("%s at *%s*", g.Away.Name, g.Home.Name)
	default:
		return fmt.Sprintf("*%s* at %s", g.Away.Name, g.Home.Name)
	}
}

// gameContext is the score once play has begun, otherwise the series note.
func gameContext(g domain.Game) string {
	switch {
	case g.HasBegun:
		return fmt.Sprintf("%d - %d", g.Away.Score, g.Home.Score)
	case g.Series != "":
		return g.Series
	default:
		return "First matchup"
	}
}

func RenderScores(games []domain.Game) string {
	lines := make([]string, 0, len(games))
	for _, g := range games {
		lines = append(lines, fmt.Sprintf("%s\n%s | %s", gameTeams(g), g.Status, gameContext(g)))
	}
	return strings.Join(lines, "\n\n")
}

func renderStanding(t domain.TeamStanding) string {
	header := fmt.Sprintf("#%s %s", t.Seed, t.Name)
	if !t.IsLeader() {
		header += fmt.Sprintf(" (%sGB)", t.GamesBehind)
	}
	return fmt.Sprintf("%s\n%sW - %sL (%s)", header, t.Wins, t.Losses, t.WinPercent)
}

// RenderStandings separates conferences with two blank lines and teams with one.
func RenderStandings(conferences []domain.ConferenceStanding) string {
	blocks := make([]string, 0, len(conferences))
	for _, c := range conferences {
		teams := make([]string, 0, len(c.Teams))
		for _, t := range c.Teams {
			teams = append(teams, renderStanding(t))
		}
		blocks = append(blocks, c.Name+"\n\n"+strings.Join(teams, "\n\n"))
	}
	return strings.Join(blocks, "\n\n\n")
}

func RenderHustle(categories []domain.HustleStatCategory) string {
	blocks := make([]string, 0, len(categories))
	for _, c := range categories {
		var b strings.Builder
		b.WriteString("> " + c.Name)
		for _, l := range c.Leaders {
			fmt.Fprintf(&b, "\n%s (%s) %s", l.PlayerName, l.TeamAbbreviation, format.Number(l.Metric.Value))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func RenderHelp(botName string) string {
	lines := make([]string, 0, len(commandHelp))
	for _, c := range commandHelp {
		lines = append(lines, fmt.Sprintf("%s %s - %s", botName, c.usage, c.description))
	}
	return strings.Join(lines, "\n")
}
