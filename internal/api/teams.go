package api

import (
	"strings"

	"nba-bot/internal/domain"
)

// Franchise identifiers as used by the stats provider.
var teams = []domain.Team{
	{ID: 1610612737, City: "Atlanta", Name: "Hawks", Abbreviation: "ATL"},
	{ID: 1610612738, City: "Boston", Name: "Celtics", Abbreviation: "BOS"},
	{ID: 1610612751, City: "Brooklyn", Name: "Nets", Abbreviation: "BKN"},
	{ID: 1610612766, City: "Charlotte", Name: "Hornets", Abbreviation: "CHA"},
	{ID: 1610612741, City: "Chicago", Name: "Bulls", Abbreviation: "CHI"},
	{ID: 1610612739, City: "Cleveland", Name: "Cavaliers", Abbreviation: "CLE"},
	{ID: 1610612742, City: "Dallas", Name: "Mavericks", Abbreviation: "DAL"},
	{ID: 1610612743, City: "Denver", Name: "Nuggets", Abbreviation: "DEN"},
	{ID: 1610612765, City: "Detroit", Name: "Pistons", Abbreviation: "DET"},
	{ID: 1610612744, City: "Golden State", Name: "Warriors", Abbreviation: "GSW"},
	{ID: 1610612745, City: "Houston", Name: "Rockets", Abbreviation: "HOU"},
	{ID: 1610612754, City: "Indiana", Name: "Pacers", Abbreviation: "IND"},
	{ID: 1610612746, City: "LA", Name: "Clippers", Abbreviation: "LAC"},
	{ID: 1610612747, City: "Los Angeles", Name: "Lakers", Abbreviation: "LAL"},
	{ID: 1610612763, City: "Memphis", Name: "Grizzlies", Abbreviation: "MEM"},
	{ID: 1610612748, City: "Miami", Name: "Heat", Abbreviation: "MIA"},
	{ID: 1610612749, City: "Milwaukee", Name: "Bucks", Abbreviation: "MIL"},
	{ID: 1610612750, City: "Minnesota", Name: "Timberwolves", Abbreviation: "MIN"},
	{ID: 1610612740, City: "New Orleans", Name: "Pelicans", Abbreviation: "NOP"},
	{ID: 1610612752, City: "New York", Name: "Knicks", Abbreviation: "NYK"},
	{ID: 1610612760, City: "Oklahoma City", Name: "Thunder", Abbreviation: "OKC"},
	{ID: 1610612753, City: "Orlando", Name: "Magic", Abbreviation: "ORL"},
	{ID: 1610612755, City: "Philadelphia", Name: "76ers", Abbreviation: "PHI"},
	{ID: 1610612756, City: "Phoenix", Name: "Suns", Abbreviation: "PHX"},
	{ID: 1610612757, City: "Portland", Name: "Trail Blazers", Abbreviation: "POR"},
	{ID: 1610612758, City: "Sacramento", Name: "Kings", Abbreviation: "SAC"},
	{ID: 1610612759, City: "San Antonio", Name: "Spurs", Abbreviation: "SAS"},
	{ID: 1610612761, City: "Toronto", Name: "Raptors", Abbreviation: "TOR"},
	{ID: 1610612762, City: "Utah", Name: "Jazz", Abbreviation: "UTA"},
	{ID: 1610612764, City: "Washington", Name: "Wizards", Abbreviation: "WAS"},
}

func fullName(t domain.Team) string {
	return t.City + " " + t.Name
}

// TeamIDFromName resolves a team by abbreviation, nickname, city or full name
// (case-insensitive), falling back to a substring of the full name.
func TeamIDFromName(name string) (int, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return 0, false
	}

	for _, t := range teams {
		for _, candidate := range []string{t.Abbreviation, t.Name, t.City, fullName(t)} {
			if strings.ToLower(candidate) == query {
				return t.ID, true
			}
		}
	}
	for _, t := range teams {
		if strings.Contains(strings.ToLower(fullName(t)), query) {
			return t.ID, true
		}
	}
	return 0, false
}

// TeamByID returns the static franchise record.
func TeamByID(id int) (domain.Team, bool) {
	for _, t := range teams {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Team{}, false
}
