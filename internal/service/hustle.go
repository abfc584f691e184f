package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"nba-bot/internal/api"
	"nba-bot/internal/domain"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const categoryPrefix = "Player "

// Columns every hustle leader row carries, in normalized form.
var commonHustleKeys = []string{"playerId", "playerName", "teamId", "teamAbbreviation", "age", "rank"}

// Metric column for each known hustle category.
var hustleMetrics = map[string]string{
	"PlayerContestedShotLeaders": "CONTESTED_SHOTS",
	"PlayerChargesDrawnLeaders":  "CHARGES_DRAWN",
	"PlayerDeflectionsLeaders":   "DEFLECTIONS",
	"PlayerLooseBallLeaders":     "LOOSE_BALLS_RECOVERED",
	"PlayerScreenAssistLeaders":  "SCREEN_ASSISTS",
	"PlayerBoxOutLeaders":        "BOX_OUTS",
}

type HustleProvider interface {
	HustleLeaders(ctx context.Context) ([]api.ResultSet, error)
}

type HustleService struct {
	stats  HustleProvider
	logger zerolog.Logger
}

func NewHustleService(stats HustleProvider, logger zerolog.Logger) *HustleService {
	return &HustleService{stats: stats, logger: logger}
}

func (s *HustleService) Leaders(ctx context.Context) ([]domain.HustleStatCategory, error) {
	sets, err := s.stats.HustleLeaders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch hustle leaders")
		return nil, fmt.Errorf("failed to fetch hustle leaders: %w", err)
	}

	categories := make([]domain.HustleStatCategory, 0, len(sets))
	for _, set := range sets {
		category, err := NormalizeHustleCategory(set)
		if err != nil {
			s.logger.Error().Err(err).Str("category", set.Name).Msg("failed to normalize hustle category")
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// CategoryName turns "PlayerContestedShotLeaders" into "Contested Shot Leaders".
func CategoryName(set string) string {
	title := cases.Title(language.English).String(strcase.ToDelimited(set, ' '))
	return strings.TrimPrefix(title, categoryPrefix)
}

// FieldName normalizes a provider header: "TEAM_ABBREVIATION" becomes "teamAbbreviation".
func FieldName(header string) string {
	return strcase.ToLowerCamel(header)
}

// metricHeader picks the category's metric column from the known table, or
// else the first header that is not a common one.
func metricHeader(set api.ResultSet) (string, error) {
	if header, ok := hustleMetrics[set.Name]; ok {
		return header, nil
	}
	for _, h := range set.Headers {
		if !slices.Contains(commonHustleKeys, FieldName(h)) {
			return h, nil
		}
	}
	return "", &domain.MissingFieldError{Field: "metric", Context: set.Name}
}

func NormalizeHustleCategory(set api.ResultSet) (domain.HustleStatCategory, error) {
	metric, err := metricHeader(set)
	if err != nil {
		return domain.HustleStatCategory{}, err
	}

	category := domain.HustleStatCategory{
		Name:       CategoryName(set.Name),
		MetricName: FieldName(metric),
		Leaders:    make([]domain.HustleLeader, 0, len(set.RowSet)),
	}
	for _, rec := range set.Records() {
		leader, err := hustleLeader(rec, metric)
		if err != nil {
			return domain.HustleStatCategory{}, err
		}
		category.Leaders = append(category.Leaders, leader)
	}
	return category, nil
}

func hustleLeader(rec api.Record, metric string) (domain.HustleLeader, error) {
	var leader domain.HustleLeader
	var err error

	if leader.PlayerID, err = rec.Int("PLAYER_ID"); err != nil {
		return leader, err
	}
	if leader.PlayerName, err = rec.String("PLAYER_NAME"); err != nil {
		return leader, err
	}
	if leader.TeamID, err = rec.Int("TEAM_ID"); err != nil {
		return leader, err
	}
	if leader.TeamAbbreviation, err = rec.String("TEAM_ABBREVIATION"); err != nil {
		return leader, err
	}
	if leader.Age, err = rec.Float("AGE"); err != nil {
		return leader, err
	}
	if leader.Rank, err = rec.Int("RANK"); err != nil {
		return leader, err
	}

	value, err := rec.Float(metric)
	if err != nil {
		return leader, err
	}
	leader.Metric = domain.HustleMetric{Name: FieldName(metric), Value: value}
	return leader, nil
}
