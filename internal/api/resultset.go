package api

import (
	"fmt"
	"strconv"
	"strings"

	"nba-bot/internal/domain"
)

// statsResponse is the envelope every stats.nba.com endpoint answers with.
// A few endpoints use the singular key.
type statsResponse struct {
	ResultSets []ResultSet `json:"resultSets"`
	ResultSet  *ResultSet  `json:"resultSet"`
}

func (r *statsResponse) sets() []ResultSet {
	if len(r.ResultSets) == 0 && r.ResultSet != nil {
		return []ResultSet{*r.ResultSet}
	}
	return r.ResultSets
}

func (r *statsResponse) set(name string) (*ResultSet, error) {
	sets := r.sets()
	for i := range sets {
		if sets[i].Name == name {
			return &sets[i], nil
		}
	}
	return nil, &domain.MissingFieldError{Field: name, Context: "resultSets"}
}

// ResultSet is a named table of rows keyed by header position.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// Records zips every row with the headers. Short rows leave trailing headers unset.
func (s ResultSet) Records() []Record {
	records := make([]Record, 0, len(s.RowSet))
	for _, row := range s.RowSet {
		fields := make(map[string]any, len(s.Headers))
		for i, h := range s.Headers {
			if i < len(row) {
				fields[h] = row[i]
			}
		}
		records = append(records, Record{set: s.Name, fields: fields})
	}
	return records
}

// Record is one row of a ResultSet. Accessors fail with a MissingFieldError
// when the header is absent; a null cell reads as the zero value.
type Record struct {
	set    string
	fields map[string]any
}

func (r Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

func (r Record) lookup(key string) (any, error) {
	v, ok := r.fields[key]
	if !ok {
		return nil, &domain.MissingFieldError{Field: key, Context: r.set}
	}
	return v, nil
}

func (r Record) Float(key string) (float64, error) {
	v, err := r.lookup(key)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s.%s: %w", domain.ErrDecode, r.set, key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s.%s has type %T", domain.ErrDecode, r.set, key, v)
	}
}

func (r Record) Int(key string) (int, error) {
	f, err := r.Float(key)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func (r Record) String(key string) (string, error) {
	v, err := r.lookup(key)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return fmt.Sprint(t), nil
	}
}

// fieldReader collects the first accessor error so a whole record can be
// mapped before checking.
type fieldReader struct {
	rec Record
	err error
}

func (f *fieldReader) float(key string) float64 {
	if f.err != nil {
		return 0
	}
	v, err := f.rec.Float(key)
	f.err = err
	return v
}

func (f *fieldReader) int(key string) int {
	if f.err != nil {
		return 0
	}
	v, err := f.rec.Int(key)
	f.err = err
	return v
}

func (f *fieldReader) string(key string) string {
	if f.err != nil {
		return ""
	}
	v, err := f.rec.String(key)
	f.err = err
	return v
}
