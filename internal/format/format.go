// Package format turns stat values into the strings used in chat replies.
package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"nba-bot/internal/domain"
)

const (
	columnCount     = 2
	columnSeparator = " | "
	fence           = "```"
)

// Percentage renders a 0-1 ratio as a percentage with one decimal place.
// Ties round away from zero on the exact binary value: 43.25 renders 43.3.
func Percentage(x float64) string {
	v := x * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}

	tenths := new(big.Rat).SetFloat64(v)
	tenths.Mul(tenths, big.NewRat(10, 1))
	q, rem := new(big.Int).QuoRem(tenths.Num(), tenths.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(tenths.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	whole, frac := new(big.Int).QuoRem(q, big.NewInt(10), new(big.Int))
	return sign + whole.String() + "." + frac.String()
}

// Height renders "6-11" as 6'11". Input that is not a feet-inches token is returned as is.
func Height(raw string) string {
	h, err := domain.ParseHeight(raw)
	if err != nil {
		return raw
	}
	return h.String()
}

// Number renders a stat in its shortest form: 30.1, 82, 0.5.
func Number(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// TwoColumnTable lays items out as two columns inside a code fence. The first
// half of items fills the left column and the second half the right one. When
// the count is odd the row count follows the left column, so the last item of
// the right column is not shown.
func TwoColumnTable(items []string) string {
	n := len(items)
	columns := make([][]string, columnCount)
	for i := range columnCount {
		start, end := i*n/columnCount, (i+1)*n/columnCount
		columns[i] = padColumn(items[start:end])
	}

	rows := make([]string, 0, len(columns[0]))
	for r := range columns[0] {
		cells := make([]string, 0, columnCount)
		for _, column := range columns {
			if r < len(column) {
				cells = append(cells, column[r])
			}
		}
		rows = append(rows, strings.Join(cells, columnSeparator))
	}

	return fence + "\n" + strings.Join(rows, "\n") + "\n" + fence
}

// padColumn widens every entry to the widest one by doubling up the first space.
func padColumn(column []string) []string {
	widest := 0
	for _, item := range column {
		widest = max(widest, utf8.RuneCountInString(item))
	}

	padded := make([]string, len(column))
	for i, item := range column {
		for utf8.RuneCountInString(item) < widest {
			idx := strings.Index(item, " ")
			if idx < 0 {
				_, size := utf8.DecodeLastRuneInString(item)
				idx = len(item) - size
			}
			item = item[:idx] + " " + item[idx:]
		}
		padded[i] = item
	}
	return padded
}
