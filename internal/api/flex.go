package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexString accepts a JSON string, number, bool or null. The feeds are not
// consistent about quoting.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	default:
		*s = FlexString(data)
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FlexInt accepts a JSON number or numeric string. Null, empty and
// non-numeric values leave it invalid rather than failing the decode.
type FlexInt struct {
	Value int
	Valid bool
}

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	var raw FlexString
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = parseFlexInt(strings.TrimSpace(raw.String()))
	return nil
}

func parseFlexInt(s string) FlexInt {
	if s == "" {
		return FlexInt{}
	}
	if v, err := strconv.Atoi(s); err == nil {
		return FlexInt{Value: v, Valid: true}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return FlexInt{Value: int(f), Valid: true}
	}
	return FlexInt{}
}
