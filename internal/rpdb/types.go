package rpdb

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// SearchResult is one element of an RPDB search response.
// Every score is optional and may arrive as a number, a string or null.
type SearchResult struct {
	Title      string `json:"title"`
	IMDbID     string `json:"imdb_id"`
	IMDbRating Score  `json:"imdb_rating"`
	RTRating   Score  `json:"rt_rating"`
	MetaRating Score  `json:"meta_rating"`
}

// Score is a rating value that tolerates the formats seen in the wild:
// 8.1, "8.1", "8.1/10", "90%", "75/100", "N/A", "" and null.
type Score struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler. Unparseable values leave the score invalid
// instead of failing the whole response.
func (s *Score) UnmarshalJSON(data []byte) error {
	*s = Score{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		if v, ok := parseScore(str); ok {
			*s = Score{Value: v, Valid: true}
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if f > 0 {
		*s = Score{Value: f, Valid: true}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// parseScore parses "8.8/10", "94%", "85/100" and plain numbers.
// Zero is treated as missing: providers use it for unrated titles.
func parseScore(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "N/A") {
		return 0, false
	}

	if idx := strings.Index(value, "/"); idx >= 0 {
		value = value[:idx]
	}
	value = strings.TrimSuffix(strings.TrimSpace(value), "%")

	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}
