package rpdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue float64
	}{
		{name: "number", input: `8.1`, wantValid: true, wantValue: 8.1},
		{name: "integer", input: `90`, wantValid: true, wantValue: 90},
		{name: "numeric string", input: `"7.4"`, wantValid: true, wantValue: 7.4},
		{name: "out of ten", input: `"8.8/10"`, wantValid: true, wantValue: 8.8},
		{name: "percent", input: `"94%"`, wantValid: true, wantValue: 94},
		{name: "out of hundred", input: `"85/100"`, wantValid: true, wantValue: 85},
		{name: "not available", input: `"N/A"`},
		{name: "empty string", input: `""`},
		{name: "null", input: `null`},
		{name: "zero", input: `0`},
		{name: "garbage string", input: `"great"`},
		{name: "boolean", input: `true`},
		{name: "object", input: `{"value":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Score
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.wantValid, s.Valid)
			if tt.wantValid {
				assert.InDelta(t, tt.wantValue, s.Value, 0.0001)
			}
		})
	}
}

func TestSearchResultDecodesMixedFields(t *testing.T) {
	body := `[{"title":"Film A","imdb_id":"tt1","imdb_rating":"8.1","rt_rating":90,"meta_rating":null}]`

	var results []SearchResult
	require.NoError(t, json.Unmarshal([]byte(body), &results))
	require.Len(t, results, 1)

	assert.Equal(t, "Film A", results[0].Title)
	assert.True(t, results[0].IMDbRating.Valid)
	assert.True(t, results[0].RTRating.Valid)
	assert.False(t, results[0].MetaRating.Valid)
}

func TestScoreMarshal(t *testing.T) {
	data, err := json.Marshal(struct {
		A Score `json:"a"`
		B Score `json:"b"`
	}{A: Score{Value: 8.1, Valid: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":8.1,"b":null}`, string(data))
}
