package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "L'Été Meurtrier", want: "l ete meurtrier"},
		{input: "  GUARDIANS  ", want: "guardians"},
		{input: "Mission: Impossible – Dead Reckoning", want: "mission impossible dead reckoning"},
		{input: "Élite", want: "elite"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTitle(tt.input))
		})
	}
}

func TestSelectResult(t *testing.T) {
	results := []SearchResult{
		{ID: 1, Title: "Lupin III"},
		{ID: 2, Title: "Lupin", OriginalTitle: "Lupin"},
		{ID: 3, Title: "Arsène Lupin", OriginalTitle: "Arsène Lupin"},
	}

	assert.Nil(t, selectResult(nil, "x", PolicyFirst))

	first := selectResult(results, "Lupin", PolicyFirst)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.ID)

	exact := selectResult(results, "lupin", PolicyExact)
	require.NotNil(t, exact)
	assert.Equal(t, 2, exact.ID)

	accent := selectResult(results, "Arsene Lupin", PolicyExact)
	require.NotNil(t, accent)
	assert.Equal(t, 3, accent.ID)

	fallback := selectResult(results, "Something Else", PolicyExact)
	require.NotNil(t, fallback)
	assert.Equal(t, 1, fallback.ID)
}

func TestSelectResultMatchesOriginalTitle(t *testing.T) {
	results := []SearchResult{
		{ID: 10, Title: "Le Problème à trois corps", OriginalTitle: "Dummy"},
		{ID: 11, Title: "Le Problème à 3 corps", OriginalTitle: "3 Body Problem"},
	}

	got := selectResult(results, "3 Body Problem", PolicyExact)
	require.NotNil(t, got)
	assert.Equal(t, 11, got.ID)
}
