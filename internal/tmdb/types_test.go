package tmdb

import (
	"testing"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSearchResultDisplayTitle(t *testing.T) {
	assert.Equal(t, "Movie", SearchResult{Title: "Movie", Name: "Show"}.DisplayTitle())
	assert.Equal(t, "Show", SearchResult{Name: "Show"}.DisplayTitle())
}

func TestSearchResultYear(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		want   string
	}{
		{name: "movie release date", result: SearchResult{MediaType: "movie", ReleaseDate: "2023-05-01"}, want: "2023"},
		{name: "tv first air date", result: SearchResult{MediaType: "tv", FirstAirDate: "2016-07-15"}, want: "2016"},
		{name: "tv falls back to release date", result: SearchResult{MediaType: "tv", ReleaseDate: "2020-01-01"}, want: "2020"},
		{name: "missing date", result: SearchResult{MediaType: "movie"}, want: ""},
		{name: "short date", result: SearchResult{MediaType: "movie", ReleaseDate: "20"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Year())
		})
	}
}

func TestSearchResultKind(t *testing.T) {
	assert.Equal(t, catalog.KindSeries, SearchResult{MediaType: "tv"}.Kind())
	assert.Equal(t, catalog.KindMovie, SearchResult{MediaType: "movie"}.Kind())
}

func TestMediaTypeFor(t *testing.T) {
	mt, err := mediaTypeFor(catalog.KindMovie)
	assert.NoError(t, err)
	assert.Equal(t, "movie", mt)

	mt, err = mediaTypeFor(catalog.KindSeries)
	assert.NoError(t, err)
	assert.Equal(t, "tv", mt)

	_, err = mediaTypeFor("other")
	assert.ErrorIs(t, err, ErrInvalidMediaType)
}
