package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

func TestMirrorURL(t *testing.T) {
	m := NewMirror("https://raw.example.com/data/{platform}-{category}.json", nil)
	assert.Equal(t, "https://raw.example.com/data/apple-series.json", m.URL(catalog.Apple, catalog.Series))
}

func TestMirrorList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []catalog.RankedTitle
	}{
		{
			name: "plain strings",
			body: `["Film A","Film B"]`,
			want: []catalog.RankedTitle{{Rank: 1, Title: "Film A"}, {Rank: 2, Title: "Film B"}},
		},
		{
			name: "snapshot entries",
			body: `[{"id":101,"name":"Film A","year":"2023"},{"id":102,"name":"Film B"}]`,
			want: []catalog.RankedTitle{{Rank: 1, Title: "Film A"}, {Rank: 2, Title: "Film B"}},
		},
		{
			name: "title objects with slugs and junk",
			body: `[{"title":"Film A","slug":"film-a"},42,null,{"title":""},"Film B"]`,
			want: []catalog.RankedTitle{{Rank: 1, Title: "Film A", Slug: "film-a"}, {Rank: 2, Title: "Film B"}},
		},
		{
			name: "truncated to ten",
			body: `["1","2","3","4","5","6","7","8","9","10","11","12"]`,
			want: []catalog.RankedTitle{
				{Rank: 1, Title: "1"}, {Rank: 2, Title: "2"}, {Rank: 3, Title: "3"}, {Rank: 4, Title: "4"},
				{Rank: 5, Title: "5"}, {Rank: 6, Title: "6"}, {Rank: 7, Title: "7"}, {Rank: 8, Title: "8"},
				{Rank: 9, Title: "9"}, {Rank: 10, Title: "10"},
			},
		},
		{
			name: "empty array",
			body: `[]`,
			want: []catalog.RankedTitle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			m := NewMirror(server.URL+"/{platform}-{category}.json", server.Client())
			got := m.List(context.Background(), catalog.Netflix, catalog.Movies)

			assert.Equal(t, "/netflix-movies.json", path)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMirrorListFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name:    "not found",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
		},
		{
			name:    "not json",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("<html>")) },
		},
		{
			name:    "object instead of array",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"metas":[]}`)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			m := NewMirror(server.URL+"/{platform}.json", nil)
			got := m.List(context.Background(), catalog.Prime, catalog.Series)
			require.Empty(t, got)
		})
	}
}
