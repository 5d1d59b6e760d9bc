package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

// Search runs a free-text search for the given media kind.
// Results are returned in API order.
func (c *Client) Search(ctx context.Context, query string, kind catalog.Kind) ([]SearchResult, error) {
	switch kind {
	case catalog.KindMovie:
		return c.SearchMovies(ctx, query, 0)
	case catalog.KindSeries:
		return c.SearchTV(ctx, query, 0)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaType, kind)
	}
}

// SearchMovies performs a movie-specific search on TMDB.
// A limit <= 0 returns every result of the first page.
func (c *Client) SearchMovies(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	return c.search(ctx, "movie", query, limit)
}

// SearchTV performs a TV-specific search on TMDB.
// A limit <= 0 returns every result of the first page.
func (c *Client) SearchTV(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	return c.search(ctx, "tv", query, limit)
}

func (c *Client) search(ctx context.Context, mediaType, query string, limit int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	params.Set("language", c.language)
	params.Set("include_adult", "false")

	endpoint := fmt.Sprintf("%s/search/%s?%s", c.baseURL, mediaType, params.Encode())

	var response struct {
		Results []struct {
			ID               int     `json:"id"`
			Title            string  `json:"title"`
			Name             string  `json:"name"`
			OriginalTitle    string  `json:"original_title"`
			OriginalName     string  `json:"original_name"`
			PosterPath       *string `json:"poster_path"`
			Overview         string  `json:"overview"`
			ReleaseDate      string  `json:"release_date"`
			FirstAirDate     string  `json:"first_air_date"`
			VoteAverage      float64 `json:"vote_average"`
			VoteCount        int     `json:"vote_count"`
			Popularity       float64 `json:"popularity"`
			OriginalLanguage string  `json:"original_language"`
		} `json:"results"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	capacity := len(response.Results)
	if limit > 0 && limit < capacity {
		capacity = limit
	}
	results := make([]SearchResult, 0, capacity)

	for _, item := range response.Results {
		if limit > 0 && len(results) >= limit {
			break
		}

		poster := ""
		if item.PosterPath != nil {
			poster = *item.PosterPath
		}

		results = append(results, SearchResult{
			ID:            item.ID,
			MediaType:     mediaType,
			Title:         item.Title,
			Name:          item.Name,
			OriginalTitle: firstNonEmpty(item.OriginalTitle, item.OriginalName),
			PosterPath:    poster,
			Overview:      item.Overview,
			ReleaseDate:   item.ReleaseDate,
			FirstAirDate:  item.FirstAirDate,
			VoteAverage:   item.VoteAverage,
			VoteCount:     item.VoteCount,
			Popularity:    item.Popularity,
			OriginalLang:  item.OriginalLanguage,
		})
	}

	return results, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
