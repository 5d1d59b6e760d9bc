package tmdb

import (
	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

// SearchResult represents a single search result from TMDB.
type SearchResult struct {
	ID            int
	MediaType     string // "movie" or "tv"
	Title         string
	Name          string
	OriginalTitle string
	PosterPath    string
	Overview      string
	ReleaseDate   string
	FirstAirDate  string
	VoteAverage   float64
	VoteCount     int
	Popularity    float64
	OriginalLang  string
}

// DisplayTitle returns the appropriate title for the search result.
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Date returns whichever of the release or first air date is populated.
func (r SearchResult) Date() string {
	if r.MediaType == "tv" {
		return firstNonEmpty(r.FirstAirDate, r.ReleaseDate)
	}
	return firstNonEmpty(r.ReleaseDate, r.FirstAirDate)
}

// Year extracts the 4-digit year from the release or air date.
// It returns an empty string when no date is known.
func (r SearchResult) Year() string {
	source := r.Date()
	if len(source) >= 4 {
		return source[:4]
	}
	return ""
}

// Kind maps the TMDB media type onto a catalog media kind.
func (r SearchResult) Kind() catalog.Kind {
	if r.MediaType == "tv" {
		return catalog.KindSeries
	}
	return catalog.KindMovie
}

func mediaTypeFor(kind catalog.Kind) (string, error) {
	switch kind {
	case catalog.KindMovie:
		return "movie", nil
	case catalog.KindSeries:
		return "tv", nil
	default:
		return "", ErrInvalidMediaType
	}
}
