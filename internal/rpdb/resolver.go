package rpdb

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/errors"
	"github.com/Al69m/top10-streaming-fr/internal/lookup"
)

type ratingsClient interface {
	Enabled() bool
	Search(ctx context.Context, term string) ([]SearchResult, error)
}

// Resolver looks up the scores of a title. It never fails the caller:
// every problem is reported as an Absent or Failed result.
type Resolver struct {
	client ratingsClient
}

// NewResolver creates a Resolver backed by client.
func NewResolver(client ratingsClient) *Resolver {
	return &Resolver{client: client}
}

// Resolve searches by title text or external ID and converts the first result.
func (r *Resolver) Resolve(ctx context.Context, query string) lookup.Result[catalog.Rating] {
	query = strings.TrimSpace(query)
	if r == nil || r.client == nil || !r.client.Enabled() || query == "" {
		return lookup.Absent[catalog.Rating]()
	}

	results, err := r.client.Search(ctx, query)
	if err != nil {
		slog.Warn("RPDB lookup failed", "query", query, "error", err)
		return lookup.Failed[catalog.Rating](errors.NewLookupError(errors.RatingUnavailable, query, err))
	}
	if len(results) == 0 {
		slog.Debug("No RPDB match", "query", query)
		return lookup.Absent[catalog.Rating]()
	}

	return lookup.Found(toRating(results[0]))
}

func toRating(res SearchResult) catalog.Rating {
	var rating catalog.Rating
	if res.IMDbRating.Valid {
		v := res.IMDbRating.Value
		rating.IMDb = &v
	}
	if res.RTRating.Valid {
		v := int(math.Round(res.RTRating.Value))
		rating.RottenTomatoes = &v
	}
	if res.MetaRating.Valid {
		v := int(math.Round(res.MetaRating.Value))
		rating.Metacritic = &v
	}
	return rating
}
