package tmdb

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/errors"
	"github.com/Al69m/top10-streaming-fr/internal/lookup"
)

type metadataClient interface {
	Search(ctx context.Context, query string, kind catalog.Kind) ([]SearchResult, error)
	ExternalIDs(ctx context.Context, id int, kind catalog.Kind) (string, error)
	PosterURL(posterPath string) string
}

// Resolver turns a ranked title into catalog metadata.
type Resolver struct {
	client   metadataClient
	policy   string
	withIMDb bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMatchPolicy selects how a result is picked among search results.
func WithMatchPolicy(policy string) ResolverOption {
	return func(r *Resolver) {
		if policy != "" {
			r.policy = policy
		}
	}
}

// WithIMDbIDs makes the resolver fetch the IMDb ID of every match.
func WithIMDbIDs(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.withIMDb = enabled
	}
}

// NewResolver creates a Resolver backed by client.
func NewResolver(client metadataClient, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client: client,
		policy: PolicyFirst,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve searches TMDB for title and returns the selected match.
// Zero results yield Absent; transport or decoding failures yield Failed.
func (r *Resolver) Resolve(ctx context.Context, title string, kind catalog.Kind) lookup.Result[catalog.Metadata] {
	title = strings.TrimSpace(title)
	if title == "" {
		return lookup.Absent[catalog.Metadata]()
	}

	results, err := r.client.Search(ctx, title, kind)
	if err != nil {
		slog.Warn("TMDB search failed", "title", title, "kind", kind, "error", err)
		return lookup.Failed[catalog.Metadata](errors.NewLookupError(errors.MetadataNotFound, title, err))
	}

	best := selectResult(results, title, r.policy)
	if best == nil {
		slog.Debug("No TMDB match", "title", title, "kind", kind)
		return lookup.Absent[catalog.Metadata]()
	}

	meta := catalog.Metadata{
		ProviderID:  best.ID,
		Name:        best.DisplayTitle(),
		Synopsis:    best.Overview,
		Poster:      r.client.PosterURL(best.PosterPath),
		Year:        best.Year(),
		ReleaseDate: best.Date(),
		Kind:        kind,
	}

	if r.withIMDb {
		imdbID, err := r.client.ExternalIDs(ctx, best.ID, kind)
		if err != nil {
			slog.Debug("TMDB external ids lookup failed", "tmdb_id", best.ID, "error", err)
		}
		meta.IMDbID = imdbID
	}

	return lookup.Found(meta)
}
