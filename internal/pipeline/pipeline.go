// Package pipeline composes a ranking source, a metadata resolver and a
// rating resolver into catalog entries.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/lookup"
	"github.com/Al69m/top10-streaming-fr/internal/source"
)

// Rating lookup keys.
const (
	RatingsByTitle = "title"
	RatingsByIMDb  = "imdb"
)

// MetadataResolver resolves a title to its metadata.
type MetadataResolver interface {
	Resolve(ctx context.Context, title string, kind catalog.Kind) lookup.Result[catalog.Metadata]
}

// RatingResolver resolves a title or external ID to its scores.
type RatingResolver interface {
	Resolve(ctx context.Context, query string) lookup.Result[catalog.Rating]
}

// Entry is one resolved title of a catalog.
type Entry struct {
	Title  catalog.RankedTitle
	Meta   catalog.Metadata
	Rating lookup.Result[catalog.Rating]
	Item   catalog.Item
}

// Builder builds catalogs.
type Builder struct {
	lister    source.Lister
	metadata  MetadataResolver
	ratings   RatingResolver
	ratingsBy string
	parallel  bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithParallel resolves the titles of a catalog concurrently.
func WithParallel(enabled bool) Option {
	return func(b *Builder) {
		b.parallel = enabled
	}
}

// WithRatingsBy selects the rating lookup key, RatingsByTitle or RatingsByIMDb.
func WithRatingsBy(key string) Option {
	return func(b *Builder) {
		if key != "" {
			b.ratingsBy = key
		}
	}
}

// NewBuilder creates a Builder. A nil rating resolver disables ratings.
func NewBuilder(lister source.Lister, metadata MetadataResolver, ratings RatingResolver, opts ...Option) *Builder {
	b := &Builder{
		lister:    lister,
		metadata:  metadata,
		ratings:   ratings,
		ratingsBy: RatingsByTitle,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the items of a catalog in ranking order.
func (b *Builder) Build(ctx context.Context, id catalog.ID) []catalog.Item {
	entries := b.Entries(ctx, id)
	items := make([]catalog.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.Item)
	}
	return items
}

// Entries lists the catalog and resolves every title. Titles whose metadata
// cannot be resolved are dropped; the others keep their ranking order.
func (b *Builder) Entries(ctx context.Context, id catalog.ID) []Entry {
	start := time.Now()
	titles := b.lister.List(ctx, id.Platform, id.Category)
	if len(titles) > source.Limit {
		titles = titles[:source.Limit]
	}

	kind := id.Category.Kind()
	resolve := func(t *catalog.RankedTitle) *Entry {
		return b.resolve(ctx, *t, kind)
	}

	var resolved []*Entry
	if b.parallel && len(titles) > 1 {
		mapper := iter.Mapper[catalog.RankedTitle, *Entry]{MaxGoroutines: len(titles)}
		resolved = mapper.Map(titles, resolve)
	} else {
		resolved = make([]*Entry, len(titles))
		for i := range titles {
			resolved[i] = resolve(&titles[i])
		}
	}

	entries := make([]Entry, 0, len(resolved))
	for _, e := range resolved {
		if e != nil {
			entries = append(entries, *e)
		}
	}

	slog.Info("Built catalog",
		"catalog", id.String(),
		"listed", len(titles),
		"items", len(entries),
		"duration", time.Since(start).Round(time.Millisecond))
	return entries
}

func (b *Builder) resolve(ctx context.Context, title catalog.RankedTitle, kind catalog.Kind) *Entry {
	metaResult := b.metadata.Resolve(ctx, title.Title, kind)
	meta, ok := metaResult.Get()
	if !ok {
		slog.Warn("Dropping title without metadata",
			"title", title.Title,
			"rank", title.Rank,
			"status", metaResult.Status.String(),
			"error", metaResult.Err)
		return nil
	}

	rating := lookup.Absent[catalog.Rating]()
	if b.ratings != nil {
		rating = b.ratings.Resolve(ctx, b.ratingQuery(title, meta))
	}

	return &Entry{
		Title:  title,
		Meta:   meta,
		Rating: rating,
		Item:   catalog.Assemble(title, meta, rating),
	}
}

func (b *Builder) ratingQuery(title catalog.RankedTitle, meta catalog.Metadata) string {
	if b.ratingsBy == RatingsByIMDb && meta.IMDbID != "" {
		return meta.IMDbID
	}
	return title.Title
}
