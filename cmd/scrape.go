package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/config"
	"github.com/Al69m/top10-streaming-fr/internal/datastore"
	"github.com/Al69m/top10-streaming-fr/internal/pipeline"
	"github.com/Al69m/top10-streaming-fr/internal/snapshot"
)

const lockFileName = ".top10.lock"

// ScrapeCmd builds every catalog and writes one snapshot per catalog.
type ScrapeCmd struct {
	SourceFlags `embed:""`

	OutputDir   string `short:"o" help:"Directory receiving <platform>-<category>.json files (defaults to output.dir)"`
	Datasette   bool   `help:"Also append the rankings to the Datasette export"`
	DatasetteDB string `help:"Path to SQLite database file (defaults to datasette.dbfile)"`
}

type entryBuilder interface {
	Entries(ctx context.Context, id catalog.ID) []pipeline.Entry
}

func (s *ScrapeCmd) apply(cfg *config.Config) error {
	if s.OutputDir != "" {
		cfg.OutputDir = s.OutputDir
	}
	if s.Datasette {
		cfg.Datasette.Enabled = true
	}
	if s.DatasetteDB != "" {
		cfg.Datasette.DBFile = s.DatasetteDB
	}
	return s.SourceFlags.apply(cfg)
}

// Run scrapes once. Upstream failures only shrink or empty catalogs, so the
// command succeeds unless it is misconfigured.
func (s *ScrapeCmd) Run(ctx context.Context, cfg *config.Config) error {
	if err := s.apply(cfg); err != nil {
		return err
	}

	fs := afero.NewOsFs()
	if err := fs.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire scrape lock: %w", err)
	}
	if !locked {
		slog.Warn("Another scrape is already running, skipping", "lock", lock.Path())
		return nil
	}
	defer func() { _ = lock.Unlock() }()

	if cfg.TMDBAPIKey == "" {
		slog.Warn("TMDB_API_KEY is not set, every catalog will be empty")
	}
	if cfg.RPDBAPIKey == "" {
		slog.Info("RPDB_API_KEY is not set, ratings are disabled")
	}

	var store datastore.Store
	if cfg.Datasette.Enabled {
		store = datastore.New(cfg.Datasette)
	}

	scrapeAll(ctx, newBuilder(cfg), snapshot.NewWriter(fs, cfg.OutputDir), store, time.Now())
	return nil
}

// scrapeAll builds and writes every catalog sequentially. Write failures are
// logged and do not stop the remaining catalogs.
func scrapeAll(ctx context.Context, builder entryBuilder, writer *snapshot.Writer, store datastore.Store, runAt time.Time) {
	slog.Info("Scraping Top 10 catalogs", "catalogs", len(catalog.AllIDs()))

	var rankings []datastore.Ranking
	written := 0
	for _, id := range catalog.AllIDs() {
		if ctx.Err() != nil {
			slog.Warn("Scrape interrupted", "catalog", id.String())
			break
		}

		entries := builder.Entries(ctx, id)

		snap := make([]snapshot.Entry, 0, len(entries))
		for _, e := range entries {
			snap = append(snap, snapshot.NewEntry(e.Meta, e.Rating))
			rankings = append(rankings, newRanking(runAt, id, e))
		}

		if _, err := writer.Write(id, snap); err != nil {
			slog.Error("Failed to write snapshot", "catalog", id.String(), "error", err)
			continue
		}
		written++
	}

	if store != nil {
		if err := datastore.Export(store, rankings); err != nil {
			slog.Error("Failed to export rankings", "error", err)
		}
	}

	slog.Info("Scrape finished", "written", written, "rankings", len(rankings))
}

func newRanking(runAt time.Time, id catalog.ID, e pipeline.Entry) datastore.Ranking {
	r := datastore.Ranking{
		RunAt:     runAt,
		CatalogID: id.String(),
		Rank:      e.Title.Rank,
		TMDBID:    e.Meta.ProviderID,
		Name:      e.Item.Name,
		Year:      e.Meta.Year,
		Type:      e.Item.Type,
	}
	if rating, ok := e.Rating.Get(); ok {
		r.IMDbRating = rating.IMDb
		r.RTRating = rating.RottenTomatoes
		r.MetaRating = rating.Metacritic
	}
	return r
}
