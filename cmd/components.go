package cmd

import (
	"github.com/Al69m/top10-streaming-fr/internal/config"
	"github.com/Al69m/top10-streaming-fr/internal/pipeline"
	"github.com/Al69m/top10-streaming-fr/internal/rpdb"
	"github.com/Al69m/top10-streaming-fr/internal/source"
	"github.com/Al69m/top10-streaming-fr/internal/tmdb"
)

// Overridable in tests.
var newBuilder = buildPipeline

func newLister(cfg *config.Config) source.Lister {
	if cfg.Source.Mode == config.SourceMirror {
		return source.NewMirror(cfg.Source.MirrorURL, nil)
	}
	return source.NewScraper(
		source.WithScraperBaseURL(cfg.Source.BaseURL),
		source.WithCountry(cfg.Source.Country),
		source.WithParser(source.ParserByName(cfg.Source.Parser)),
	)
}

func buildPipeline(cfg *config.Config) *pipeline.Builder {
	tmdbClient := tmdb.NewClient(cfg.TMDBAPIKey,
		tmdb.WithBaseURL(cfg.TMDBBaseURL),
		tmdb.WithLanguage(cfg.TMDBLanguage),
	)
	metadata := tmdb.NewResolver(tmdbClient,
		tmdb.WithMatchPolicy(cfg.MatchPolicy),
		tmdb.WithIMDbIDs(cfg.RatingsBy == config.RatingsByIMDb),
	)

	rpdbClient := rpdb.NewClient(cfg.RPDBAPIKey, rpdb.WithBaseURL(cfg.RPDBBaseURL))
	ratings := rpdb.NewResolver(rpdbClient)

	return pipeline.NewBuilder(newLister(cfg), metadata, ratings,
		pipeline.WithParallel(cfg.Parallel),
		pipeline.WithRatingsBy(cfg.RatingsBy),
	)
}

// SourceFlags are shared by commands that build catalogs.
type SourceFlags struct {
	Source   string `help:"Ranking source: scrape or mirror"`
	Parallel bool   `help:"Resolve the titles of a catalog concurrently"`
}

func (f SourceFlags) apply(cfg *config.Config) error {
	if f.Source != "" {
		cfg.Source.Mode = f.Source
	}
	if f.Parallel {
		cfg.Parallel = true
	}
	return cfg.Validate()
}
