package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Al69m/top10-streaming-fr/internal/config"
	"github.com/Al69m/top10-streaming-fr/internal/server"
)

// ServeCmd serves the addon over HTTP.
type ServeCmd struct {
	SourceFlags `embed:""`

	Port int `short:"p" help:"Listen port (defaults to PORT or 7000)"`
}

// Run blocks until the process receives SIGINT or SIGTERM.
func (s *ServeCmd) Run(ctx context.Context, cfg *config.Config) error {
	if s.Port != 0 {
		cfg.Port = s.Port
	}
	if err := s.SourceFlags.apply(cfg); err != nil {
		return err
	}

	if cfg.TMDBAPIKey == "" {
		slog.Warn("TMDB_API_KEY is not set, every catalog will be empty")
	}
	slog.Info("Starting addon", "port", cfg.Port, "source", cfg.Source.Mode, "parallel", cfg.Parallel)

	return server.New(newBuilder(cfg)).Run(ctx, fmt.Sprintf(":%d", cfg.Port))
}
