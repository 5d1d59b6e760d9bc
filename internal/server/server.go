// Package server exposes the catalogs as a Stremio addon over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

const shutdownTimeout = 10 * time.Second

// CatalogBuilder builds the items of a catalog on demand.
type CatalogBuilder interface {
	Build(ctx context.Context, id catalog.ID) []catalog.Item
}

// Server serves the addon manifest and catalogs.
type Server struct {
	builder  CatalogBuilder
	manifest catalog.Manifest
}

// New creates a Server backed by builder.
func New(builder CatalogBuilder) *Server {
	return &Server{
		builder:  builder,
		manifest: catalog.NewManifest(),
	}
}

// Router returns the HTTP handler with every route and middleware registered.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware, corsMiddleware)

	r.HandleFunc("/health", handleHealth).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/manifest.json", s.handleManifest).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/catalog/{type}/{id}/{extra}.json", s.handleTypedCatalog).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/catalog/{type}/{id}.json", s.handleTypedCatalog).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/catalog/{id}", s.handleCatalog).Methods(http.MethodGet, http.MethodOptions)

	r.NotFoundHandler = requestIDMiddleware(corsMiddleware(http.HandlerFunc(handleNotFound)))
	r.MethodNotAllowedHandler = requestIDMiddleware(corsMiddleware(http.HandlerFunc(handleMethodNotAllowed)))
	return r
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       time.Minute,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Addon listening", "addr", ln.Addr().String(), "manifest", "/manifest.json")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down addon")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
