// Package snapshot persists built catalogs as JSON files, one per catalog,
// in the layout published by scheduled scrape runs.
package snapshot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/lookup"
)

// Scores is the rating block of a snapshot entry.
type Scores struct {
	IMDb   *float64 `json:"imdb"`
	Tomato *int     `json:"tomato"`
	Meta   *int     `json:"meta"`
}

// Entry is one persisted title. Poster and Rating are null when unknown.
type Entry struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Poster   *string `json:"poster"`
	Overview string  `json:"overview"`
	Year     string  `json:"year"`
	Type     string  `json:"type"`
	Rating   *Scores `json:"rating"`
}

// NewEntry converts resolved metadata and an optional rating into an Entry.
// Type is the TMDB media type, "movie" or "tv".
func NewEntry(meta catalog.Metadata, rating lookup.Result[catalog.Rating]) Entry {
	entry := Entry{
		ID:       meta.ProviderID,
		Name:     meta.Name,
		Overview: meta.Synopsis,
		Year:     meta.Year,
		Type:     mediaType(meta.Kind),
	}
	if meta.Poster != "" {
		poster := meta.Poster
		entry.Poster = &poster
	}
	if r, ok := rating.Get(); ok {
		entry.Rating = &Scores{IMDb: r.IMDb, Tomato: r.RottenTomatoes, Meta: r.Metacritic}
	}
	return entry
}

func mediaType(kind catalog.Kind) string {
	if kind == catalog.KindSeries {
		return "tv"
	}
	return "movie"
}

// FileName returns the snapshot file name of a catalog.
func FileName(id catalog.ID) string {
	return id.String() + ".json"
}

// Writer writes snapshots below a directory.
type Writer struct {
	fs  afero.Fs
	dir string
}

// NewWriter creates a Writer on fs. Production code passes afero.NewOsFs().
func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// Path returns the file path of a catalog's snapshot.
func (w *Writer) Path(id catalog.ID) string {
	return filepath.Join(w.dir, FileName(id))
}

// Write replaces the snapshot of a catalog with entries, as an indented JSON
// array. An empty catalog is written as [].
func (w *Writer) Write(id catalog.ID, entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := w.Path(id)
	slog.Info("Writing JSON file", "filename", path, "entries", len(entries))
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}
	return path, nil
}
