package datastore

import (
	"fmt"
	"log/slog"
	"time"
)

// RankingsTable stores one row per catalog entry per scrape run.
const RankingsTable = "top10_rankings"

// RankingsSchema creates RankingsTable.
const RankingsSchema = `CREATE TABLE IF NOT EXISTS top10_rankings (
	run_at TEXT NOT NULL,
	catalog_id TEXT NOT NULL,
	rank INTEGER NOT NULL,
	tmdb_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	year TEXT,
	type TEXT NOT NULL,
	imdb_rating REAL,
	rt_rating INTEGER,
	meta_rating INTEGER,
	PRIMARY KEY (run_at, catalog_id, rank)
)`

// DatabaseName is the Datasette database that receives remote inserts.
const DatabaseName = "top10"

// Ranking is one exported row.
type Ranking struct {
	RunAt      time.Time
	CatalogID  string
	Rank       int
	TMDBID     int `db:"tmdb_id"`
	Name       string
	Year       string
	Type       string
	IMDbRating *float64
	RTRating   *int
	MetaRating *int
}

// Export writes rankings to store, creating the table first.
func Export(store Store, rankings []Ranking) error {
	if len(rankings) == 0 {
		return nil
	}

	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(RankingsSchema); err != nil {
		return err
	}

	records := make([]map[string]any, 0, len(rankings))
	for _, r := range rankings {
		records = append(records, toRecord(r))
	}

	if err := store.BatchInsert(DatabaseName, RankingsTable, records); err != nil {
		return fmt.Errorf("failed to insert rankings: %w", err)
	}

	slog.Info("Exported rankings", "table", RankingsTable, "rows", len(records))
	return nil
}
