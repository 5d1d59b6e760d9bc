// Package datastore exports ranking history to a local SQLite file or a
// remote Datasette instance.
package datastore

import "github.com/Al69m/top10-streaming-fr/internal/config"

// Store defines the interface for ranking history storage
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert inserts multiple records into the specified table
	BatchInsert(database string, table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}

// New returns the store selected by cfg.
func New(cfg config.DatasetteConfig) Store {
	if cfg.Mode == config.DatasetteRemote {
		return NewDatasetteClient(cfg.RemoteURL, cfg.APIToken)
	}
	return NewSQLiteStore(cfg.DBFile)
}
