package datastore

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// Scheduled scrapes may overlap with a reader such as a running Datasette.
const sqlitePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// SQLiteStore appends ranking rows to a local SQLite file that Datasette
// can serve directly.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore returns a store for the database file at dbPath. The file is
// created on first use.
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{dbPath: dbPath}
}

// Connect opens the database and checks that it is usable.
func (s *SQLiteStore) Connect() error {
	db, err := sql.Open("sqlite", s.dbPath+sqlitePragmas)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.dbPath, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("open %s: %w", s.dbPath, err)
	}
	s.db = db
	return nil
}

// CreateTable executes a CREATE TABLE IF NOT EXISTS statement.
func (s *SQLiteStore) CreateTable(schema string) error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// BatchInsert writes all records in one transaction; either every row lands
// or none does. The column set is taken from the first record.
func (s *SQLiteStore) BatchInsert(_ string, table string, records []map[string]any) error {
	if len(records) == 0 {
		return nil
	}

	columns := recordColumns(records[0])

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(insertStatement(table, columns))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", table, err)
	}
	defer func() { _ = stmt.Close() }()

	args := make([]any, len(columns))
	for n, record := range records {
		for i, col := range columns {
			args[i] = record[col]
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert row %d into %s: %w", n, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", table, err)
	}
	return nil
}

// Close releases the connection. It is safe to call more than once.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func recordColumns(record map[string]any) []string {
	columns := make([]string, 0, len(record))
	for col := range record {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}

func insertStatement(table string, columns []string) string {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = `"` + col + `"`
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES (%s)`, table, strings.Join(quoted, ", "), placeholders)
}
