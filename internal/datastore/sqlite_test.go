package datastore

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreCreateTableAndInsert(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = store.Close() }()

	schema := `CREATE TABLE IF NOT EXISTS test_table (
		id INTEGER PRIMARY KEY,
		name TEXT,
		value INTEGER
	)`
	if err := store.CreateTable(schema); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	records := []map[string]any{
		{"id": 1, "name": "foo", "value": 42},
		{"id": 2, "name": "bar", "value": nil},
	}
	if err := store.BatchInsert("top10", "test_table", records); err != nil {
		t.Fatalf("failed to batch insert: %v", err)
	}

	rows, err := store.db.Query("SELECT id, name, value FROM test_table ORDER BY id")
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	defer func() { _ = rows.Close() }()

	var count, nulls int
	for rows.Next() {
		var id int
		var name string
		var value *int
		if err := rows.Scan(&id, &name, &value); err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		if value == nil {
			nulls++
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
	if nulls != 1 {
		t.Errorf("expected 1 NULL value, got %d", nulls)
	}
}

func TestSQLiteStoreBatchInsertRollsBackOnError(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(`CREATE TABLE t (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	records := []map[string]any{{"id": 1}, {"id": 1}}
	if err := store.BatchInsert("top10", "t", records); err == nil {
		t.Fatal("expected duplicate key error")
	}

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM t").Scan(&count); err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rollback to leave 0 rows, got %d", count)
	}
}

func TestSQLiteStoreEmptyBatch(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.BatchInsert("top10", "t", nil); err != nil {
		t.Errorf("expected no error for empty batch, got %v", err)
	}
}

func TestInsertStatementQuotesColumns(t *testing.T) {
	columns := recordColumns(map[string]any{"rank": 1, "name": "x", "run_at": "t"})
	got := insertStatement("top10_rankings", columns)

	want := `INSERT INTO "top10_rankings" ("name", "rank", "run_at") VALUES (?, ?, ?)`
	if got != want {
		t.Errorf("insertStatement() = %q, want %q", got, want)
	}
}

func TestSQLiteStoreCloseTwice(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
