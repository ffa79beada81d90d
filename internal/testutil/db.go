package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/counters/internal/db"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB and runs all goose migrations.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn := NewEmptyDB(t)
	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return conn
}

// NewEmptyDB opens an in-memory SQLite DB without applying any migrations.
func NewEmptyDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// Use a file URI with shared cache so all pool connections share the
	// same in-memory database. Each test gets a unique name to avoid
	// cross-test interference.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// NewFileDB opens a migrated SQLite database file in a temporary directory
// through db.New, with a pool of several connections. Use it where
// connections must contend for the file's write lock.
func NewFileDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.New("sqlite3", filepath.Join(t.TempDir(), "counters.db"), db.PoolOptions{
		MaxOpenConns: 10,
		MaxIdleConns: 10,
		BusyTimeout:  5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open sqlite file: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return conn
}
