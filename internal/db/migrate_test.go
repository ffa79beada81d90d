package db_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/counters/internal/db"
	"github.com/joestump/counters/internal/testutil"
)

func TestMigrate_CreatesCountersTable(t *testing.T) {
	conn := testutil.NewEmptyDB(t)

	var before int
	require.NoError(t, conn.Get(&before,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'counters'`))
	assert.Equal(t, 0, before)

	require.NoError(t, db.Migrate(conn, "sqlite3"))

	var after int
	require.NoError(t, conn.Get(&after,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'counters'`))
	assert.Equal(t, 1, after)

	var index int
	require.NoError(t, conn.Get(&index,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'counters_name_idx'`))
	assert.Equal(t, 1, index)
}

func TestMigrate_Idempotent(t *testing.T) {
	conn := testutil.NewEmptyDB(t)

	require.NoError(t, db.Migrate(conn, "sqlite3"))
	require.NoError(t, db.Migrate(conn, "sqlite3"))
}

func TestMigrate_UnknownDriver(t *testing.T) {
	conn := testutil.NewEmptyDB(t)

	err := db.Migrate(conn, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestStatus(t *testing.T) {
	conn := testutil.NewEmptyDB(t)
	require.NoError(t, db.Migrate(conn, "sqlite3"))

	var buf bytes.Buffer
	require.NoError(t, db.Status(conn, "sqlite3", &buf))
	assert.Contains(t, buf.String(), "00001  applied")
	assert.Contains(t, buf.String(), "00002  applied")
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := db.New("oracle", "dsn", db.PoolOptions{})
	require.Error(t, err)
}

func TestNew_SQLiteBusyTimeout(t *testing.T) {
	dir := t.TempDir()

	conn, err := db.New("sqlite3", filepath.Join(dir, "a.db"), db.PoolOptions{BusyTimeout: 3 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var ms int
	require.NoError(t, conn.Get(&ms, "PRAGMA busy_timeout"))
	assert.Equal(t, 3000, ms)

	// An explicit pragma in the DSN wins over the pool option.
	conn2, err := db.New("sqlite3", filepath.Join(dir, "b.db")+"?_pragma=busy_timeout(1234)",
		db.PoolOptions{BusyTimeout: 3 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn2.Close() })

	require.NoError(t, conn2.Get(&ms, "PRAGMA busy_timeout"))
	assert.Equal(t, 1234, ms)
}
