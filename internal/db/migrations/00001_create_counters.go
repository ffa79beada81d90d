package migrations

// The surrogate key is assigned by the database, and each engine spells an
// auto-incrementing column differently, so this cannot be a plain SQL file.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateCounters, downCreateCounters)
}

func upCreateCounters(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS counters (
    id      BIGSERIAL PRIMARY KEY,
    name    VARCHAR(255) NOT NULL,
    counter BIGINT NOT NULL DEFAULT 0
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS counters (
    id      BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name    VARCHAR(255) NOT NULL,
    counter BIGINT NOT NULL DEFAULT 0
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS counters (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    name    TEXT NOT NULL,
    counter INTEGER NOT NULL DEFAULT 0
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create counters table: %w", err)
	}
	return nil
}

func downCreateCounters(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS counters`)
	return err
}
