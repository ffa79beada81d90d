package migrations

// MySQL scopes index names to the table, so DROP INDEX needs an ON clause
// there and must not have one on SQLite or PostgreSQL.

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddCountersNameIndex, downAddCountersNameIndex)
}

func upAddCountersNameIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE INDEX counters_name_idx ON counters (name, id)`)
	return err
}

func downAddCountersNameIndex(ctx context.Context, tx *sql.Tx) error {
	stmt := `DROP INDEX counters_name_idx`
	if dialect == "mysql" {
		stmt += ` ON counters`
	}
	_, err := tx.ExecContext(ctx, stmt)
	return err
}
