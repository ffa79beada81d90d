// Package migrations holds the goose migrations for the counters table. They
// are Go rather than SQL files because the column types and the DROP INDEX
// syntax differ between SQLite, PostgreSQL and MySQL.
package migrations

// dialect is set by db.Migrate before goose runs.
var dialect string

// SetDialect selects the SQL flavour the counters migrations emit:
// "sqlite3", "postgres" or "mysql".
func SetDialect(d string) {
	dialect = d
}
