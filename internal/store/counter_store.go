package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Counter represents a row in the counters table.
type Counter struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Counter int64  `db:"counter"`
}

// String renders the counter the way the text endpoints report it.
func (c *Counter) String() string {
	if c == nil {
		return "Counter{}"
	}
	return fmt.Sprintf("Counter{id: %d, name: %q, counter: %d}", c.ID, c.Name, c.Counter)
}

// CounterStore is the sqlx-backed store for counter operations.
//
// Names are not unique: Add always inserts. When several rows share a name,
// GetByName and Subtract act on the one with the lowest id.
type CounterStore struct {
	db *sqlx.DB
}

var _ Counters = (*CounterStore)(nil)

func NewCounterStore(db *sqlx.DB) *CounterStore {
	return &CounterStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *CounterStore) q(query string) string { return s.db.Rebind(query) }

// ListAll returns every counter ordered by id.
func (s *CounterStore) ListAll(ctx context.Context) ([]*Counter, error) {
	counters := []*Counter{}
	err := s.db.SelectContext(ctx, &counters, `SELECT id, name, counter FROM counters ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list counters: %w", err)
	}
	return counters, nil
}

// Add inserts a new counter row and returns it with its assigned id.
func (s *CounterStore) Add(ctx context.Context, name string, value int64) (*Counter, error) {
	var id int64
	switch s.db.DriverName() {
	case "postgres":
		// lib/pq does not implement LastInsertId.
		err := s.db.GetContext(ctx, &id, s.q(`
			INSERT INTO counters (name, counter) VALUES (?, ?) RETURNING id
		`), name, value)
		if err != nil {
			return nil, fmt.Errorf("insert counter: %w", err)
		}
	default:
		result, err := s.db.ExecContext(ctx, s.q(`
			INSERT INTO counters (name, counter) VALUES (?, ?)
		`), name, value)
		if err != nil {
			return nil, fmt.Errorf("insert counter: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("insert counter: %w", err)
		}
	}
	return &Counter{ID: id, Name: name, Counter: value}, nil
}

// Subtract decrements the first counter with the given name by amount and
// returns the updated row, or ErrNotFound. The value is not clamped at zero.
//
// The decrement is a single UPDATE so that SQLite takes the write lock up
// front instead of upgrading a read lock held by a transaction.
func (s *CounterStore) Subtract(ctx context.Context, name string, amount int64) (*Counter, error) {
	if amount == 0 {
		// MySQL reports zero affected rows for an update that changes nothing.
		return s.GetByName(ctx, name)
	}

	const update = `
		UPDATE counters SET counter = counter - ?
		WHERE id = (SELECT id FROM (SELECT MIN(id) AS id FROM counters WHERE name = ?) first_match)
	`
	if s.db.DriverName() == "postgres" {
		var c Counter
		err := s.db.GetContext(ctx, &c, s.q(update+` RETURNING id, name, counter`), amount, name)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("subtract counter: %w", err)
		}
		return &c, nil
	}

	result, err := s.db.ExecContext(ctx, s.q(update), amount, name)
	if err != nil {
		return nil, fmt.Errorf("subtract counter: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("subtract counter: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	// Rows are never deleted and ids only grow, so the first match is the
	// row just updated.
	c, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("reload counter: %w", err)
	}
	return c, nil
}

// GetByName returns the first counter with the given name, or ErrNotFound.
func (s *CounterStore) GetByName(ctx context.Context, name string) (*Counter, error) {
	var c Counter
	err := s.db.GetContext(ctx, &c, s.q(`
		SELECT id, name, counter FROM counters WHERE name = ? ORDER BY id ASC LIMIT 1
	`), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get counter: %w", err)
	}
	return &c, nil
}

// Count returns the number of counter rows.
func (s *CounterStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM counters`); err != nil {
		return 0, fmt.Errorf("count counters: %w", err)
	}
	return n, nil
}

// Ping reports whether the pool can reach the database.
func (s *CounterStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
