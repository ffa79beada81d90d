package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no counter matches the requested name.
var ErrNotFound = errors.New("not found")

// Counters exposes all counter data operations.
// No handler may query the DB directly; all access goes through this interface.
type Counters interface {
	ListAll(ctx context.Context) ([]*Counter, error)
	Add(ctx context.Context, name string, value int64) (*Counter, error)
	Subtract(ctx context.Context, name string, amount int64) (*Counter, error)
	GetByName(ctx context.Context, name string) (*Counter, error)
	Count(ctx context.Context) (int64, error)
}
