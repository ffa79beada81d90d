package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/counters/internal/api"
	"github.com/joestump/counters/internal/store"
	"github.com/joestump/counters/internal/testutil"
)

// testEnv holds the router and the store it is wired to.
type testEnv struct {
	Router       http.Handler
	CounterStore *store.CounterStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires the counter routes to a real store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cs := store.NewCounterStore(testutil.NewTestDB(t))
	return &testEnv{
		Router:       newRouter(cs),
		CounterStore: cs,
	}
}

func newRouter(counters store.Counters) http.Handler {
	r := chi.NewRouter()
	api.RegisterRoutes(r, api.Deps{Counters: counters})
	return r
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

var errBroken = errors.New("connection refused")

// brokenStore fails every operation the way an unreachable database would.
type brokenStore struct{}

func (brokenStore) ListAll(context.Context) ([]*store.Counter, error) { return nil, errBroken }
func (brokenStore) Add(context.Context, string, int64) (*store.Counter, error) {
	return nil, errBroken
}
func (brokenStore) Subtract(context.Context, string, int64) (*store.Counter, error) {
	return nil, errBroken
}
func (brokenStore) GetByName(context.Context, string) (*store.Counter, error) { return nil, errBroken }
func (brokenStore) Count(context.Context) (int64, error)                     { return 0, errBroken }
