package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/counters/internal/store"
	"github.com/joestump/counters/internal/testutil"
)

func newCounterStore(t *testing.T) *store.CounterStore {
	t.Helper()
	return store.NewCounterStore(testutil.NewTestDB(t))
}

func TestCounterStore_Add(t *testing.T) {
	s := newCounterStore(t)
	ctx := context.Background()

	c, err := s.Add(ctx, "score", 5)
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "score", c.Name)
	assert.Equal(t, int64(5), c.Counter)

	got, err := s.GetByName(ctx, "score")
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCounterStore_Add_IsNotUpsert(t *testing.T) {
	s := newCounterStore(t)
	ctx := context.Background()

	first, err := s.Add(ctx, "dup", 1)
	require.NoError(t, err)
	second, err := s.Add(ctx, "dup", 7)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Lookups resolve to the first row created with the name.
	got, err := s.GetByName(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, int64(1), got.Counter)
}

func TestCounterStore_GetByName_NotFound(t *testing.T) {
	s := newCounterStore(t)

	_, err := s.GetByName(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCounterStore_ListAll_Empty(t *testing.T) {
	s := newCounterStore(t)

	all, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestCounterStore_ListAll_GrowsOnlyOnAdd(t *testing.T) {
	s := newCounterStore(t)
	ctx := context.Background()

	for i, name := range []string{"a", "b", "a"} {
		_, err := s.Add(ctx, name, int64(i))
		require.NoError(t, err)

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, i+1)
	}

	_, err := s.Subtract(ctx, "a", 1)
	require.NoError(t, err)
	_, err = s.GetByName(ctx, "b")
	require.NoError(t, err)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
	assert.Less(t, all[0].ID, all[1].ID)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestCounterStore_Subtract(t *testing.T) {
	s := newCounterStore(t)
	ctx := context.Background()

	created, err := s.Add(ctx, "score", 5)
	require.NoError(t, err)

	updated, err := s.Subtract(ctx, "score", 2)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(3), updated.Counter)

	got, err := s.GetByName(ctx, "score")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Counter)
}

func TestCounterStore_Subtract_GoesNegative(t *testing.T) {
	s := newCounterStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "low", 1)
	require.NoError(t, err)

	updated, err := s.Subtract(ctx, "low", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), updated.Counter)
}

func TestCounterStore_Subtract_OnlyFirstMatch(t *testing.T) {
	s := newCounterStore(t)
	ctx := context.Background()

	first, err := s.Add(ctx, "dup", 10)
	require.NoError(t, err)
	second, err := s.Add(ctx, "dup", 10)
	require.NoError(t, err)

	updated, err := s.Subtract(ctx, "dup", 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(7), all[0].Counter)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, int64(10), all[1].Counter)
}

func TestCounterStore_Subtract_NotFound(t *testing.T) {
	s := newCounterStore(t)

	_, err := s.Subtract(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCounterStore_Subtract_Zero(t *testing.T) {
	s := newCounterStore(t)
	ctx := context.Background()

	created, err := s.Add(ctx, "score", 5)
	require.NoError(t, err)

	got, err := s.Subtract(ctx, "score", 0)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Subtract(ctx, "ghost", 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// runConcurrently calls fn from n goroutines at once and returns every error.
func runConcurrently(n int, fn func() error) []error {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		errs  []error
		start = make(chan struct{})
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()
	return errs
}

func TestCounterStore_ConcurrentAdd(t *testing.T) {
	s := store.NewCounterStore(testutil.NewFileDB(t))
	ctx := context.Background()

	errs := runConcurrently(50, func() error {
		_, err := s.Add(ctx, "x", 1)
		return err
	})
	require.Empty(t, errs)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)
}

func TestCounterStore_ConcurrentSubtract(t *testing.T) {
	s := store.NewCounterStore(testutil.NewFileDB(t))
	ctx := context.Background()

	_, err := s.Add(ctx, "score", 1000)
	require.NoError(t, err)

	errs := runConcurrently(50, func() error {
		_, err := s.Subtract(ctx, "score", 1)
		return err
	})
	require.Empty(t, errs)

	got, err := s.GetByName(ctx, "score")
	require.NoError(t, err)
	assert.Equal(t, int64(950), got.Counter)
}

func TestCounter_String(t *testing.T) {
	c := &store.Counter{ID: 1, Name: "score", Counter: -2}
	assert.Equal(t, `Counter{id: 1, name: "score", counter: -2}`, c.String())
}
