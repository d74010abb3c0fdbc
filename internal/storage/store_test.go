package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, driver string, opts ...Option) *TaskStore {
	t.Helper()
	store, err := Open(t.Context(), Options{
		Driver: driver,
		Path:   filepath.Join(t.TempDir(), "data", "tasks.db"),
	}, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestTaskStore_AddFetchRoundTrip(t *testing.T) {
	for _, driver := range []string{DriverCGO, DriverPure} {
		t.Run(driver, func(t *testing.T) {
			store := openStore(t, driver)
			ctx := t.Context()

			created, err := store.Add(ctx, "Buy milk")
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.Equal(t, "Buy milk", created.Title)

			all, err := store.FetchAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, created.ID, all[0].ID)
			assert.Equal(t, "Buy milk", all[0].Title)
		})
	}
}

func TestTaskStore_AddAssignsDistinctIDs(t *testing.T) {
	store := openStore(t, DriverCGO)
	ctx := t.Context()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		task, err := store.Add(ctx, fmt.Sprintf("task %d", i))
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "id %s reused", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskStore_RenamePreservesIDAndPosition(t *testing.T) {
	store := openStore(t, DriverCGO)
	ctx := t.Context()

	first, err := store.Add(ctx, "Walk dog")
	require.NoError(t, err)
	milk, err := store.Add(ctx, "Buy milk")
	require.NoError(t, err)
	_, err = store.Add(ctx, "Call mom")
	require.NoError(t, err)

	renamed, err := store.Rename(ctx, milk, "Buy milk and eggs")
	require.NoError(t, err)
	assert.Equal(t, milk.ID, renamed.ID)
	assert.Equal(t, "Buy milk and eggs", renamed.Title)

	all, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, milk.ID, all[1].ID)
	assert.Equal(t, "Buy milk and eggs", all[1].Title)
	assert.Equal(t, "Call mom", all[2].Title)
}

func TestTaskStore_Remove(t *testing.T) {
	store := openStore(t, DriverCGO)
	ctx := t.Context()

	keep, err := store.Add(ctx, "keep")
	require.NoError(t, err)
	drop, err := store.Add(ctx, "drop")
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, drop))

	all, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	err = store.Remove(ctx, drop)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskStore_RenameMissingTask(t *testing.T) {
	store := openStore(t, DriverCGO)

	task, err := store.Add(t.Context(), "gone soon")
	require.NoError(t, err)
	require.NoError(t, store.Remove(t.Context(), task))

	_, err = store.Rename(t.Context(), task, "too late")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskStore_ToleratesEmptyTitle(t *testing.T) {
	store := openStore(t, DriverCGO)

	task, err := store.Add(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, "", task.Title)

	got, err := store.Get(t.Context(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Title)
}

func TestTaskStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	ctx := t.Context()

	store, err := Open(ctx, Options{Driver: DriverPure, Path: path})
	require.NoError(t, err)
	created, err := store.Add(ctx, "persist me")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, Options{Driver: DriverPure, Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	all, err := reopened.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "persist me", all[0].Title)
}

func TestTaskStore_InjectedClockAndIDs(t *testing.T) {
	fixed := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	next := 0
	store := openStore(t, DriverCGO,
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(func() string {
			next++
			return fmt.Sprintf("task-%d", next)
		}),
	)

	task, err := store.Add(t.Context(), "fixed")
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.True(t, task.CreatedAt.Equal(fixed))
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(t.Context(), Options{Driver: DriverCGO})
	assert.Error(t, err)

	_, err = Open(t.Context(), Options{Driver: "bogus", Path: filepath.Join(t.TempDir(), "x.db")})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

type failingRepo struct {
	err error
}

func (f failingRepo) CreateTask(context.Context, Task) error        { return f.err }
func (f failingRepo) GetTask(context.Context, string) (Task, error) { return Task{}, f.err }
func (f failingRepo) UpdateTask(context.Context, Task) error        { return f.err }
func (f failingRepo) DeleteTask(context.Context, string) error      { return f.err }
func (f failingRepo) ListTasks(context.Context, TaskListFilter) ([]Task, error) {
	return nil, f.err
}

func TestTaskStore_PropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("disk I/O error")
	store := New(failingRepo{err: boom})
	ctx := context.Background()

	_, err := store.FetchAll(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = store.Add(ctx, "x")
	assert.ErrorIs(t, err, boom)

	_, err = store.Rename(ctx, model.Task{ID: "id-1", Title: "x"}, "y")
	assert.ErrorIs(t, err, boom)

	err = store.Remove(ctx, model.Task{ID: "id-1", Title: "x"})
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, store.Close())
}
