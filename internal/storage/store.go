package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/tasklist/internal/model"
)

// Options configures Open.
type Options struct {
	Driver string
	Path   string
	Logger *slog.Logger
}

type Option func(*TaskStore)

func WithLogger(logger *slog.Logger) Option {
	return func(s *TaskStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *TaskStore) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// TaskStore is the durable task collection. Every mutating call commits
// before it returns; there is no batching across calls. A TaskStore is not
// safe for concurrent use and is meant to be driven from a single event loop.
type TaskStore struct {
	repo   Repository
	closer io.Closer
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

func New(repo Repository, opts ...Option) *TaskStore {
	s := &TaskStore{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	if c, ok := repo.(io.Closer); ok {
		s.closer = c
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates the database file when missing, applies migrations and returns
// a ready store.
func Open(ctx context.Context, o Options, opts ...Option) (*TaskStore, error) {
	if o.Driver == "" {
		o.Driver = DriverCGO
	}
	if o.Path == "" {
		return nil, errors.New("storage: database path is required")
	}
	if o.Path != ":memory:" {
		if dir := filepath.Dir(o.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
	}
	repo, err := OpenSQLite(o.Driver, o.Path)
	if err != nil {
		return nil, err
	}
	if err := repo.db.PingContext(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := MigrateUp(ctx, repo.db); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	store := New(repo, append([]Option{WithLogger(o.Logger)}, opts...)...)
	store.logger.Debug("task store opened", "driver", o.Driver, "path", o.Path)
	return store, nil
}

func (s *TaskStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// FetchAll returns every task in insertion order.
func (s *TaskStore) FetchAll(ctx context.Context) ([]model.Task, error) {
	rows, err := s.repo.ListTasks(ctx, TaskListFilter{})
	if err != nil {
		s.logger.Error("fetch tasks failed", "err", err)
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	out := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, toModel(row))
	}
	s.logger.Debug("fetched tasks", "count", len(out))
	return out, nil
}

// Add persists a new task and returns it with its assigned id. The title is
// stored as given; callers that want non-empty titles check before calling.
func (s *TaskStore) Add(ctx context.Context, title string) (model.Task, error) {
	row := Task{
		ID:        s.newID(),
		Title:     title,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateTask(ctx, row); err != nil {
		s.logger.Error("add task failed", "err", err)
		return model.Task{}, fmt.Errorf("add task: %w", err)
	}
	s.logger.Debug("task added", "id", row.ID)
	return toModel(row), nil
}

func (s *TaskStore) Rename(ctx context.Context, task model.Task, newTitle string) (model.Task, error) {
	if err := s.repo.UpdateTask(ctx, Task{ID: task.ID, Title: newTitle}); err != nil {
		s.logger.Error("rename task failed", "id", task.ID, "err", err)
		return model.Task{}, fmt.Errorf("rename task %s: %w", task.ID, err)
	}
	task.Title = newTitle
	s.logger.Debug("task renamed", "id", task.ID)
	return task, nil
}

func (s *TaskStore) Remove(ctx context.Context, task model.Task) error {
	if err := s.repo.DeleteTask(ctx, task.ID); err != nil {
		s.logger.Error("remove task failed", "id", task.ID, "err", err)
		return fmt.Errorf("remove task %s: %w", task.ID, err)
	}
	s.logger.Debug("task removed", "id", task.ID)
	return nil
}

// Get looks up a single task by id.
func (s *TaskStore) Get(ctx context.Context, id string) (model.Task, error) {
	row, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	return toModel(row), nil
}

func toModel(row Task) model.Task {
	return model.Task{ID: row.ID, Title: row.Title, CreatedAt: row.CreatedAt}
}
