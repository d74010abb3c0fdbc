package update

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/storage"
)

// memStore is an in-memory TaskStore with switchable failures.
type memStore struct {
	tasks     []model.Task
	next      int
	fetchErr  error
	addErr    error
	renameErr error
	removeErr error
	calls     []string
}

func (s *memStore) FetchAll(context.Context) ([]model.Task, error) {
	s.calls = append(s.calls, "fetch")
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return slices.Clone(s.tasks), nil
}

func (s *memStore) Add(_ context.Context, title string) (model.Task, error) {
	s.calls = append(s.calls, "add")
	if s.addErr != nil {
		return model.Task{}, s.addErr
	}
	s.next++
	task := model.Task{
		ID:        fmt.Sprintf("task-%d", s.next),
		Title:     title,
		CreatedAt: time.Date(2026, 2, 9, 12, 0, s.next, 0, time.UTC),
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

func (s *memStore) Rename(_ context.Context, task model.Task, newTitle string) (model.Task, error) {
	s.calls = append(s.calls, "rename")
	if s.renameErr != nil {
		return model.Task{}, s.renameErr
	}
	idx := model.IndexOf(s.tasks, task.ID)
	if idx < 0 {
		return model.Task{}, storage.ErrNotFound
	}
	s.tasks[idx].Title = newTitle
	return s.tasks[idx], nil
}

func (s *memStore) Remove(_ context.Context, task model.Task) error {
	s.calls = append(s.calls, "remove")
	if s.removeErr != nil {
		return s.removeErr
	}
	idx := model.IndexOf(s.tasks, task.ID)
	if idx < 0 {
		return storage.ErrNotFound
	}
	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	return nil
}

func (s *memStore) seed(titles ...string) {
	for _, title := range titles {
		_, _ = s.Add(context.Background(), title)
	}
	s.calls = nil
}
