package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle = errors.New("model: task title is required")
	ErrMissingID  = errors.New("model: task id is required")
)

type Task struct {
	ID        string
	Title     string
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// ValidateTitle rejects empty input. Any other text, whitespace included, is
// stored as typed.
func ValidateTitle(raw string) error {
	if raw == "" {
		return ErrEmptyTitle
	}
	return nil
}

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []Task, id string) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
