package storage

import "time"

type Task struct {
	ID        string
	Title     string
	CreatedAt time.Time
}

type TaskListFilter struct {
	Limit  int
	Offset int
}
