// Package repository defines the storage contract behind the task store.
//
// A backend owns task records and the id counter. It does not validate
// descriptions; that is done by services.TaskStore before a record reaches
// the backend.
package repository

import (
	"context"
	"iter"

	"todo/internal/domain"
)

// Repository defines the interface for task storage backends
type Repository interface {
	// CreateTask appends a pending task with the next id and returns it.
	// Ids start at 1, strictly increase and are never reused.
	CreateTask(ctx context.Context, description string) (domain.Task, error)

	// ListTasks yields tasks by value in insertion order. The sequence is
	// lazy and can be ranged over any number of times.
	ListTasks(ctx context.Context) iter.Seq2[domain.Task, error]

	// CompleteTask marks the first task with the given id as completed.
	// It returns an errors.ErrNotFound match when no task has that id.
	CompleteTask(ctx context.Context, id uint64) error

	// CountTasks returns the number of stored tasks
	CountTasks(ctx context.Context) (int, error)

	// Close releases backend resources
	Close() error
}
