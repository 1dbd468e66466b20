// Package memory is the default task backend: an owned slice plus an id counter.
package memory

import (
	"context"
	"iter"
	"strconv"

	"todo/internal/domain"
	"todo/internal/errors"
)

// Store keeps tasks in insertion order. It is not safe for concurrent use;
// the dispatcher that owns it is single-threaded.
type Store struct {
	tasks  []domain.Task
	nextID uint64
}

// New creates an empty store whose first id is 1
func New() *Store {
	return &Store{nextID: 1}
}

// CreateTask appends a pending task with the next id
func (s *Store) CreateTask(ctx context.Context, description string) (domain.Task, error) {
	task := domain.NewTask(s.nextID, description)
	s.tasks = append(s.tasks, task)
	s.nextID++
	return task, nil
}

// ListTasks yields copies of the stored tasks in insertion order
func (s *Store) ListTasks(ctx context.Context) iter.Seq2[domain.Task, error] {
	return func(yield func(domain.Task, error) bool) {
		for i := range s.tasks {
			if !yield(s.tasks[i], nil) {
				return
			}
		}
	}
}

// CompleteTask scans for the id and marks the first match completed
func (s *Store) CompleteTask(ctx context.Context, id uint64) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Complete()
			return nil
		}
	}
	return errors.NewNotFoundError("task", strconv.FormatUint(id, 10))
}

// CountTasks returns the number of stored tasks
func (s *Store) CountTasks(ctx context.Context) (int, error) {
	return len(s.tasks), nil
}

// Close is a no-op; the slice goes away with the store
func (s *Store) Close() error {
	return nil
}
