package services

import (
	"context"
	"iter"

	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/repository"
	"todo/internal/validation"
)

// TaskStore owns the ordered task collection. Descriptions are trimmed and
// NFC-normalised before storage; a blank description is rejected and leaves
// the store unchanged.
type TaskStore struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
}

// NewTaskStore creates a TaskStore over the given backend. The store takes
// ownership of repo and closes it in Close.
func NewTaskStore(repo repository.Repository) *TaskStore {
	return &TaskStore{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
	}
}

// Add stores a new pending task and returns its id
func (s *TaskStore) Add(ctx context.Context, description string) (uint64, error) {
	cleaned, err := s.taskValidator.GetValidDescription(description)
	if err != nil {
		return 0, errors.NewEmptyDescriptionError(err)
	}

	task, err := s.repo.CreateTask(ctx, cleaned)
	if err != nil {
		return 0, err
	}
	if err := s.taskValidator.ValidateTask(task); err != nil {
		return 0, errors.WrapError(err, errors.ErrorTypeDatabase, "backend returned an invalid task")
	}

	logging.Debugf("added task %d (%q)\n", task.ID, task.Description)
	return task.ID, nil
}

// List returns every task in insertion order, completed or not.
// Ranging over the result again yields the same tasks if nothing changed in between.
func (s *TaskStore) List(ctx context.Context) iter.Seq2[domain.Task, error] {
	return s.repo.ListTasks(ctx)
}

// Complete marks the task with the given id as completed.
// Completing an already completed task succeeds; an unknown id returns a not found error.
func (s *TaskStore) Complete(ctx context.Context, id uint64) error {
	if err := s.repo.CompleteTask(ctx, id); err != nil {
		return err
	}
	logging.Debugf("completed task %d\n", id)
	return nil
}

// Len returns the number of stored tasks
func (s *TaskStore) Len(ctx context.Context) (int, error) {
	return s.repo.CountTasks(ctx)
}

// Close releases the backend
func (s *TaskStore) Close() error {
	return s.repo.Close()
}
