package sqlite

import "todo/internal/domain"

// Task is a row of the tasks table
type Task struct {
	ID          int64
	Description string
	Completed   bool
}

// toDomain converts a row to the domain model
func (t Task) toDomain() domain.Task {
	return domain.Task{
		ID:          uint64(t.ID),
		Description: t.Description,
		Completed:   t.Completed,
	}
}
