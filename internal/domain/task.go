package domain

// Marker text shown next to a task in listings.
const (
	MarkerCompleted = "[x]"
	MarkerPending   = "[ ]"
)

// Task represents one entry of the task list.
// IDs are assigned by the store and never reused; Description is fixed at creation.
type Task struct {
	ID          uint64
	Description string
	Completed   bool
}

// NewTask creates a pending Task with the given id and description.
func NewTask(id uint64, description string) Task {
	return Task{
		ID:          id,
		Description: description,
	}
}

// IsValid checks if the task has an assigned id and a description.
func (t Task) IsValid() bool {
	return t.ID > 0 && t.Description != ""
}

// Complete marks the task as done. Completing a completed task is a no-op.
func (t *Task) Complete() {
	t.Completed = true
}

// Marker returns the completion marker for display.
func (t Task) Marker() string {
	if t.Completed {
		return MarkerCompleted
	}
	return MarkerPending
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}
