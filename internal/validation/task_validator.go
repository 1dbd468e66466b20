package validation

import (
	"todo/internal/domain"
)

// TaskValidator checks descriptions before they are stored and tasks after
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateDescription validates a task description for creation.
// Surrounding whitespace does not count towards the description.
func (tv *TaskValidator) ValidateDescription(description string) error {
	taskErr := &TaskError{}
	tv.checkDescription(taskErr, description)
	return taskErr.orNil()
}

// ValidateTask validates a task returned by a backend
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	taskErr := &TaskError{}
	tv.checkDescription(taskErr, task.Description)
	if task.ID == 0 {
		taskErr.add(RuleIDAssigned)
	}
	return taskErr.orNil()
}

// GetValidDescription returns the cleaned description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndNormalize(description), nil
}

func (tv *TaskValidator) checkDescription(taskErr *TaskError, description string) {
	if !tv.validator.IsNonEmptyString(description) {
		taskErr.add(RuleDescriptionRequired)
	}
}
