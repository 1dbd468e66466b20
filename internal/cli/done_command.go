package cli

import (
	"context"
	"io"

	"todo/internal/output"
	"todo/internal/services"
)

// DoneCommand handles "done <id>"
type DoneCommand struct {
	store        *services.TaskStore
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{store: app.store, out: app.out, errorHandler: app.errorHandler}
}

// Handle marks the task completed, or reports that no task has the id
func (c *DoneCommand) Handle(ctx context.Context, cmd Command) (State, error) {
	if err := c.store.Complete(ctx, cmd.ID); err != nil {
		return StateRunning, c.errorHandler.Handle(c.out, cmd, err)
	}
	return StateRunning, writeLine(c.out, output.Completed(cmd.ID))
}
