package cli

import (
	"context"
	"io"

	"todo/internal/output"
	"todo/internal/services"
)

// AddCommand handles "add <text>"
type AddCommand struct {
	store        *services.TaskStore
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{store: app.store, out: app.out, errorHandler: app.errorHandler}
}

// Handle stores the task and confirms its id
func (c *AddCommand) Handle(ctx context.Context, cmd Command) (State, error) {
	id, err := c.store.Add(ctx, cmd.Text)
	if err != nil {
		return StateRunning, c.errorHandler.Handle(c.out, cmd, err)
	}
	return StateRunning, writeLine(c.out, output.Added(id))
}
