package cli

import (
	"context"
	"fmt"
	"io"

	"todo/internal/output"
	"todo/internal/services"
)

// ListCommand handles "list"
type ListCommand struct {
	store *services.TaskStore
	out   io.Writer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{store: app.store, out: app.out}
}

// Handle prints every task in insertion order
func (c *ListCommand) Handle(ctx context.Context, cmd Command) (State, error) {
	if _, err := output.WriteTasks(c.out, c.store.List(ctx)); err != nil {
		return StateRunning, fmt.Errorf("failed to list tasks: %w", err)
	}
	return StateRunning, nil
}
