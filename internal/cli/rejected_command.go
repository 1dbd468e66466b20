package cli

import (
	"context"
	"io"
)

// RejectedCommand answers lines that did not parse into a runnable command:
// unknown keywords and done with a non-numeric id.
type RejectedCommand struct {
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewRejectedCommand creates a handler for unknown and invalid commands
func NewRejectedCommand(app *App) *RejectedCommand {
	return &RejectedCommand{out: app.out, errorHandler: app.errorHandler}
}

// Handle prints the usage hint or the invalid id message
func (c *RejectedCommand) Handle(ctx context.Context, cmd Command) (State, error) {
	return StateRunning, c.errorHandler.Handle(c.out, cmd, cmd.Err())
}
