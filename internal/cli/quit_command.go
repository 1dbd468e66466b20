package cli

import (
	"context"
	"io"

	"todo/internal/output"
)

// QuitCommand handles "quit" and end of input
type QuitCommand struct {
	out io.Writer
}

// NewQuitCommand creates a new quit command handler
func NewQuitCommand(app *App) *QuitCommand {
	return &QuitCommand{out: app.out}
}

// Handle says goodbye and terminates the dispatcher
func (c *QuitCommand) Handle(ctx context.Context, cmd Command) (State, error) {
	if err := writeLine(c.out, output.Farewell); err != nil {
		return StateTerminated, err
	}
	return StateTerminated, nil
}
