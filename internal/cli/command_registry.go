package cli

import (
	"context"
	"fmt"
)

// Handler applies one kind of parsed command and returns the next dispatcher state
type Handler interface {
	Handle(ctx context.Context, cmd Command) (State, error)
}

// CommandRegistry routes parsed commands to their handlers by kind
type CommandRegistry struct {
	handlers map[CommandKind]Handler
}

// NewCommandRegistry creates a registry with a handler for every command kind
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		handlers: make(map[CommandKind]Handler),
	}

	rejected := NewRejectedCommand(app)

	registry.Register(CommandAdd, NewAddCommand(app))
	registry.Register(CommandList, NewListCommand(app))
	registry.Register(CommandComplete, NewDoneCommand(app))
	registry.Register(CommandQuit, NewQuitCommand(app))
	registry.Register(CommandInvalid, rejected)
	registry.Register(CommandUnknown, rejected)

	return registry
}

// Register sets the handler for a command kind, replacing any previous one
func (r *CommandRegistry) Register(kind CommandKind, handler Handler) {
	r.handlers[kind] = handler
}

// Execute runs the handler registered for the command's kind
func (r *CommandRegistry) Execute(ctx context.Context, cmd Command) (State, error) {
	handler, exists := r.handlers[cmd.Kind]
	if !exists {
		return StateRunning, fmt.Errorf("no handler registered for %s command", cmd.Kind)
	}
	return handler.Handle(ctx, cmd)
}
