package cli

import (
	stderrors "errors"
	"io"

	"todo/internal/errors"
	"todo/internal/output"
)

// ErrorHandler turns recoverable command errors into transcript messages.
// Anything else is handed back to the caller and ends the session.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle writes the user message for a recoverable error and returns nil,
// or returns err unchanged when it is fatal.
func (eh *ErrorHandler) Handle(w io.Writer, cmd Command, err error) error {
	message, ok := eh.UserMessage(cmd, err)
	if !ok {
		return err
	}
	return writeLine(w, message)
}

// UserMessage returns the message shown for a recoverable error raised by cmd.
// Fatal errors and recoverable errors without a message report false.
func (eh *ErrorHandler) UserMessage(cmd Command, err error) (string, bool) {
	if !errors.IsRecoverable(err) {
		return "", false
	}

	switch {
	case stderrors.Is(err, errors.ErrEmptyDescription):
		return output.EmptyDescription, true
	case stderrors.Is(err, errors.ErrInvalidID):
		return output.InvalidID, true
	case stderrors.Is(err, errors.ErrUnknownCommand):
		return output.UnknownCommand, true
	case stderrors.Is(err, errors.ErrNotFound):
		return output.NotFound(cmd.ID), true
	default:
		return "", false
	}
}
