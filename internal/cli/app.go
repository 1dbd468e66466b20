package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/services"
)

// State is the dispatcher's lifecycle state
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns the state name
func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// App is the interactive command dispatcher. It owns the task store and
// applies one parsed command per input line until quit or end of input.
type App struct {
	store        *services.TaskStore
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	in           *bufio.Reader
	out          io.Writer
	config       *config.Config
	state        State
}

// NewApp creates a dispatcher reading commands from in and writing the transcript to out.
// A nil cfg uses the defaults.
func NewApp(store *services.TaskStore, in io.Reader, out io.Writer, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		store:        store,
		errorHandler: NewErrorHandler(),
		in:           bufio.NewReader(in),
		out:          out,
		config:       cfg,
		state:        StateRunning,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// State returns the current dispatcher state
func (a *App) State() State {
	return a.state
}

// Run reads and executes commands until quit or end of input.
// End of input says goodbye like quit and is not an error; a failed read,
// a failed write or a store backend failure ends the loop with an error.
func (a *App) Run(ctx context.Context) error {
	logging.Debugf("dispatcher started with %s store\n", a.config.Store.Backend)

	if a.config.ShowBanner() {
		if err := writeLine(a.out, output.Banner); err != nil {
			return err
		}
	}

	for a.state == StateRunning {
		if a.config.ShowPrompt() {
			if _, err := io.WriteString(a.out, a.config.Display.Prompt); err != nil {
				return fmt.Errorf("failed to write prompt: %w", err)
			}
		}

		line, readErr := a.in.ReadString('\n')
		if readErr != nil && !stderrors.Is(readErr, io.EOF) {
			return errors.NewInputStreamError(readErr)
		}

		// A last line without a newline is still a command.
		if line != "" {
			if err := a.Execute(ctx, line); err != nil {
				return err
			}
		}

		if readErr != nil && a.state == StateRunning {
			logging.Debugln("end of input")
			if a.config.ShowPrompt() {
				if err := writeLine(a.out, ""); err != nil {
					return err
				}
			}
			if err := a.dispatch(ctx, Command{Kind: CommandQuit}); err != nil {
				return err
			}
		}
	}

	logging.Debugln("dispatcher terminated")
	return nil
}

// Execute parses a single input line and applies it
func (a *App) Execute(ctx context.Context, line string) error {
	return a.dispatch(ctx, Parse(line))
}

func (a *App) dispatch(ctx context.Context, cmd Command) error {
	logging.Debugf("dispatching %s command\n", cmd.Kind)
	next, err := a.registry.Execute(ctx, cmd)
	if err != nil {
		return err
	}
	a.state = next
	return nil
}

// writeLine writes one transcript line
func writeLine(w io.Writer, line string) error {
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
