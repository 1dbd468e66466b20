package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/services"
)

// RootCommand is the todo command. It loads configuration, builds the task
// store and runs the interactive dispatcher on the command's input.
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags.
// Commands are read from in; the transcript goes to out and diagnostics to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		loader: config.NewLoader(),
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "An interactive task list",
		Long: `todo reads one command per line from standard input and keeps a task list
for the duration of the session.

COMMANDS:
  add <text>                               Add a pending task
  list                                     Show all tasks with their status
  done <id>                                Mark a task as done
  quit                                     Leave the session (end of input works too)

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TODO_STORE_BACKEND                     Task store backend, memory or sqlite (default: memory)
    TODO_STORE_QUERY_TIMEOUT               Per-query timeout of the sqlite store (default: 5s)
    TODO_DISPLAY_PROMPT                    Prompt written before each command (default: "> ")
    TODO_DISPLAY_BANNER                    Write the start-up banner (default: true)
    TODO_APP_QUIET                         Suppress banner and prompt (default: false)
    TODO_DEBUG                             Write debug output to stderr (default: false)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.cmd.SetIn(in)
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides the command line arguments, os.Args[1:] by default
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration of the last run, nil before Execute
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	defaults := config.NewConfig()
	flags := r.cmd.PersistentFlags()

	// Store configuration
	flags.String("store", defaults.Store.Backend, "Task store backend, memory or sqlite (overrides TODO_STORE_BACKEND)")
	flags.Duration("store-timeout", defaults.Store.QueryTimeout, "Per-query timeout of the sqlite store (overrides TODO_STORE_QUERY_TIMEOUT)")

	// Display configuration
	flags.String("prompt", defaults.Display.Prompt, "Prompt written before each command (overrides TODO_DISPLAY_PROMPT)")
	flags.Bool("no-banner", false, "Do not write the start-up banner (overrides TODO_DISPLAY_BANNER)")

	// Application configuration
	flags.BoolP("quiet", "q", false, "Suppress banner and prompt (overrides TODO_APP_QUIET)")
	flags.Bool("debug", false, "Write debug output to stderr (overrides TODO_DEBUG)")
}

// loadConfig builds the configuration from defaults, environment and the flags set on the command line
func (r *RootCommand) loadConfig() error {
	overrides, err := r.overridesFromFlags()
	if err != nil {
		return err
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg

	logging.SetOutput(r.cmd.ErrOrStderr())
	logging.SetDebug(cfg.Application.Debug)
	session := logging.StartSession()
	logging.Debugf("session %s: store=%s quiet=%t\n", session, cfg.Store.Backend, cfg.Application.Quiet)

	return nil
}

// overridesFromFlags collects only the flags that were given explicitly, so
// unset flags do not mask environment variables.
func (r *RootCommand) overridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("store") {
		backend, err := flags.GetString("store")
		if err != nil {
			return nil, err
		}
		overrides.Backend = &backend
	}
	if flags.Changed("store-timeout") {
		timeout, err := flags.GetDuration("store-timeout")
		if err != nil {
			return nil, err
		}
		overrides.QueryTimeout = &timeout
	}
	if flags.Changed("prompt") {
		prompt, err := flags.GetString("prompt")
		if err != nil {
			return nil, err
		}
		overrides.Prompt = &prompt
	}
	if flags.Changed("no-banner") {
		noBanner, err := flags.GetBool("no-banner")
		if err != nil {
			return nil, err
		}
		banner := !noBanner
		overrides.Banner = &banner
	}
	if flags.Changed("quiet") {
		quiet, err := flags.GetBool("quiet")
		if err != nil {
			return nil, err
		}
		overrides.Quiet = &quiet
	}
	if flags.Changed("debug") {
		debug, err := flags.GetBool("debug")
		if err != nil {
			return nil, err
		}
		overrides.Debug = &debug
	}

	return overrides, nil
}

// run builds the configured store and runs the dispatcher until it terminates
func (r *RootCommand) run(ctx context.Context, in io.Reader, out io.Writer) error {
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return err
	}

	store := services.NewTaskStore(repo)
	defer func() {
		if err := store.Close(); err != nil {
			logging.Debugf("failed to close store: %v\n", err)
		}
	}()

	app := NewApp(store, in, out, r.config)
	return app.Run(ctx)
}
