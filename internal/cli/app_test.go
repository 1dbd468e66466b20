package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"iter"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/repository/memory"
	"todo/internal/services"
)

// newTestStore creates a task store on the configured backend, closed with the test
func newTestStore(t *testing.T, cfg *config.Config) *services.TaskStore {
	t.Helper()
	repo, err := config.CreateRepository(cfg)
	require.NoError(t, err)
	store := services.NewTaskStore(repo)
	t.Cleanup(func() { store.Close() })
	return store
}

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Application.Quiet = true
	return cfg
}

func runApp(t *testing.T, input io.Reader, cfg *config.Config) (string, *App, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(newTestStore(t, cfg), input, &out, cfg)
	err := app.Run(context.Background())
	return out.String(), app, err
}

// brokenRepository fails every operation with a backend error
type brokenRepository struct {
	err error
}

func (r *brokenRepository) CreateTask(ctx context.Context, description string) (domain.Task, error) {
	return domain.Task{}, r.err
}

func (r *brokenRepository) ListTasks(ctx context.Context) iter.Seq2[domain.Task, error] {
	return func(yield func(domain.Task, error) bool) {
		yield(domain.Task{}, r.err)
	}
}

func (r *brokenRepository) CompleteTask(ctx context.Context, id uint64) error {
	return r.err
}

func (r *brokenRepository) CountTasks(ctx context.Context) (int, error) {
	return 0, r.err
}

func (r *brokenRepository) Close() error {
	return nil
}

// failingWriter rejects every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, stderrors.New("stdout closed")
}

func TestNewApp(t *testing.T) {
	app := NewApp(services.NewTaskStore(memory.New()), strings.NewReader(""), io.Discard, nil)

	assert.NotNil(t, app.registry)
	assert.NotNil(t, app.errorHandler)
	assert.Equal(t, StateRunning, app.State())
	assert.Equal(t, config.BackendMemory, app.config.Store.Backend)
}

func TestApp_Run(t *testing.T) {
	t.Run("quit terminates with farewell", func(t *testing.T) {
		out, app, err := runApp(t, strings.NewReader("quit\n"), quietConfig())

		require.NoError(t, err)
		assert.Equal(t, "Goodbye!\n", out)
		assert.Equal(t, StateTerminated, app.State())
	})

	t.Run("empty input says goodbye", func(t *testing.T) {
		out, app, err := runApp(t, strings.NewReader(""), quietConfig())

		require.NoError(t, err)
		assert.Equal(t, "Goodbye!\n", out)
		assert.Equal(t, StateTerminated, app.State())
	})

	t.Run("lines after quit are not read", func(t *testing.T) {
		input := strings.NewReader("quit\nadd never\n")
		cfg := quietConfig()
		store := newTestStore(t, cfg)
		var out bytes.Buffer

		err := NewApp(store, input, &out, cfg).Run(context.Background())

		require.NoError(t, err)
		n, err := store.Len(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("windows line endings", func(t *testing.T) {
		out, _, err := runApp(t, strings.NewReader("add milk\r\nlist\r\nquit\r\n"), quietConfig())

		require.NoError(t, err)
		assert.Equal(t, "Added task #1\n1 [ ] milk\nGoodbye!\n", out)
	})

	t.Run("banner and prompt", func(t *testing.T) {
		out, _, err := runApp(t, strings.NewReader("add milk\nquit\n"), config.NewConfig())

		require.NoError(t, err)
		assert.Equal(t, "=== TODO APP (add/list/done/quit) ===\n> Added task #1\n> Goodbye!\n", out)
	})

	t.Run("farewell on its own line at end of input with prompt", func(t *testing.T) {
		out, _, err := runApp(t, strings.NewReader("list\n"), config.NewConfig())

		require.NoError(t, err)
		assert.Equal(t, "=== TODO APP (add/list/done/quit) ===\n> No tasks yet!\n> \nGoodbye!\n", out)
	})

	t.Run("custom prompt without banner", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Display.Prompt = "todo$ "
		cfg.Display.Banner = false

		out, _, err := runApp(t, strings.NewReader("quit\n"), cfg)

		require.NoError(t, err)
		assert.Equal(t, "todo$ Goodbye!\n", out)
	})

	t.Run("read failure is fatal", func(t *testing.T) {
		cause := stderrors.New("device unplugged")
		input := io.MultiReader(strings.NewReader("add milk\n"), iotest.ErrReader(cause))

		out, app, err := runApp(t, input, quietConfig())

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrInputStreamFailure))
		assert.True(t, stderrors.Is(err, cause))
		assert.False(t, errors.IsRecoverable(err))
		assert.Equal(t, "Added task #1\n", out)
		assert.Equal(t, StateRunning, app.State())
	})

	t.Run("backend failure is fatal", func(t *testing.T) {
		cause := errors.NewDatabaseError("insert task", stderrors.New("disk I/O error"))
		store := services.NewTaskStore(&brokenRepository{err: cause})
		var out bytes.Buffer

		err := NewApp(store, strings.NewReader("add milk\nquit\n"), &out, quietConfig()).Run(context.Background())

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
		assert.Empty(t, out.String())
	})

	t.Run("list backend failure is fatal", func(t *testing.T) {
		cause := errors.NewDatabaseError("list tasks", stderrors.New("disk I/O error"))
		store := services.NewTaskStore(&brokenRepository{err: cause})

		err := NewApp(store, strings.NewReader("list\n"), io.Discard, quietConfig()).Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list tasks")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
	})

	t.Run("write failure is fatal", func(t *testing.T) {
		store := services.NewTaskStore(memory.New())

		err := NewApp(store, strings.NewReader("list\n"), failingWriter{}, quietConfig()).Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "stdout closed")
	})
}

func TestApp_Execute(t *testing.T) {
	cfg := quietConfig()
	store := newTestStore(t, cfg)
	var out bytes.Buffer
	app := NewApp(store, strings.NewReader(""), &out, cfg)
	ctx := context.Background()

	steps := []struct {
		line     string
		expected string
		state    State
	}{
		{"add buy milk", "Added task #1\n", StateRunning},
		{"add   ", "Please enter a task after 'add'\n", StateRunning},
		{"done 1", "Marked task #1 as done!\n", StateRunning},
		{"done 2", "Task #2 not found.\n", StateRunning},
		{"done two", "Invalid ID — use a number\n", StateRunning},
		{"list", "1 [x] buy milk\n", StateRunning},
		{"help", "Unknown command. Try: add [task] / list / done [id] / quit\n", StateRunning},
		{"quit", "Goodbye!\n", StateTerminated},
	}

	for _, step := range steps {
		out.Reset()
		require.NoError(t, app.Execute(ctx, step.line), step.line)
		assert.Equal(t, step.expected, out.String(), step.line)
		assert.Equal(t, step.state, app.State(), step.line)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "terminated", StateTerminated.String())
}
