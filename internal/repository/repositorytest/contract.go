// Package repositorytest holds the behaviour every repository.Repository must show.
package repositorytest

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/repository"
)

// Factory builds an empty backend for one subtest
type Factory func(t *testing.T) repository.Repository

// Collect drains a task sequence, failing the test on the first error
func Collect(t *testing.T, repo repository.Repository) []domain.Task {
	t.Helper()
	var tasks []domain.Task
	for task, err := range repo.ListTasks(context.Background()) {
		require.NoError(t, err)
		tasks = append(tasks, task)
	}
	return tasks
}

// RunContract runs the shared backend suite against newRepo
func RunContract(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("assigns sequential ids from one", func(t *testing.T) {
		repo := newRepo(t)

		for i, description := range []string{"buy milk", "walk dog", "file taxes"} {
			task, err := repo.CreateTask(ctx, description)
			require.NoError(t, err)
			assert.Equal(t, uint64(i+1), task.ID)
			assert.Equal(t, description, task.Description)
			assert.False(t, task.Completed)
		}
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateTask(ctx, "buy milk")
		require.NoError(t, err)
		_, err = repo.CreateTask(ctx, "walk dog")
		require.NoError(t, err)

		assert.Equal(t, []domain.Task{
			{ID: 1, Description: "buy milk"},
			{ID: 2, Description: "walk dog"},
		}, Collect(t, repo))
	})

	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := newRepo(t)
		assert.Empty(t, Collect(t, repo))

		count, err := repo.CountTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("list is restartable", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateTask(ctx, "buy milk")
		require.NoError(t, err)

		first := Collect(t, repo)
		second := Collect(t, repo)
		assert.Equal(t, first, second)
	})

	t.Run("list stops when the consumer stops", func(t *testing.T) {
		repo := newRepo(t)
		for _, d := range []string{"a", "b", "c"} {
			_, err := repo.CreateTask(ctx, d)
			require.NoError(t, err)
		}

		seen := 0
		for _, err := range repo.ListTasks(ctx) {
			require.NoError(t, err)
			seen++
			if seen == 2 {
				break
			}
		}
		assert.Equal(t, 2, seen)

		// The backend is usable after an early break
		count, err := repo.CountTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("complete marks only the matching task", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateTask(ctx, "buy milk")
		require.NoError(t, err)
		_, err = repo.CreateTask(ctx, "walk dog")
		require.NoError(t, err)

		require.NoError(t, repo.CompleteTask(ctx, 2))

		assert.Equal(t, []domain.Task{
			{ID: 1, Description: "buy milk"},
			{ID: 2, Description: "walk dog", Completed: true},
		}, Collect(t, repo))
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateTask(ctx, "buy milk")
		require.NoError(t, err)

		require.NoError(t, repo.CompleteTask(ctx, 1))
		require.NoError(t, repo.CompleteTask(ctx, 1))

		tasks := Collect(t, repo)
		require.Len(t, tasks, 1)
		assert.True(t, tasks[0].Completed)
	})

	t.Run("complete unknown id reports not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateTask(ctx, "buy milk")
		require.NoError(t, err)

		for _, id := range []uint64{0, 99, ^uint64(0)} {
			err := repo.CompleteTask(ctx, id)
			assert.True(t, stderrors.Is(err, errors.ErrNotFound), "id %d: got %v", id, err)
		}

		assert.Equal(t, []domain.Task{{ID: 1, Description: "buy milk"}}, Collect(t, repo))
	})

	t.Run("listed tasks are copies", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.CreateTask(ctx, "buy milk")
		require.NoError(t, err)

		for task, err := range repo.ListTasks(ctx) {
			require.NoError(t, err)
			task.Complete()
		}

		assert.False(t, Collect(t, repo)[0].Completed)
	})
}
