// Package sqlite is a task backend on an in-memory SQLite database.
//
// The database lives only as long as the process: it is opened on ":memory:"
// through a single pooled connection, so every statement sees the same data.
package sqlite

import (
	"context"
	"database/sql"
	"iter"
	"math"
	"strconv"
	"time"

	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const memoryDSN = ":memory:"

// DefaultQueryTimeout bounds each statement when Options leaves it unset
const DefaultQueryTimeout = 5 * time.Second

// Options tunes the repository
type Options struct {
	QueryTimeout time.Duration
}

// SQLiteRepository implements repository.Repository
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// New creates a repository with default options
func New() (*SQLiteRepository, error) {
	return NewWithConfig(Options{})
}

// NewWithConfig opens a fresh in-memory database and applies the schema
func NewWithConfig(opts Options) (*SQLiteRepository, error) {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultQueryTimeout
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Each connection to ":memory:" is a separate database; keep exactly one
	// and never let the pool retire it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), opts.QueryTimeout)
	defer cancel()

	if err := migrations.Up(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("sqlite store ready (query timeout %s)\n", opts.QueryTimeout)
	return &SQLiteRepository{db: db, queryTimeout: opts.QueryTimeout}, nil
}

// Close closes the database, discarding all tasks
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a pending task; AUTOINCREMENT keeps ids increasing and unused ids unreused
func (r *SQLiteRepository) CreateTask(ctx context.Context, description string) (domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `INSERT INTO tasks (description, completed) VALUES (?, 0)`
	result, err := r.db.ExecContext(ctx, query, description)
	if err != nil {
		return domain.Task{}, HandleDatabaseError("insert task", err, r.queryTimeout)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, HandleDatabaseError("get last insert ID", err, r.queryTimeout)
	}

	return Task{ID: id, Description: description}.toDomain(), nil
}

// ListTasks runs a fresh query each time the sequence is ranged over.
// The single connection is held until iteration stops, so callers must not
// issue other statements from inside the loop.
func (r *SQLiteRepository) ListTasks(ctx context.Context) iter.Seq2[domain.Task, error] {
	return func(yield func(domain.Task, error) bool) {
		ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()

		query := `SELECT id, description, completed FROM tasks ORDER BY id ASC`
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			yield(domain.Task{}, HandleDatabaseError("query tasks", err, r.queryTimeout))
			return
		}
		defer rows.Close()

		for rows.Next() {
			row, err := ScanTask(rows)
			if err != nil {
				yield(domain.Task{}, HandleDatabaseError("scan task", err, r.queryTimeout))
				return
			}
			if !yield(row.toDomain(), nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(domain.Task{}, HandleDatabaseError("iterate tasks", err, r.queryTimeout))
		}
	}
}

// CompleteTask sets completed on the task with the given id.
// SQLite counts matched rows as changed, so completing twice still reports a match.
func (r *SQLiteRepository) CompleteTask(ctx context.Context, id uint64) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	idText := strconv.FormatUint(id, 10)
	if id > math.MaxInt64 {
		return errors.NewNotFoundError("task", idText)
	}

	query := `UPDATE tasks SET completed = 1 WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, int64(id))
	if err != nil {
		return HandleDatabaseError("complete task", err, r.queryTimeout)
	}

	return ValidateRowsAffected(result, "task", idText)
}

// CountTasks returns the number of stored tasks
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count tasks", err, r.queryTimeout)
	}
	return count, nil
}
