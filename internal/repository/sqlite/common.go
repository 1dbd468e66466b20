package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"todo/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors.
// Deadline failures are reported as timeouts.
func HandleDatabaseError(operation string, err error, timeout time.Duration) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, timeout.String())
	}
	return errors.NewDatabaseError(operation, err)
}

// ValidateRowsAffected checks if a database operation affected the expected number of rows
func ValidateRowsAffected(result sql.Result, entityType string, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError(entityType, id)
	}
	return nil
}
