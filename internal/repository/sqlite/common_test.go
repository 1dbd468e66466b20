package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "todo/internal/errors"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, nil
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name        string
		result      *MockResult
		expectError bool
		errorType   apperrors.ErrorType
	}{
		{
			name:        "one row affected",
			result:      &MockResult{rowsAffected: 1},
			expectError: false,
		},
		{
			name:        "no rows affected is not found",
			result:      &MockResult{rowsAffected: 0},
			expectError: true,
			errorType:   apperrors.ErrorTypeNotFound,
		},
		{
			name:        "rows affected failure is a database error",
			result:      &MockResult{rowsErr: errors.New("driver does not support RowsAffected")},
			expectError: true,
			errorType:   apperrors.ErrorTypeDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "7")
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsErrorType(err, tt.errorType), "got %v", err)
		})
	}
}
