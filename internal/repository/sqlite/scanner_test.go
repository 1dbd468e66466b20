package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain"
)

// TestScanner implements Scanner for testing
type TestScanner struct {
	values []interface{}
	err    error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	for i, d := range dest {
		switch ptr := d.(type) {
		case *int64:
			*ptr = ts.values[i].(int64)
		case *string:
			*ptr = ts.values[i].(string)
		case *bool:
			*ptr = ts.values[i].(bool)
		}
	}
	return nil
}

func TestScanTask(t *testing.T) {
	t.Run("scans all columns", func(t *testing.T) {
		row, err := ScanTask(&TestScanner{values: []interface{}{int64(4), "walk dog", true}})
		require.NoError(t, err)
		assert.Equal(t, &Task{ID: 4, Description: "walk dog", Completed: true}, row)
		assert.Equal(t, domain.Task{ID: 4, Description: "walk dog", Completed: true}, row.toDomain())
	})

	t.Run("propagates scan errors", func(t *testing.T) {
		_, err := ScanTask(&TestScanner{err: errors.New("column mismatch")})
		assert.EqualError(t, err, "column mismatch")
	})
}
