package retryutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "no rows", err: pgx.ErrNoRows, expected: false},
		{name: "wrapped no rows", err: fmt.Errorf("select: %w", pgx.ErrNoRows), expected: false},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, expected: false},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, expected: true},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, expected: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, expected: true},
		{name: "deadlock", err: fmt.Errorf("tx: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), expected: true},
		{name: "plain error", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryable(tt.err))
		})
	}
}

func TestRetryWithData(t *testing.T) {
	t.Run("retries transient errors", func(t *testing.T) {
		calls := 0
		result, err := RetryWithData(func() (int, error) {
			calls++
			if calls < 3 {
				return 0, &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
			}
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, result)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		_, err := RetryWithData(func() (int, error) {
			calls++
			return 0, pgx.ErrNoRows
		})

		require.ErrorIs(t, err, pgx.ErrNoRows)
		assert.Equal(t, 1, calls)
	})
}

func TestRetryWithoutData(t *testing.T) {
	calls := 0
	err := RetryWithoutData(func() error {
		calls++
		return &pgconn.PgError{Code: pgerrcode.ConnectionException}
	})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.ConnectionException, pgErr.Code)
	assert.Equal(t, 3, calls)
}
