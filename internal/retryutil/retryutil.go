package retryutil

import (
	"errors"
	"net"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var options = []retry.Option{
	retry.Attempts(3),
	retry.Delay(100 * time.Millisecond),
	retry.DelayType(retry.BackOffDelay),
	retry.LastErrorOnly(true),
	retry.RetryIf(IsRetryable),
}

func RetryWithData[T any](f func() (T, error)) (T, error) {
	return retry.DoWithData(f, options...)
}

func RetryWithoutData(f func() error) error {
	return retry.Do(f, options...)
}

// IsRetryable reports whether err is transient: connection failures and
// PostgreSQL errors of the connection exception, serialization failure,
// deadlock or insufficient resources classes.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsInsufficientResources(pgErr.Code) ||
			pgErr.Code == pgerrcode.SerializationFailure ||
			pgErr.Code == pgerrcode.DeadlockDetected
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}
