package dbutil

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdayat/holidays-backend-service/internal/retryutil"
	"github.com/mdayat/holidays-backend-service/repository"
)

// RetryableTxWithData runs f inside a transaction, committing when f
// succeeds. The whole transaction is retried on transient errors.
func RetryableTxWithData[T any](
	ctx context.Context,
	conn *pgxpool.Pool,
	queries *repository.Queries,
	f func(qtx *repository.Queries) (T, error),
) (T, error) {
	retryableFunc := func() (zero T, err error) {
		var tx pgx.Tx
		tx, err = conn.Begin(ctx)
		if err != nil {
			return zero, err
		}

		defer func() {
			if err == nil {
				err = tx.Commit(ctx)
			}

			if err != nil {
				tx.Rollback(ctx)
			}
		}()

		return f(queries.WithTx(tx))
	}

	return retryutil.RetryWithData(retryableFunc)
}
