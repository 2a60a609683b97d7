package dbutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/holidays-backend-service/internal/testutil"
	"github.com/mdayat/holidays-backend-service/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgDate(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func TestRetryableTxWithData(t *testing.T) {
	db := testutil.NewDb(t, "dbutil_test")
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		written, err := RetryableTxWithData(ctx, db.Conn, db.Queries, func(qtx *repository.Queries) (int, error) {
			_, err := qtx.UpsertHoliday(ctx, repository.UpsertHolidayParams{Name: "Tiradentes", OccursAt: pgDate(2017, time.April, 21)})
			if err != nil {
				return 0, err
			}

			return 1, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, written)

		row, err := db.Queries.SelectHolidayByDate(ctx, pgDate(2017, time.April, 21))
		require.NoError(t, err)
		assert.Equal(t, "Tiradentes", row.Name)
	})

	t.Run("Rollback on error", func(t *testing.T) {
		fnErr := errors.New("stop")
		attempts := 0

		_, err := RetryableTxWithData(ctx, db.Conn, db.Queries, func(qtx *repository.Queries) (int, error) {
			attempts++
			_, err := qtx.UpsertHoliday(ctx, repository.UpsertHolidayParams{Name: "Rolled Back", OccursAt: pgDate(2017, time.May, 1)})
			if err != nil {
				return 0, err
			}

			return 0, fnErr
		})

		assert.ErrorIs(t, err, fnErr)
		assert.Equal(t, 1, attempts)

		_, err = db.Queries.SelectHolidayByDate(ctx, pgDate(2017, time.May, 1))
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("Rollback on commit failure", func(t *testing.T) {
		_, err := RetryableTxWithData(ctx, db.Conn, db.Queries, func(qtx *repository.Queries) (int, error) {
			_, err := qtx.UpsertHoliday(ctx, repository.UpsertHolidayParams{Name: "Aborted", OccursAt: pgDate(2017, time.September, 7)})
			if err != nil {
				return 0, err
			}

			// A NULL occurs_at aborts the transaction, so the commit below fails.
			qtx.UpsertHoliday(ctx, repository.UpsertHolidayParams{Name: "No Date"})
			return 1, nil
		})

		assert.ErrorIs(t, err, pgx.ErrTxCommitRollback)

		_, err = db.Queries.SelectHolidayByDate(ctx, pgDate(2017, time.September, 7))
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
