package configs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdayat/holidays-backend-service/internal/retryutil"
	"github.com/mdayat/holidays-backend-service/repository"
)

type Db struct {
	Conn    *pgxpool.Pool
	Queries *repository.Queries
}

// NewDb opens the pool and pings it, retrying while the server is not
// reachable yet.
func NewDb(ctx context.Context, databaseURL string) (Db, error) {
	conn, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return Db{}, fmt.Errorf("failed to create connection pool: %w", err)
	}

	err = retryutil.RetryWithoutData(func() error {
		return conn.Ping(ctx)
	})

	if err != nil {
		conn.Close()
		return Db{}, fmt.Errorf("failed to ping database: %w", err)
	}

	return Db{Conn: conn, Queries: repository.New(conn)}, nil
}

func (d Db) Close() {
	if d.Conn != nil {
		d.Conn.Close()
	}
}
