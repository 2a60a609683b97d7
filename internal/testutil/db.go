package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mdayat/holidays-backend-service/configs"
	"github.com/mdayat/holidays-backend-service/repository"
	"github.com/stretchr/testify/require"
)

// NewDb connects to DATABASE_URL with search_path set to a fresh schema
// holding the holidays table. The schema is dropped when the test ends.
// Tests are skipped when DATABASE_URL is unset.
func NewDb(t *testing.T, schema string) configs.Db {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL is not set")
	}

	ctx := context.Background()
	ident := pgx.Identifier{schema}.Sanitize()

	admin, err := configs.NewDb(ctx, databaseURL)
	require.NoError(t, err)
	_, err = admin.Conn.Exec(ctx, "DROP SCHEMA IF EXISTS "+ident+" CASCADE; CREATE SCHEMA "+ident)
	admin.Close()
	require.NoError(t, err)

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	require.NoError(t, err)
	poolConfig.ConnConfig.RuntimeParams["search_path"] = schema

	conn, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Exec(context.Background(), "DROP SCHEMA IF EXISTS "+ident+" CASCADE")
		conn.Close()
	})

	_, err = conn.Exec(ctx, repository.Schema)
	require.NoError(t, err)

	return configs.Db{Conn: conn, Queries: repository.New(conn)}
}
