package main

import (
	"context"
	"flag"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mdayat/holidays-backend-service/configs"
	"github.com/mdayat/holidays-backend-service/internal/dbutil"
	"github.com/mdayat/holidays-backend-service/internal/retryutil"
	"github.com/mdayat/holidays-backend-service/internal/seeder"
	"github.com/mdayat/holidays-backend-service/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	logger := log.With().Caller().Logger()

	env, err := configs.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	seedFile := flag.String("file", env.SeedFile, "YAML file holding the holidays to seed")
	flag.Parse()

	holidays, skipped, err := seeder.LoadFile(*seedFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *seedFile).Msg("failed to load seed file")
	}

	for _, s := range skipped {
		logger.Warn().Str("name", s.Entry.Name).Str("date", s.Entry.Date).Str("reason", s.Reason).Msg("skipped holiday")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	db, err := configs.NewDb(ctx, env.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	defer db.Close()

	// Apply "holidays" schema
	err = retryutil.RetryWithoutData(func() error {
		_, err := db.Conn.Exec(ctx, repository.Schema)
		return err
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Seed "holidays" table
	written, err := dbutil.RetryableTxWithData(ctx, db.Conn, db.Queries, func(qtx *repository.Queries) (int, error) {
		return seeder.Seed(ctx, qtx, holidays)
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed holidays table")
	}

	logger.Info().Int("written", written).Int("skipped", len(skipped)).Msg("successfully seeded holidays")
}
