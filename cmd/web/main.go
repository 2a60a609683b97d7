package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/mdayat/holidays-backend-service/configs"
	"github.com/mdayat/holidays-backend-service/internal/handlers"
	"github.com/mdayat/holidays-backend-service/internal/services"
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

	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := configs.NewDb(ctx, env.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	defer db.Close()

	configs := configs.NewConfigs(env, db)
	holidayService := services.NewHolidayService(services.NewHolidayRepository(db.Queries))
	router := handlers.NewRestHandler(configs, holidayService)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(env.Port),
		Handler:      router,
		ReadTimeout:  env.ReadTimeout,
		WriteTimeout: env.WriteTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	logger.Info().Str("addr", server.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Send()
	}

	<-shutdownDone
	logger.Info().Msg("server stopped")
}
