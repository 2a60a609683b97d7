package handlers

import (
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/mdayat/holidays-backend-service/configs"
	"github.com/mdayat/holidays-backend-service/internal/middlewares"
	"github.com/mdayat/holidays-backend-service/internal/services"
)

func NewRestHandler(configs configs.Configs, holidayService services.HolidayServicer) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.CleanPath)
	router.Use(chiMiddleware.RealIP)
	router.Use(middlewares.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(httprate.LimitByIP(configs.Env.RateLimitPerMinute, 1*time.Minute))

	options := cors.Options{
		AllowedOrigins: strings.Split(configs.Env.AllowedOrigins, ","),
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"User-Agent", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "Connection", "Host", "Origin", "Referer"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(options))
	router.Use(chiMiddleware.Heartbeat("/ping"))

	router.NotFound(NotFound)
	router.MethodNotAllowed(MethodNotAllowed)

	holidayHandler := NewHolidayHandler(configs, holidayService)
	router.Get("/holidays", holidayHandler.GetHolidays)
	router.Get("/holidays/range", holidayHandler.GetHolidaysByRange)
	router.Get("/holidays/year/{year_param}", holidayHandler.GetHolidaysByYear)
	router.Get("/holidays/year/{year_param}/month/{month_param}", holidayHandler.GetHolidaysByMonth)

	return router
}
