package handlers

import (
	"errors"
	"net/http"

	"github.com/mdayat/holidays-backend-service/internal/dateutil"
	"github.com/mdayat/holidays-backend-service/internal/httputil"
	"github.com/mdayat/holidays-backend-service/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type errorMapping struct {
	target     error
	statusCode int
	level      zerolog.Level
	resBody    httputil.ErrorResponse
}

// errorMappings is the only place that turns a domain or validation error
// into a status code and payload.
var errorMappings = []errorMapping{
	{
		target:     services.ErrHolidayNotFound,
		statusCode: http.StatusNotFound,
		level:      zerolog.InfoLevel,
		resBody:    httputil.ErrorResponse{Error: "not_found", Message: "No holidays found!"},
	},
	{
		target:     dateutil.ErrSameDates,
		statusCode: http.StatusUnprocessableEntity,
		level:      zerolog.WarnLevel,
		resBody:    httputil.ErrorResponse{Error: "invalid_range", Message: "Start and end dates are the same!"},
	},
	{
		target:     dateutil.ErrStartAfterEnd,
		statusCode: http.StatusUnprocessableEntity,
		level:      zerolog.WarnLevel,
		resBody:    httputil.ErrorResponse{Error: "invalid_range", Message: "Start date is greater than end date!"},
	},
}

var (
	routeNotFound    = httputil.ErrorResponse{Error: "not_found", Message: "Not found"}
	methodNotAllowed = httputil.ErrorResponse{Error: "method_not_allowed", Message: "Method not allowed"}
	internalError    = httputil.ErrorResponse{Error: "internal_error", Message: "Internal server error"}
)

func sendErrorResponse(res http.ResponseWriter, req *http.Request, err error) {
	logger := log.Ctx(req.Context())

	statusCode, resBody, level := mapError(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error().Err(err).Caller(1).Int("status_code", statusCode).Msg("failed to serve holidays")
	} else {
		logger.WithLevel(level).Err(err).Int("status_code", statusCode).Msg(resBody.Message)
	}

	if err := httputil.SendErrorResponse(res, statusCode, resBody); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to send error response")
	}
}

func mapError(err error) (int, httputil.ErrorResponse, zerolog.Level) {
	var paramErrs httputil.ParamErrors
	if errors.As(err, &paramErrs) {
		resBody := httputil.ErrorResponse{Error: "invalid_params", Message: paramErrs.Error()}
		return http.StatusBadRequest, resBody, zerolog.WarnLevel
	}

	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.statusCode, mapping.resBody, mapping.level
		}
	}

	return http.StatusInternalServerError, internalError, zerolog.ErrorLevel
}

func NotFound(res http.ResponseWriter, req *http.Request) {
	log.Ctx(req.Context()).Info().Int("status_code", http.StatusNotFound).Msg("route not found")
	if err := httputil.SendErrorResponse(res, http.StatusNotFound, routeNotFound); err != nil {
		log.Ctx(req.Context()).Error().Err(err).Caller().Msg("failed to send error response")
	}
}

func MethodNotAllowed(res http.ResponseWriter, req *http.Request) {
	log.Ctx(req.Context()).Info().Int("status_code", http.StatusMethodNotAllowed).Msg("method not allowed")
	if err := httputil.SendErrorResponse(res, http.StatusMethodNotAllowed, methodNotAllowed); err != nil {
		log.Ctx(req.Context()).Error().Err(err).Caller().Msg("failed to send error response")
	}
}
