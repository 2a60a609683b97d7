package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mdayat/holidays-backend-service/configs"
	"github.com/mdayat/holidays-backend-service/internal/dateutil"
	"github.com/mdayat/holidays-backend-service/internal/dtos"
	"github.com/mdayat/holidays-backend-service/internal/httputil"
	"github.com/mdayat/holidays-backend-service/internal/services"
	"github.com/rs/zerolog/log"
)

const (
	dateParam  = "date"
	startParam = "start"
	endParam   = "end"
	yearParam  = "year_param"
	monthParam = "month_param"
)

type HolidayHandler interface {
	GetHolidays(res http.ResponseWriter, req *http.Request)
	GetHolidaysByRange(res http.ResponseWriter, req *http.Request)
	GetHolidaysByYear(res http.ResponseWriter, req *http.Request)
	GetHolidaysByMonth(res http.ResponseWriter, req *http.Request)
}

type holiday struct {
	configs configs.Configs
	service services.HolidayServicer
}

func NewHolidayHandler(configs configs.Configs, service services.HolidayServicer) HolidayHandler {
	return &holiday{
		configs: configs,
		service: service,
	}
}

// GetHolidays serves GET /holidays, narrowed to a single holiday when the
// date query param is present.
func (h holiday) GetHolidays(res http.ResponseWriter, req *http.Request) {
	if req.URL.Query().Has(dateParam) {
		h.getHolidayByDate(res, req)
		return
	}

	ctx := req.Context()
	holidays, err := h.service.GetHolidays(ctx)
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	h.sendSuccessResponse(res, req, holidays, "successfully got holidays")
}

func (h holiday) getHolidayByDate(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var paramErrs httputil.ParamErrors
	date := parseDateParam(req, dateParam, &paramErrs)
	if err := paramErrs.Err(); err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	holiday, err := h.service.GetHolidayByDate(ctx, date)
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	h.sendSuccessResponse(res, req, holiday, "successfully got holiday by date")
}

func (h holiday) GetHolidaysByRange(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var paramErrs httputil.ParamErrors
	start := parseDateParam(req, startParam, &paramErrs)
	end := parseDateParam(req, endParam, &paramErrs)
	if err := paramErrs.Err(); err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	dateRange, err := dateutil.NewDateRange(start, end)
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	holidays, err := h.service.GetHolidaysByRange(ctx, dateRange)
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	h.sendSuccessResponse(res, req, holidays, "successfully got holidays by range")
}

func (h holiday) GetHolidaysByYear(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	params, err := h.parseYearParams(chi.URLParam(req, yearParam))
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	holidays, err := h.service.GetHolidaysByYear(ctx, params.Year)
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	h.sendSuccessResponse(res, req, holidays, "successfully got holidays by year")
}

func (h holiday) GetHolidaysByMonth(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	params, err := h.parseYearMonthParams(chi.URLParam(req, yearParam), chi.URLParam(req, monthParam))
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	holidays, err := h.service.GetHolidaysByMonth(ctx, params.Year, time.Month(params.Month))
	if err != nil {
		sendErrorResponse(res, req, err)
		return
	}

	h.sendSuccessResponse(res, req, holidays, "successfully got holidays by month")
}

func (h holiday) sendSuccessResponse(res http.ResponseWriter, req *http.Request, resBody interface{}, msg string) {
	logger := log.Ctx(req.Context())

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg(msg)
}

func parseDateParam(req *http.Request, name string, paramErrs *httputil.ParamErrors) time.Time {
	query := req.URL.Query()
	if !query.Has(name) {
		paramErrs.Add(name, httputil.ReasonMissing)
		return time.Time{}
	}

	date, err := dateutil.ParseDate(query.Get(name))
	if err != nil {
		paramErrs.Add(name, httputil.ReasonInvalid)
		return time.Time{}
	}

	return date
}

func (h holiday) parseYearParams(yearString string) (dtos.YearParams, error) {
	year, yearErr := strconv.Atoi(yearString)
	params := dtos.YearParams{Year: year}

	failed, err := h.failedFields(params)
	if err != nil {
		return dtos.YearParams{}, err
	}

	var paramErrs httputil.ParamErrors
	if yearErr != nil || failed["Year"] {
		paramErrs.Add(yearParam, httputil.ReasonInvalid)
	}

	if err := paramErrs.Err(); err != nil {
		return dtos.YearParams{}, err
	}

	return params, nil
}

// parseYearMonthParams reports a non-numeric month as invalid and a numeric
// month outside 1..12 as not having a valid value.
func (h holiday) parseYearMonthParams(yearString, monthString string) (dtos.YearMonthParams, error) {
	year, yearErr := strconv.Atoi(yearString)
	month, monthErr := strconv.Atoi(monthString)
	params := dtos.YearMonthParams{Year: year, Month: month}

	failed, err := h.failedFields(params)
	if err != nil {
		return dtos.YearMonthParams{}, err
	}

	var paramErrs httputil.ParamErrors
	if yearErr != nil || failed["Year"] {
		paramErrs.Add(yearParam, httputil.ReasonInvalid)
	}

	switch {
	case monthErr != nil:
		paramErrs.Add(monthParam, httputil.ReasonInvalid)
	case failed["Month"]:
		paramErrs.Add(monthParam, httputil.ReasonValue)
	}

	if err := paramErrs.Err(); err != nil {
		return dtos.YearMonthParams{}, err
	}

	return params, nil
}

// failedFields returns the struct fields of params that failed validation.
func (h holiday) failedFields(params interface{}) (map[string]bool, error) {
	err := h.configs.Validate.Struct(params)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, err
	}

	failed := make(map[string]bool, len(validationErrs))
	for _, fieldErr := range validationErrs {
		failed[fieldErr.Field()] = true
	}

	return failed, nil
}
