package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mdayat/holidays-backend-service/internal/dateutil"
	"github.com/mdayat/holidays-backend-service/internal/dtos"
)

var ErrHolidayNotFound = errors.New("no holidays found")

type HolidayServicer interface {
	GetHolidays(ctx context.Context) ([]dtos.HolidayResponse, error)
	GetHolidayByDate(ctx context.Context, date time.Time) (dtos.HolidayResponse, error)
	GetHolidaysByYear(ctx context.Context, year int) ([]dtos.HolidayResponse, error)
	GetHolidaysByMonth(ctx context.Context, year int, month time.Month) ([]dtos.HolidayResponse, error)
	GetHolidaysByRange(ctx context.Context, dateRange dateutil.DateRange) ([]dtos.HolidayResponse, error)
}

type holiday struct {
	repository HolidayRepositorier
}

func NewHolidayService(repository HolidayRepositorier) HolidayServicer {
	return &holiday{
		repository: repository,
	}
}

// GetHolidays never reports ErrHolidayNotFound; an empty table yields an
// empty slice.
func (h holiday) GetHolidays(ctx context.Context) ([]dtos.HolidayResponse, error) {
	records, err := h.repository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select holidays: %w", err)
	}

	return toHolidayResponses(records), nil
}

func (h holiday) GetHolidayByDate(ctx context.Context, date time.Time) (dtos.HolidayResponse, error) {
	record, err := h.repository.OneByDate(ctx, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dtos.HolidayResponse{}, ErrHolidayNotFound
		}
		return dtos.HolidayResponse{}, fmt.Errorf("failed to select holiday by date: %w", err)
	}

	return toHolidayResponse(record), nil
}

func (h holiday) GetHolidaysByYear(ctx context.Context, year int) ([]dtos.HolidayResponse, error) {
	records, err := h.repository.ByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to select holidays by year: %w", err)
	}

	return nonEmpty(records)
}

func (h holiday) GetHolidaysByMonth(ctx context.Context, year int, month time.Month) ([]dtos.HolidayResponse, error) {
	records, err := h.repository.ByYearMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to select holidays by month: %w", err)
	}

	return nonEmpty(records)
}

// GetHolidaysByRange expects a range already accepted by
// dateutil.NewDateRange.
func (h holiday) GetHolidaysByRange(ctx context.Context, dateRange dateutil.DateRange) ([]dtos.HolidayResponse, error) {
	records, err := h.repository.ByRange(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to select holidays by range: %w", err)
	}

	return nonEmpty(records)
}

func nonEmpty(records []HolidayRecord) ([]dtos.HolidayResponse, error) {
	if len(records) == 0 {
		return nil, ErrHolidayNotFound
	}
	return toHolidayResponses(records), nil
}

func toHolidayResponses(records []HolidayRecord) []dtos.HolidayResponse {
	holidays := make([]dtos.HolidayResponse, 0, len(records))
	for _, record := range records {
		holidays = append(holidays, toHolidayResponse(record))
	}
	return holidays
}

func toHolidayResponse(record HolidayRecord) dtos.HolidayResponse {
	return dtos.HolidayResponse{
		Name: record.Name,
		Date: dateutil.Format(record.OccursAt),
	}
}
