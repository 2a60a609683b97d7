package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/holidays-backend-service/internal/dateutil"
	"github.com/mdayat/holidays-backend-service/repository"
)

// HolidayRecord is the projection every holiday query returns.
type HolidayRecord struct {
	Name     string
	OccursAt time.Time
}

// HolidayRepositorier builds the holiday queries. Every range it queries is
// closed: both bounds are included.
type HolidayRepositorier interface {
	All(ctx context.Context) ([]HolidayRecord, error)
	OneByDate(ctx context.Context, date time.Time) (HolidayRecord, error)
	ByRange(ctx context.Context, dateRange dateutil.DateRange) ([]HolidayRecord, error)
	ByYear(ctx context.Context, year int) ([]HolidayRecord, error)
	ByYearMonth(ctx context.Context, year int, month time.Month) ([]HolidayRecord, error)
}

type holidayRepository struct {
	queries repository.Querier
}

func NewHolidayRepository(queries repository.Querier) HolidayRepositorier {
	return &holidayRepository{
		queries: queries,
	}
}

func (h holidayRepository) All(ctx context.Context) ([]HolidayRecord, error) {
	rows, err := h.queries.SelectHolidays(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]HolidayRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, HolidayRecord{Name: row.Name, OccursAt: row.OccursAt.Time})
	}

	return records, nil
}

// OneByDate returns pgx.ErrNoRows when no holiday occurs at date.
func (h holidayRepository) OneByDate(ctx context.Context, date time.Time) (HolidayRecord, error) {
	row, err := h.queries.SelectHolidayByDate(ctx, toPgDate(date))
	if err != nil {
		return HolidayRecord{}, err
	}

	return HolidayRecord{Name: row.Name, OccursAt: row.OccursAt.Time}, nil
}

func (h holidayRepository) ByRange(ctx context.Context, dateRange dateutil.DateRange) ([]HolidayRecord, error) {
	rows, err := h.queries.SelectHolidaysBetween(ctx, repository.SelectHolidaysBetweenParams{
		StartDate: toPgDate(dateRange.Start),
		EndDate:   toPgDate(dateRange.End),
	})

	if err != nil {
		return nil, err
	}

	records := make([]HolidayRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, HolidayRecord{Name: row.Name, OccursAt: row.OccursAt.Time})
	}

	return records, nil
}

func (h holidayRepository) ByYear(ctx context.Context, year int) ([]HolidayRecord, error) {
	return h.ByRange(ctx, dateutil.YearRange(year))
}

func (h holidayRepository) ByYearMonth(ctx context.Context, year int, month time.Month) ([]HolidayRecord, error) {
	return h.ByRange(ctx, dateutil.MonthRange(year, month))
}

func toPgDate(date time.Time) pgtype.Date {
	return pgtype.Date{Time: date, Valid: true}
}
