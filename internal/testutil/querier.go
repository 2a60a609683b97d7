// Package testutil provides an in-memory repository.Querier for tests that
// need holiday rows without PostgreSQL, and NewDb for tests that need it.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/holidays-backend-service/internal/dateutil"
	"github.com/mdayat/holidays-backend-service/repository"
)

// Querier stores holidays keyed by date, mirroring the unique index on
// holidays.occurs_at.
type Querier struct {
	mu       sync.Mutex
	holidays map[time.Time]repository.Holiday
	nextID   int64
	err      error

	// BetweenCalls records the bounds of every SelectHolidaysBetween call.
	BetweenCalls []repository.SelectHolidaysBetweenParams
}

func NewQuerier() *Querier {
	return &Querier{holidays: make(map[time.Time]repository.Holiday)}
}

// WithError makes every subsequent query fail with err.
func (q *Querier) WithError(err error) *Querier {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.err = err
	return q
}

// Seed upserts a holiday. It panics on a malformed date, which only happens
// with a broken fixture.
func (q *Querier) Seed(name, date string) *Querier {
	occursAt, err := dateutil.ParseDate(date)
	if err != nil {
		panic("testutil: invalid fixture date " + date)
	}

	if _, err := q.UpsertHoliday(context.Background(), repository.UpsertHolidayParams{
		Name:     name,
		OccursAt: pgtype.Date{Time: occursAt, Valid: true},
	}); err != nil {
		panic(err)
	}

	return q
}

// Reset drops every holiday and clears the recorded calls and error.
func (q *Querier) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.holidays = make(map[time.Time]repository.Holiday)
	q.BetweenCalls = nil
	q.err = nil
}

func (q *Querier) SelectHolidays(_ context.Context) ([]repository.SelectHolidaysRow, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return nil, q.err
	}

	var rows []repository.SelectHolidaysRow
	for _, h := range q.sorted() {
		rows = append(rows, repository.SelectHolidaysRow{Name: h.Name, OccursAt: h.OccursAt})
	}
	return rows, nil
}

func (q *Querier) SelectHolidayByDate(_ context.Context, occursAt pgtype.Date) (repository.SelectHolidayByDateRow, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return repository.SelectHolidayByDateRow{}, q.err
	}

	h, ok := q.holidays[occursAt.Time]
	if !ok {
		return repository.SelectHolidayByDateRow{}, pgx.ErrNoRows
	}
	return repository.SelectHolidayByDateRow{Name: h.Name, OccursAt: h.OccursAt}, nil
}

func (q *Querier) SelectHolidaysBetween(_ context.Context, arg repository.SelectHolidaysBetweenParams) ([]repository.SelectHolidaysBetweenRow, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.BetweenCalls = append(q.BetweenCalls, arg)
	if q.err != nil {
		return nil, q.err
	}

	dateRange := dateutil.DateRange{Start: arg.StartDate.Time, End: arg.EndDate.Time}

	var rows []repository.SelectHolidaysBetweenRow
	for _, h := range q.sorted() {
		if dateRange.Contains(h.OccursAt.Time) {
			rows = append(rows, repository.SelectHolidaysBetweenRow{Name: h.Name, OccursAt: h.OccursAt})
		}
	}
	return rows, nil
}

func (q *Querier) UpsertHoliday(_ context.Context, arg repository.UpsertHolidayParams) (repository.Holiday, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return repository.Holiday{}, q.err
	}

	h, ok := q.holidays[arg.OccursAt.Time]
	if !ok {
		q.nextID++
		h = repository.Holiday{ID: q.nextID, OccursAt: arg.OccursAt}
	}

	h.Name = arg.Name
	q.holidays[arg.OccursAt.Time] = h
	return h, nil
}

func (q *Querier) sorted() []repository.Holiday {
	holidays := make([]repository.Holiday, 0, len(q.holidays))
	for _, h := range q.holidays {
		holidays = append(holidays, h)
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].OccursAt.Time.Before(holidays[j].OccursAt.Time)
	})
	return holidays
}

var _ repository.Querier = (*Querier)(nil)
