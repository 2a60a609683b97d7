// Package seeder loads holiday fixtures from YAML and writes them to the
// store. Entries whose date is not a real YYYY-MM-DD calendar date, or whose
// name is blank, are skipped rather than failing the whole import.
package seeder

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/holidays-backend-service/internal/dateutil"
	"github.com/mdayat/holidays-backend-service/repository"
	"gopkg.in/yaml.v3"
)

type Entry struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"`
}

type Holiday struct {
	Name     string
	OccursAt time.Time
}

type Skipped struct {
	Entry  Entry
	Reason string
}

func LoadFile(path string) ([]Holiday, []Skipped, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load decodes a YAML list of {name, date} entries. A date seen twice keeps
// its first entry.
func Load(r io.Reader) ([]Holiday, []Skipped, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	holidays := make([]Holiday, 0, len(entries))
	seen := make(map[time.Time]bool, len(entries))
	var skipped []Skipped

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			skipped = append(skipped, Skipped{Entry: entry, Reason: "blank name"})
			continue
		}

		occursAt, err := dateutil.ParseDate(strings.TrimSpace(entry.Date))
		if err != nil {
			skipped = append(skipped, Skipped{Entry: entry, Reason: "invalid date"})
			continue
		}

		if seen[occursAt] {
			skipped = append(skipped, Skipped{Entry: entry, Reason: "duplicate date"})
			continue
		}

		seen[occursAt] = true
		holidays = append(holidays, Holiday{Name: name, OccursAt: occursAt})
	}

	return holidays, skipped, nil
}

// Seed upserts every holiday by date and returns how many rows were written.
func Seed(ctx context.Context, queries repository.Querier, holidays []Holiday) (int, error) {
	for i, holiday := range holidays {
		_, err := queries.UpsertHoliday(ctx, repository.UpsertHolidayParams{
			Name:     holiday.Name,
			OccursAt: pgtype.Date{Time: holiday.OccursAt, Valid: true},
		})

		if err != nil {
			return i, fmt.Errorf("failed to upsert holiday on %s: %w", dateutil.Format(holiday.OccursAt), err)
		}
	}

	return len(holidays), nil
}
