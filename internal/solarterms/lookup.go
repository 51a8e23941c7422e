package solarterms

import (
	"errors"
	"fmt"
	"time"

	"github.com/pders01/solarterms/internal/models"
)

var ErrYearNotCovered = errors.New("year not covered by data")

// SolarMonth is the solar month a moment falls into
type SolarMonth struct {
	SolarYear int                   `json:"solarYear"`
	Month     int                   `json:"month"`
	Term      models.TermDefinition `json:"term"`
	Start     time.Time             `json:"start"`
	End       time.Time             `json:"end"`
}

// TermTime returns the parsed timestamp of a term in a given year
func TermTime(doc *models.Document, year int, key string) (time.Time, error) {
	record, ok := doc.Data[models.YearKey(year)]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %d", ErrYearNotCovered, year)
	}

	ts, ok := record.Get(key)
	if !ok {
		return time.Time{}, fmt.Errorf("year %d has no %s entry", year, key)
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s timestamp for %d: %w", key, year, err)
	}
	return t, nil
}

// MonthBoundaries returns the start of each of the 12 solar months of a
// solar year: Li Chun through Da Xue of solarYear, then Xiao Han of the
// following calendar year
func MonthBoundaries(doc *models.Document, solarYear int) ([]time.Time, error) {
	major := MajorTerms()
	bounds := make([]time.Time, 0, len(major))

	for _, term := range major {
		year := solarYear
		if term.Month < 2 {
			year = solarYear + 1
		}
		t, err := TermTime(doc, year, term.Key)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, t)
	}

	return bounds, nil
}

// SolarMonthFor finds the solar month containing t
// A moment equal to a boundary belongs to the month that boundary starts.
func SolarMonthFor(doc *models.Document, t time.Time) (SolarMonth, error) {
	t = t.UTC()

	liChun, err := TermTime(doc, t.Year(), LiChun)
	if err != nil {
		return SolarMonth{}, err
	}

	solarYear := t.Year()
	if t.Before(liChun) {
		solarYear--
	}

	bounds, err := MonthBoundaries(doc, solarYear)
	if err != nil {
		return SolarMonth{}, err
	}

	idx := 0
	for i, b := range bounds {
		if t.Before(b) {
			break
		}
		idx = i
	}

	var end time.Time
	if idx+1 < len(bounds) {
		end = bounds[idx+1]
	} else {
		end, err = TermTime(doc, solarYear+1, LiChun)
		if err != nil {
			return SolarMonth{}, err
		}
	}

	return SolarMonth{
		SolarYear: solarYear,
		Month:     idx + 1,
		Term:      MajorTerms()[idx],
		Start:     bounds[idx],
		End:       end,
	}, nil
}

// ParseDate accepts YYYY-MM-DD, read as 12:00 UTC, or an RFC 3339 timestamp
func ParseDate(s string) (time.Time, error) {
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d.Add(12 * time.Hour), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC 3339)", s)
	}
	return t.UTC(), nil
}
