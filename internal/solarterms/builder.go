package solarterms

import (
	"errors"
	"fmt"

	"github.com/pders01/solarterms/internal/clock"
	"github.com/pders01/solarterms/internal/models"
)

const (
	// MinYear and MaxYear bound the years that fit a four-digit key
	MinYear = 1
	MaxYear = 9999

	// TimeOfDay is appended to every generated date
	TimeOfDay = "T12:00:00Z"
)

var (
	ErrInvalidRange   = errors.New("start year is after end year")
	ErrYearOutOfRange = errors.New("year out of range")
)

// DateResolver decides the calendar date of a term in a given year
type DateResolver interface {
	DateFor(term models.TermDefinition, year int) (month, day int)
}

// FixedDateResolver returns each term's fixed month and day, ignoring the year
type FixedDateResolver struct{}

func (FixedDateResolver) DateFor(term models.TermDefinition, year int) (int, int) {
	return term.Month, term.Day
}

// Builder generates solar terms documents
type Builder struct {
	clock    clock.Clock
	resolver DateResolver
}

// NewBuilder creates a builder. A nil clock uses the system clock and a
// nil resolver uses the fixed-date table.
func NewBuilder(clk clock.Clock, resolver DateResolver) *Builder {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if resolver == nil {
		resolver = FixedDateResolver{}
	}
	return &Builder{
		clock:    clk,
		resolver: resolver,
	}
}

// Build generates the document for the inclusive range [startYear, endYear]
func (b *Builder) Build(startYear, endYear int) (*models.Document, error) {
	if err := ValidateRange(startYear, endYear); err != nil {
		return nil, err
	}

	data := make(map[string]models.YearRecord, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		data[models.YearKey(year)] = b.yearRecord(year)
	}

	metadata := newMetadata()
	metadata.LastUpdated = b.clock.Now().Format(DateLayout)
	metadata.Coverage = models.Coverage{
		StartYear:  startYear,
		EndYear:    endYear,
		TotalYears: endYear - startYear + 1,
	}

	return &models.Document{
		Schema:   SchemaName,
		Version:  Version,
		Metadata: metadata,
		Data:     data,
	}, nil
}

func (b *Builder) yearRecord(year int) models.YearRecord {
	record := make(models.YearRecord, 0, TermCount)
	for _, term := range Terms() {
		month, day := b.resolver.DateFor(term, year)
		record = append(record, models.TermDate{
			Key:       term.Key,
			Timestamp: Timestamp(year, month, day),
		})
	}
	return record
}

// ValidateRange checks a requested year range before anything is built
func ValidateRange(startYear, endYear int) error {
	if startYear > endYear {
		return fmt.Errorf("%w: %d > %d", ErrInvalidRange, startYear, endYear)
	}
	if startYear < MinYear || endYear > MaxYear {
		return fmt.Errorf("%w: years must be between %d and %d, got %d-%d",
			ErrYearOutOfRange, MinYear, MaxYear, startYear, endYear)
	}
	return nil
}

// Timestamp formats a term date
// Format: YYYY-MM-DDT12:00:00Z
func Timestamp(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d%s", year, month, day, TimeOfDay)
}
