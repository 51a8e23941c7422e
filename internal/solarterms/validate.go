package solarterms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pders01/solarterms/internal/models"
)

var ErrInvalidDocument = errors.New("invalid solar terms document")

// Validate checks a document against the table invariants and reports
// every problem found
func Validate(doc *models.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	var problems []error
	problems = append(problems, validateCoverage(doc)...)
	problems = append(problems, validateTermGroups(doc.Metadata.SolarTerms)...)

	keys := TermKeys()
	for yearKey, record := range doc.Data {
		problems = append(problems, validateYearRecord(yearKey, record, keys)...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(problems...))
	}
	return nil
}

func validateCoverage(doc *models.Document) []error {
	var problems []error
	cov := doc.Metadata.Coverage

	if cov.StartYear > cov.EndYear {
		problems = append(problems, fmt.Errorf("coverage start %d is after end %d", cov.StartYear, cov.EndYear))
		return problems
	}

	if want := cov.EndYear - cov.StartYear + 1; cov.TotalYears != want {
		problems = append(problems, fmt.Errorf("coverage totalYears is %d, expected %d", cov.TotalYears, want))
	}

	if len(doc.Data) != cov.TotalYears {
		problems = append(problems, fmt.Errorf("data holds %d years, coverage declares %d", len(doc.Data), cov.TotalYears))
	}

	for year := cov.StartYear; year <= cov.EndYear; year++ {
		if _, ok := doc.Data[models.YearKey(year)]; !ok {
			problems = append(problems, fmt.Errorf("year %s is missing from data", models.YearKey(year)))
		}
	}

	return problems
}

func validateTermGroups(groups models.SolarTermGroups) []error {
	var problems []error

	if len(groups.Major) != 12 {
		problems = append(problems, fmt.Errorf("expected 12 major terms, got %d", len(groups.Major)))
	}
	if len(groups.Minor) != 12 {
		problems = append(problems, fmt.Errorf("expected 12 minor terms, got %d", len(groups.Minor)))
	}

	seen := make(map[string]bool)
	for _, t := range append(append([]models.TermDefinition(nil), groups.Major...), groups.Minor...) {
		if seen[t.Key] {
			problems = append(problems, fmt.Errorf("term %s is listed more than once", t.Key))
		}
		seen[t.Key] = true
	}

	for _, key := range TermKeys() {
		if !seen[key] {
			problems = append(problems, fmt.Errorf("term %s is missing from metadata", key))
		}
		delete(seen, key)
	}
	for key := range seen {
		problems = append(problems, fmt.Errorf("unknown term %s in metadata", key))
	}

	return problems
}

func validateYearRecord(yearKey string, record models.YearRecord, keys []string) []error {
	var problems []error

	if len(record) != TermCount {
		problems = append(problems, fmt.Errorf("year %s has %d terms, expected %d", yearKey, len(record), TermCount))
	}

	seen := make(map[string]bool, len(record))
	for _, td := range record {
		if seen[td.Key] {
			problems = append(problems, fmt.Errorf("year %s lists %s more than once", yearKey, td.Key))
		}
		seen[td.Key] = true

		if !strings.HasPrefix(td.Timestamp, yearKey+"-") {
			problems = append(problems, fmt.Errorf("year %s: %s timestamp %q is in another year", yearKey, td.Key, td.Timestamp))
			continue
		}
		if _, err := time.Parse(time.RFC3339, td.Timestamp); err != nil {
			problems = append(problems, fmt.Errorf("year %s: %s timestamp %q is not ISO 8601", yearKey, td.Key, td.Timestamp))
		}
	}

	for _, key := range keys {
		if !seen[key] {
			problems = append(problems, fmt.Errorf("year %s is missing %s", yearKey, key))
		}
	}

	return problems
}
