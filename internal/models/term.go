package models

// TermCategory separates the 12 month-boundary terms from the 12 terms
// that fall between them
type TermCategory string

const (
	CategoryMajor TermCategory = "major"
	CategoryMinor TermCategory = "minor"
)

// TermDefinition describes one of the 24 solar terms
// Month, Day and Category drive table generation and are not serialized;
// the remaining fields form the descriptor record in document metadata.
type TermDefinition struct {
	Key                string       `json:"key"`
	Name               string       `json:"name"`
	EnglishName        string       `json:"englishName"`
	Typical            string       `json:"typical"`
	MarksMonthBoundary bool         `json:"marksMonthBoundary,omitempty"`
	SolarMonthNumber   int          `json:"solarMonthNumber,omitempty"`
	Description        string       `json:"description"`
	Month              int          `json:"-"`
	Day                int          `json:"-"`
	Category           TermCategory `json:"-"`
}

// IsMajor reports whether the term marks a solar month boundary
func (t TermDefinition) IsMajor() bool {
	return t.Category == CategoryMajor
}
