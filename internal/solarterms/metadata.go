package solarterms

import "github.com/pders01/solarterms/internal/models"

const (
	SchemaName = "solar-terms-schema.json"
	Version    = "1.0.0-alpha"

	// DateLayout is the format of metadata.lastUpdated
	DateLayout = "2006-01-02"
)

var notes = []string{
	"This is a SIMPLIFIED dataset using approximate dates for the 24 solar terms",
	"Li Chun (立春) is approximated to February 4, 12:00 UTC for all years",
	"The 12 major solar terms that mark month boundaries are included",
	"All 24 solar terms (12 major + 12 minor) are included for completeness",
	"IMPORTANT: Replace with precise astronomical calculations in production",
	"Time-of-day precision should be added based on astronomical data",
	"Consider adding local timezone offsets for JST/CST calculations",
	"Solar terms vary by ±1-2 days from these approximations",
	"For births near solar term boundaries, use precise astronomical data",
}

var usage = models.Usage{
	LiChun:     "Used for determining solar year boundary in Nine Star Ki calculations",
	MajorTerms: "The 12 major terms mark the boundaries of the 12 solar months",
	MinorTerms: "Included for completeness and potential future use in daily calculations",
}

var phase2 = []string{
	"Replace with astronomical calculations using pymeeus or skyfield",
	"Add precise time-of-day when sun reaches exact longitude",
	"Include multiple timezone representations (UTC, JST, CST)",
	"Add historical data sources and cross-verification",
}

var phase3 = []string{
	"Implement real-time astronomical calculation API",
	"Add uncertainty ranges for historical dates",
	"Include leap second corrections",
	"Add delta-T corrections for historical accuracy",
}

// newMetadata assembles the literal metadata block. Coverage and
// lastUpdated are filled in by the builder.
func newMetadata() models.Metadata {
	return models.Metadata{
		Description:    "Solar terms data for Nine Star Ki calculations",
		DataSource:     "Simplified approximation based on typical patterns",
		PrecisionLevel: "approximate",
		Timezone:       "UTC",
		DateFormat:     "ISO 8601",
		Notes:          append([]string(nil), notes...),
		SolarTerms: models.SolarTermGroups{
			Major: MajorTerms(),
			Minor: MinorTerms(),
		},
		Usage: usage,
		Improvements: models.Improvements{
			Phase2: append([]string(nil), phase2...),
			Phase3: append([]string(nil), phase3...),
		},
	}
}
