package solarterms

import "fmt"

// DataConfidence grades how far a year's dates can be trusted
type DataConfidence string

const (
	ConfidenceVerified   DataConfidence = "verified"
	ConfidenceHistorical DataConfidence = "historical"
	ConfidenceProjected  DataConfidence = "projected"
)

// Confidence returns the confidence level for a year
// Verified: 1920-2030, historical: 1800-1919, everything else projected
func Confidence(year int) DataConfidence {
	switch {
	case year >= 1920 && year <= 2030:
		return ConfidenceVerified
	case year >= 1800 && year < 1920:
		return ConfidenceHistorical
	default:
		return ConfidenceProjected
	}
}

// ConfidenceWarning returns a user-facing warning, or an empty string for
// verified years
func ConfidenceWarning(year int) string {
	switch Confidence(year) {
	case ConfidenceHistorical:
		return fmt.Sprintf("Data for year %d is based on historical approximations. Solar term dates may vary by ±1-2 days from actual values.", year)
	case ConfidenceProjected:
		return fmt.Sprintf("Data for year %d is an astronomical projection. Solar term dates may vary by ±1-2 days from actual values.", year)
	default:
		return ""
	}
}
