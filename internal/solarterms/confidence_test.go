package solarterms

import (
	"strings"
	"testing"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		year     int
		expected DataConfidence
	}{
		{1799, ConfidenceProjected},
		{1800, ConfidenceHistorical},
		{1919, ConfidenceHistorical},
		{1920, ConfidenceVerified},
		{2024, ConfidenceVerified},
		{2030, ConfidenceVerified},
		{2031, ConfidenceProjected},
		{2100, ConfidenceProjected},
	}

	for _, tt := range tests {
		if got := Confidence(tt.year); got != tt.expected {
			t.Errorf("Confidence(%d) = %s, want %s", tt.year, got, tt.expected)
		}
	}
}

func TestConfidenceWarning(t *testing.T) {
	if msg := ConfidenceWarning(2024); msg != "" {
		t.Errorf("expected no warning for verified year, got %q", msg)
	}

	if msg := ConfidenceWarning(1900); !strings.Contains(msg, "historical approximations") {
		t.Errorf("unexpected historical warning: %q", msg)
	}

	if msg := ConfidenceWarning(2050); !strings.Contains(msg, "2050 is an astronomical projection") {
		t.Errorf("unexpected projected warning: %q", msg)
	}
}
