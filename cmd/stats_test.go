package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pders01/solarterms/internal/testutil"
)

func TestStatsFullRange(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	statsFile = createTestData(t, ws, 1900, 2100)
	statsJSON = true

	out := testutil.CaptureStdout(t, func() {
		if err := runStats(nil, []string{}); err != nil {
			t.Fatalf("stats command failed: %v", err)
		}
	})

	var stats tableStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if stats.TotalYears != 201 {
		t.Errorf("expected 201 years, got %d", stats.TotalYears)
	}
	if stats.TotalEntries != 201*24 {
		t.Errorf("expected %d entries, got %d", 201*24, stats.TotalEntries)
	}

	// 1900-1919 historical, 1920-2030 verified, 2031-2100 projected
	expected := map[string]int{"historical": 20, "verified": 111, "projected": 70}
	for level, count := range expected {
		if stats.ByConfidence[level] != count {
			t.Errorf("expected %d %s years, got %d", count, level, stats.ByConfidence[level])
		}
	}

	if len(stats.ByMonth) != 12 {
		t.Fatalf("expected 12 months, got %d", len(stats.ByMonth))
	}
	for _, mc := range stats.ByMonth {
		if mc.Major != 1 || mc.Minor != 1 {
			t.Errorf("month %d: expected one major and one minor term, got %d/%d", mc.Month, mc.Major, mc.Minor)
		}
	}
}

func TestStatsHumanReadable(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	statsFile = createTestData(t, ws, 2024, 2025)

	out := testutil.CaptureStdout(t, func() {
		if err := runStats(nil, []string{}); err != nil {
			t.Fatalf("stats command failed: %v", err)
		}
	})

	for _, want := range []string{"Coverage:      2024 to 2025 (2 years)", "Entries:       48", "verified        2  (100.0%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestStatsToon(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	statsFile = createTestData(t, ws, 2024, 2024)
	statsToon = true

	out := testutil.CaptureStdout(t, func() {
		if err := runStats(nil, []string{}); err != nil {
			t.Fatalf("stats command failed: %v", err)
		}
	})

	if !strings.Contains(out, "1.0.0-alpha") {
		t.Errorf("expected version in toon output, got:\n%s", out)
	}
}
