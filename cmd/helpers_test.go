package cmd

import (
	"testing"
	"time"

	"github.com/pders01/solarterms/internal/clock"
	"github.com/pders01/solarterms/internal/testutil"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var testNow = time.Date(2025, 11, 14, 9, 30, 0, 0, time.UTC)

// resetState clears flag variables and swaps in a fixed clock
func resetState(t *testing.T) {
	t.Helper()

	genStart, genEnd, genOutput = 0, 0, ""
	showFile, showJSON, showToon = "", false, false
	termsCategory, termsJSON, termsToon = "", false, false
	monthFile, monthJSON = "", false
	statsFile, statsJSON, statsToon = "", false, false
	initForce = false
	viper.Reset()

	oldFs, oldClock := appFs, appClock
	appFs = afero.NewOsFs()
	appClock = clock.NewFixed(testNow)

	t.Cleanup(func() {
		appFs, appClock = oldFs, oldClock
		viper.Reset()
	})
}

// createTestData generates a data file in the workspace and returns its path
func createTestData(t *testing.T, ws *testutil.TempWorkspace, start, end int) string {
	t.Helper()

	path := ws.FilePath("solar-terms.json")
	genStart, genEnd, genOutput = start, end, path

	testutil.CaptureStdout(t, func() {
		if err := runGenerate(nil, []string{}); err != nil {
			t.Fatalf("failed to generate test data: %v", err)
		}
	})

	genStart, genEnd, genOutput = 0, 0, ""
	return path
}
