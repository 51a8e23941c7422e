package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/pders01/solarterms/internal/models"
	"github.com/pders01/solarterms/internal/solarterms"
	"github.com/pders01/solarterms/internal/storage"
	"github.com/pders01/solarterms/internal/testutil"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestGenerateFullRange(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	genStart = 1900
	genEnd = 2100
	genOutput = ws.FilePath("solar-terms.json")

	var err error
	out := testutil.CaptureStdout(t, func() {
		err = runGenerate(nil, []string{})
	})
	if err != nil {
		t.Fatalf("generate command failed: %v", err)
	}

	if !strings.Contains(out, "Generated data for 201 years") {
		t.Errorf("expected year count in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Saved to: "+genOutput) {
		t.Errorf("expected destination in output, got:\n%s", out)
	}
	if !strings.Contains(out, "KB") {
		t.Errorf("expected file size in output, got:\n%s", out)
	}

	var doc models.Document
	ws.ReadJSON("solar-terms.json", &doc)

	if len(doc.Data) != 201 {
		t.Errorf("expected 201 years, got %d", len(doc.Data))
	}
	if doc.Metadata.LastUpdated != "2025-11-14" {
		t.Errorf("expected lastUpdated from clock, got %s", doc.Metadata.LastUpdated)
	}
	if err := solarterms.Validate(&doc); err != nil {
		t.Errorf("generated file failed validation: %v", err)
	}
}

func TestGenerateUsesConfig(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	viper.Set("range.start_year", 2020)
	viper.Set("range.end_year", 2022)
	viper.Set("output.path", ws.FilePath("configured.json"))

	testutil.CaptureStdout(t, func() {
		if err := runGenerate(nil, []string{}); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}
	})

	var doc models.Document
	ws.ReadJSON("configured.json", &doc)

	if doc.Metadata.Coverage.StartYear != 2020 || doc.Metadata.Coverage.EndYear != 2022 {
		t.Errorf("unexpected coverage: %+v", doc.Metadata.Coverage)
	}
}

func TestGenerateFlagsOverrideConfig(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	viper.Set("range.start_year", 1900)
	viper.Set("range.end_year", 2100)
	viper.Set("output.path", ws.FilePath("configured.json"))

	genStart = 2024
	genEnd = 2024
	genOutput = ws.FilePath("flagged.json")

	testutil.CaptureStdout(t, func() {
		if err := runGenerate(nil, []string{}); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}
	})

	if ws.FileExists("configured.json") {
		t.Error("configured output should not be written when --output is set")
	}

	var doc models.Document
	ws.ReadJSON("flagged.json", &doc)
	if len(doc.Data) != 1 {
		t.Errorf("expected a single year, got %d", len(doc.Data))
	}
}

func TestGenerateInvalidRange(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	genStart = 2001
	genEnd = 2000
	genOutput = ws.FilePath("solar-terms.json")

	var err error
	testutil.CaptureStdout(t, func() {
		err = runGenerate(nil, []string{})
	})

	if !errors.Is(err, solarterms.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if ws.FileExists("solar-terms.json") {
		t.Error("no file should be written for an invalid range")
	}
}

func TestGenerateMissingDirectory(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	genStart = 2024
	genEnd = 2024
	genOutput = ws.FilePath("missing/solar-terms.json")

	var err error
	testutil.CaptureStdout(t, func() {
		err = runGenerate(nil, []string{})
	})

	if err == nil {
		t.Fatal("expected error for missing output directory")
	}
	if !strings.Contains(err.Error(), "failed to save solar terms data") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateReplacesExistingFile(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()
	resetState(t)

	ws.CreateFile("solar-terms.json", "old content")
	createTestData(t, ws, 2024, 2025)

	if content := ws.ReadFile("solar-terms.json"); strings.Contains(content, "old content") {
		t.Error("existing file was not replaced")
	}

	files := ws.ListFiles(".")
	if len(files) != 1 || files[0] != "solar-terms.json" {
		t.Errorf("expected only solar-terms.json, found %v", files)
	}
}

func TestGenerateInMemory(t *testing.T) {
	resetState(t)
	appFs = afero.NewMemMapFs()

	genStart = 1999
	genEnd = 2001
	genOutput = "/solar-terms.json"

	testutil.CaptureStdout(t, func() {
		if err := runGenerate(nil, []string{}); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}
	})

	doc, err := storage.ReadDocument(appFs, "/solar-terms.json")
	if err != nil {
		t.Fatalf("failed to read generated data: %v", err)
	}
	for _, key := range []string{"1999", "2000", "2001"} {
		if _, ok := doc.Data[key]; !ok {
			t.Errorf("expected year %s", key)
		}
	}
}
