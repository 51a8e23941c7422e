package cmd

import (
	"fmt"

	"github.com/pders01/solarterms/internal/config"
	"github.com/pders01/solarterms/internal/logger"
	"github.com/pders01/solarterms/internal/models"
	"github.com/pders01/solarterms/internal/storage"
)

// resolveDataFile returns the flag value or the configured output path
func resolveDataFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.GetOutputPath()
}

// loadDocument reads the generated data file
func loadDocument(path string) (*models.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("data file path is required (use --file or set output.path)")
	}

	logger.Log.Debugf("Reading %s", path)
	doc, err := storage.ReadDocument(appFs, path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// shortDate trims a term timestamp to its calendar date
func shortDate(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}
