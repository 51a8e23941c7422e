package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pders01/solarterms/internal/models"
	"github.com/spf13/afero"
)

// Encode serializes a document as indented UTF-8 JSON
// CJK term names are written literally and the output ends with a newline.
func Encode(doc *models.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode parses a document produced by Encode
func Decode(data []byte) (*models.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}

// WriteDocument encodes doc and writes it to path, returning the number of
// bytes written. The content goes to a temporary file in the same
// directory first and is renamed over path, so path is either replaced
// completely or left untouched.
func WriteDocument(fs afero.Fs, path string, doc *models.Document) (int64, error) {
	data, err := Encode(doc)
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(path)
	info, err := fs.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to access output directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("output directory is not a directory: %s", dir)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := afero.WriteFile(fs, tmpPath, data, 0644); err != nil {
		_ = fs.Remove(tmpPath)
		return 0, fmt.Errorf("failed to write document: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return 0, fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return int64(len(data)), nil
}

// ReadDocument reads and parses a document from path
func ReadDocument(fs afero.Fs, path string) (*models.Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data file not found: %s (run: solarterms generate)", path)
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	return Decode(data)
}
