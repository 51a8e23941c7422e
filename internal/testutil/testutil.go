package testutil

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// TempWorkspace is a scratch directory for command tests
type TempWorkspace struct {
	Path string
	T    *testing.T
}

// NewTempWorkspace creates a new temporary workspace
func NewTempWorkspace(t *testing.T) *TempWorkspace {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "solarterms-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	return &TempWorkspace{
		Path: tmpDir,
		T:    t,
	}
}

// Cleanup removes the temporary workspace
func (w *TempWorkspace) Cleanup() {
	w.T.Helper()
	if err := os.RemoveAll(w.Path); err != nil {
		w.T.Errorf("failed to cleanup temp workspace: %v", err)
	}
}

// FilePath returns the absolute path of name inside the workspace
func (w *TempWorkspace) FilePath(name string) string {
	return filepath.Join(w.Path, name)
}

// CreateFile creates a file in the workspace
func (w *TempWorkspace) CreateFile(name, content string) {
	w.T.Helper()
	path := w.FilePath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		w.T.Fatalf("failed to create file: %v", err)
	}
}

// FileExists checks if a file exists in the workspace
func (w *TempWorkspace) FileExists(name string) bool {
	w.T.Helper()
	_, err := os.Stat(w.FilePath(name))
	return err == nil
}

// ReadFile returns the content of a workspace file
func (w *TempWorkspace) ReadFile(name string) string {
	w.T.Helper()
	data, err := os.ReadFile(w.FilePath(name))
	if err != nil {
		w.T.Fatalf("failed to read file: %v", err)
	}
	return string(data)
}

// ReadJSON decodes a workspace file into v
func (w *TempWorkspace) ReadJSON(name string, v any) {
	w.T.Helper()
	if err := json.Unmarshal([]byte(w.ReadFile(name)), v); err != nil {
		w.T.Fatalf("failed to parse %s: %v", name, err)
	}
}

// ListFiles returns the sorted names of all entries in a workspace directory
func (w *TempWorkspace) ListFiles(dir string) []string {
	w.T.Helper()
	entries, err := os.ReadDir(w.FilePath(dir))
	if err != nil {
		w.T.Fatalf("failed to list directory: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// CaptureStdout runs fn and returns everything it printed to stdout
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	old := os.Stdout
	os.Stdout = w

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	defer func() {
		os.Stdout = old
	}()

	fn()

	w.Close()
	out := <-done
	r.Close()
	return out
}
