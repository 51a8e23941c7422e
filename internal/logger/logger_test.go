package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		verbose  bool
		expected logrus.Level
	}{
		{"info", "info", false, logrus.InfoLevel},
		{"upper case", "WARN", false, logrus.WarnLevel},
		{"verbose wins", "error", true, logrus.DebugLevel},
		{"invalid falls back", "loud", false, logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(tt.level, tt.verbose, &buf)

			if got := Get().GetLevel(); got != tt.expected {
				t.Errorf("expected level %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestInitInvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	Init("loud", false, &buf)

	if !strings.Contains(buf.String(), "Invalid log level 'loud'") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	Init("info", false, &buf)

	Log.Debug("hidden")
	Log.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be suppressed at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message should be logged")
	}
}
