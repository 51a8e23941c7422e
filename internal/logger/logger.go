package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// Init configures the global logger. Console results go to stdout, so log
// lines are kept on stderr.
func Init(level string, verbose bool, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)

	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		return
	}

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		Log.Warnf("Invalid log level '%s', defaulting to 'info'", level)
		return
	}
	Log.SetLevel(parsed)
}

// Get returns the configured global logger
func Get() *logrus.Logger {
	return Log
}
