// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// reportTimestamps is the timestamp setting resolved by SetupLogging.
// Scoped loggers share it.
var reportTimestamps = true

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp reporting. nil means on.
	// Ignored when Verbose is set.
	Timestamps *bool
}

// timestamps resolves whether timestamps are reported.
func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	reportTimestamps = cfg.timestamps()
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: reportTimestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetLogWriter redirects the global logger. Used by tests.
func SetLogWriter(w io.Writer) {
	logger.SetOutput(w)
}

// Logger returns the global logger.
func Logger() *log.Logger {
	return logger
}

// ScopedLogger returns a logger prefixed with scope that inherits the global
// level and timestamp setting. Lines are written to stderr and to every extra
// writer.
func ScopedLogger(scope string, extra ...io.Writer) *log.Logger {
	var w io.Writer = os.Stderr
	if len(extra) > 0 {
		w = io.MultiWriter(append([]io.Writer{os.Stderr}, extra...)...)
	}
	return ScopedLoggerTo(scope, w)
}

// ScopedLoggerTo is like ScopedLogger but writes only to w.
func ScopedLoggerTo(scope string, w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: reportTimestamps,
		TimeFormat:      "15:04:05",
	})
	l.SetPrefix(scope)
	return l
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
