package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Params configures the process-wide logger.
type Params struct {
	Debug bool
	// Output defaults to stderr.
	Output io.Writer
}

var std = newLogger(Params{})

func newLogger(p Params) *log.Logger {
	out := p.Output
	if out == nil {
		out = os.Stderr
	}
	level := log.InfoLevel
	if p.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: p.Debug,
		Level:           level,
		Prefix:          "reelviz",
	})
}

// Init replaces the process-wide logger. Call once from the CLI root.
func Init(p Params) {
	std = newLogger(p)
}

// Debug writes a message at DEBUG level.
func Debug(message string, keyvals ...any) { std.Debug(message, keyvals...) }

// Info writes a message at INFO level.
func Info(message string, keyvals ...any) { std.Info(message, keyvals...) }

// Warn writes a message at WARN level.
func Warn(message string, keyvals ...any) { std.Warn(message, keyvals...) }

// Error writes a message at ERROR level.
func Error(message string, keyvals ...any) { std.Error(message, keyvals...) }
