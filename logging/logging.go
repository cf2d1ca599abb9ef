// Package logging is the library's structured logging shim.
//
// The numeric core stays log-free (its routines are pure and may run in
// time-critical contexts), so logging only appears at the boundaries: sample
// sources and the command-line tooling. Applications embedding the library
// swap in their own Logger via SetGlobalLogger; the default writes leveled
// lines through the standard log package.
package logging

import "context"

// Level is a log severity threshold.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Fields carries structured key/value context on a log line.
type Fields map[string]any

// Logger is the interface the library logs through.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	Fatal(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields merged into every line.
	WithFields(fields Fields) Logger

	// WithContext returns a logger bound to ctx for implementations that
	// carry request-scoped fields; the default implementation ignores it.
	WithContext(ctx context.Context) Logger

	// SetLevel sets the minimum severity emitted.
	SetLevel(level Level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger replaces the logger the package-level functions use.
// Passing nil silences the library entirely.
func SetGlobalLogger(logger Logger) {
	if logger == nil {
		globalLogger = &NoOpLogger{}
		return
	}
	globalLogger = logger
}

// GetGlobalLogger returns the logger the package-level functions use.
func GetGlobalLogger() Logger {
	return globalLogger
}

// Package-level functions forwarding to the global logger.

func Debug(msg string, fields ...Fields) { globalLogger.Debug(msg, fields...) }

func Info(msg string, fields ...Fields) { globalLogger.Info(msg, fields...) }

func Warn(msg string, fields ...Fields) { globalLogger.Warn(msg, fields...) }

func Error(err error, msg string, fields ...Fields) { globalLogger.Error(err, msg, fields...) }

func Fatal(err error, msg string, fields ...Fields) { globalLogger.Fatal(err, msg, fields...) }

func WithFields(fields Fields) Logger { return globalLogger.WithFields(fields) }

func SetLevel(level Level) { globalLogger.SetLevel(level) }
