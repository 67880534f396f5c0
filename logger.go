// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package rejson

import (
	"fmt"
	"log"
	"strings"
)

// MaxLogValueLength limits the length of logged values. Reply payloads can
// be arbitrarily large; anything longer is truncated.
const MaxLogValueLength = 1024

// Logger is the pluggable logging interface used by the client.
//
// Implementations should use structured logging with key-value pairs. Two
// implementations are provided:
//   - DefaultLogger: wraps Go's standard log package with a level threshold
//   - NoOpLogger: discards everything (the default)
//
// Example custom logger integration:
//
//	type SlogAdapter struct {
//	    logger *slog.Logger
//	}
//
//	func (s *SlogAdapter) Debug(msg string, keysAndValues ...any) {
//	    s.logger.Debug(msg, keysAndValues...)
//	}
//	// ... implement Info, Warn, Error
//
//	client, _ := rejson.NewClient(conn,
//	    rejson.WithLogger(&SlogAdapter{logger: slog.Default()}))
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// LogLevel represents the severity threshold for logging
type LogLevel int

const (
	// LogLevelDebug enables all log levels (most verbose)
	LogLevelDebug LogLevel = iota

	// LogLevelInfo enables Info, Warn, and Error logs
	LogLevelInfo

	// LogLevelWarn enables Warn and Error logs
	LogLevelWarn

	// LogLevelError enables only Error logs
	LogLevelError

	// LogLevelNone disables all logging
	LogLevelNone
)

// String returns the string representation of a LogLevel
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(l))
	}
}

// DefaultLogger wraps Go's standard log package with a configurable level.
//
// Log output format: [LEVEL] message key1=value1 key2=value2
//
// Example:
//
//	logger := rejson.NewDefaultLogger(rejson.LogLevelDebug)
//	client, _ := rejson.NewClient(conn, rejson.WithLogger(logger))
type DefaultLogger struct {
	level LogLevel
}

// NewDefaultLogger creates a DefaultLogger with the specified log level
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// Debug logs a debug message with structured key-value pairs
func (l *DefaultLogger) Debug(msg string, keysAndValues ...any) {
	if l.level <= LogLevelDebug {
		l.log("DEBUG", msg, keysAndValues...)
	}
}

// Info logs an informational message with structured key-value pairs
func (l *DefaultLogger) Info(msg string, keysAndValues ...any) {
	if l.level <= LogLevelInfo {
		l.log("INFO", msg, keysAndValues...)
	}
}

// Warn logs a warning message with structured key-value pairs
func (l *DefaultLogger) Warn(msg string, keysAndValues ...any) {
	if l.level <= LogLevelWarn {
		l.log("WARN", msg, keysAndValues...)
	}
}

// Error logs an error message with structured key-value pairs
func (l *DefaultLogger) Error(msg string, keysAndValues ...any) {
	if l.level <= LogLevelError {
		l.log("ERROR", msg, keysAndValues...)
	}
}

// sanitizeLogValue renders a log value as a single safe line: control
// characters (newlines included) are replaced so reply payloads cannot
// inject fake log entries, and overlong values are truncated.
func sanitizeLogValue(val any) string {
	str := fmt.Sprintf("%v", val)

	if len(str) > MaxLogValueLength {
		str = str[:MaxLogValueLength] + "...[TRUNCATED]"
	}

	var builder strings.Builder
	builder.Grow(len(str))
	for _, r := range str {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			builder.WriteRune(' ')
		case r < 32 || r == 127:
			builder.WriteRune('.')
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// log formats and outputs a log message with structured key-value pairs.
// Keys and values are sanitized; the message itself comes from library
// code and is trusted.
func (l *DefaultLogger) log(level, msg string, keysAndValues ...any) {
	var builder strings.Builder
	builder.Grow(len(level) + len(msg) + 10 + len(keysAndValues)*25)

	builder.WriteString("[")
	builder.WriteString(level)
	builder.WriteString("] ")
	builder.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		builder.WriteString(" ")
		builder.WriteString(sanitizeLogValue(keysAndValues[i]))
		if i+1 < len(keysAndValues) {
			builder.WriteString("=")
			builder.WriteString(sanitizeLogValue(keysAndValues[i+1]))
		} else {
			// Odd-length array - mark missing value explicitly
			builder.WriteString("=<MISSING>")
		}
	}

	log.Println(builder.String())
}

// NoOpLogger is a no-operation logger that discards all log messages.
//
// This is the default logger used when no custom logger is configured.
type NoOpLogger struct{}

// Debug discards the log message
func (n *NoOpLogger) Debug(_ string, _ ...any) {}

// Info discards the log message
func (n *NoOpLogger) Info(_ string, _ ...any) {}

// Warn discards the log message
func (n *NoOpLogger) Warn(_ string, _ ...any) {}

// Error discards the log message
func (n *NoOpLogger) Error(_ string, _ ...any) {}
