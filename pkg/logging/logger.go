package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel defines the severity of the message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	CRITICAL
)

// String returns the upper-case level name used in log lines and settings.
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case CRITICAL:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// NewMockLogger returns a convenient mock logger for testing
func NewMockLogger() *DefaultLogger {
	return &DefaultLogger{
		writer: bytes.NewBufferString(""),
		level:  INFO,
	}
}

// Logger interface defines logging operations
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Critical(format string, args ...any)
	SetOutput(w io.Writer)
	SetLevel(level LogLevel)
}

// DefaultLogger provides a standard implementation. It is safe for use by
// concurrent region workers.
type DefaultLogger struct {
	mu     sync.Mutex
	writer io.Writer
	level  LogLevel
}

// NewDefaultLogger creates a new logger instance
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		writer: os.Stdout,
		level:  INFO,
	}
}

// NewLogger creates a logger writing to w at the given level.
func NewLogger(w io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		writer: w,
		level:  level,
	}
}

// Debug logs debug messages
func (l *DefaultLogger) Debug(format string, args ...any) {
	l.logAt(DEBUG, format, args...)
}

// Info logs informational messages
func (l *DefaultLogger) Info(format string, args ...any) {
	l.logAt(INFO, format, args...)
}

// Warn logs warning messages
func (l *DefaultLogger) Warn(format string, args ...any) {
	l.logAt(WARN, format, args...)
}

// Error logs error messages
func (l *DefaultLogger) Error(format string, args ...any) {
	l.logAt(ERROR, format, args...)
}

// Critical logs messages for failures that end the invocation
func (l *DefaultLogger) Critical(format string, args ...any) {
	l.logAt(CRITICAL, format, args...)
}

// SetOutput sets the output destination for the logger
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// SetLevel sets the logging level
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// logAt formats and writes a log message if level is enabled
func (l *DefaultLogger) logAt(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "%s [%s]: %s\n", timestamp, level, message)
}

// StringToLogLevel converts a string representation to a LogLevel.
// Matching is case-insensitive; unknown values fall back to INFO.
func StringToLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "CRITICAL":
		return CRITICAL
	default:
		return INFO
	}
}

// ParseLogLevel is the strict variant of StringToLogLevel used when
// validating configuration.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "CRITICAL":
		return StringToLogLevel(level), nil
	default:
		return INFO, fmt.Errorf("unsupported log level %q", level)
	}
}
