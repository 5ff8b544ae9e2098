package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Type alias for slog.Level for easier usage
type Level = slog.Level

const (
	LevelTrace   = slog.Level(-8)
	LevelDebug   = slog.LevelDebug // -4
	LevelInfo    = slog.LevelInfo  // 0
	LevelWarning = slog.LevelWarn  // 4
	LevelError   = slog.LevelError // 8
)

// Format selects the handler used for log output
type Format int

const (
	FormatText Format = iota // human readable, for the CLI
	FormatJSON               // one JSON object per line, for the server
)

var (
	Logger       *slog.Logger
	programLevel = new(slog.LevelVar)
)

// Request counters reported by the health endpoint
var (
	TotalRequests  atomic.Int64
	Total4xxErrors atomic.Int64
	Total5xxErrors atomic.Int64
	Total429Errors atomic.Int64
)

func init() {
	SetLevelFromEnv("LOG_LEVEL", LevelWarning)
	Setup(FormatText, os.Stderr)
}

// Setup replaces the package logger and the slog default
func Setup(format Format, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level: programLevel,
	}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// SetLevel sets the minimum log level for the logger
func SetLevel(level slog.Level) {
	programLevel.Set(level)
}

// GetLevel returns the current minimum log level
func GetLevel() slog.Level {
	return programLevel.Level()
}

// ParseLevel converts a string level name to slog.Level
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s (defaulting to INFO)", levelStr)
	}
}

// SetLevelFromEnv sets the log level from an environment variable.
// If the variable is not set or invalid, defaultLevel is used.
func SetLevelFromEnv(envVarName string, defaultLevel slog.Level) {
	levelStr := os.Getenv(envVarName)
	if levelStr == "" {
		programLevel.Set(defaultLevel)
		return
	}

	level, err := ParseLevel(levelStr)
	if err != nil {
		programLevel.Set(defaultLevel)
		return
	}
	programLevel.Set(level)
}

// Trace logs a trace-level message
func Trace(msg string, args ...any) {
	Logger.Log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs a debug-level message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info-level message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning-level message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error-level message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// CountStatus records a finished HTTP response
func CountStatus(status int) {
	TotalRequests.Add(1)
	switch {
	case status >= 500:
		Total5xxErrors.Add(1)
	case status == 429:
		Total429Errors.Add(1)
		Total4xxErrors.Add(1)
	case status >= 400:
		Total4xxErrors.Add(1)
	}
}
