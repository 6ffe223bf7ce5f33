// Package logger contains functions for a working with application logging.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A Level is a logging level.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel        // default level (zero-value)
	WarnLevel
	ErrorLevel
)

// Levels returns all logging levels as a strings slice.
func Levels() []string { return []string{"debug", "info", "warn", "error"} }

// String returns a lower-case ASCII representation of the log level.
func (l Level) String() string {
	if i := int(l) + 1; i >= 0 && i < len(Levels()) {
		return Levels()[i]
	}

	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel parses a level (case is ignored).
func ParseLevel(text string) (Level, error) {
	switch strings.ToLower(text) {
	case "debug", "verbose", "trace":
		return DebugLevel, nil
	case "info", "": // make the zero value useful
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}

	return Level(0), fmt.Errorf("unrecognized logging level: %q", text)
}

func (l Level) zap() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	}

	return zapcore.InfoLevel
}

// A Format is a logging format.
type Format uint8

const (
	ConsoleFormat Format = iota // useful for console output (for humans)
	JSONFormat                  // useful for logging aggregation systems (for robots)
)

// Formats returns all logging formats as a strings slice.
func Formats() []string { return []string{"console", "json"} }

// String returns a lower-case ASCII representation of the log format.
func (f Format) String() string {
	if int(f) < len(Formats()) {
		return Formats()[f]
	}

	return fmt.Sprintf("format(%d)", f)
}

// ParseFormat parses a format (case is ignored).
func ParseFormat(text string) (Format, error) {
	switch strings.ToLower(text) {
	case "console", "": // make the zero value useful
		return ConsoleFormat, nil
	case "json":
		return JSONFormat, nil
	}

	return Format(0), fmt.Errorf("unrecognized logging format: %q", text)
}

// New creates a new logger with the specified level and format. Logs are written into stderr, so the
// stdout stays clean for the commands output.
func New(l Level, f Format) (*zap.Logger, error) {
	var config zap.Config

	if f == JSONFormat {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	}

	config.Level = zap.NewAtomicLevelAt(l.zap())
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = l != DebugLevel
	config.DisableCaller = l != DebugLevel

	return config.Build()
}
