// ============================================================================
// ippcode - IPPcode24 Analyzer
// ============================================================================
//
// Package:     logging
// Description: Factory functions for the diagnostic logger of a run
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/ippcode/foundation/core/log"
	mdwstringx "github.com/msto63/ippcode/foundation/utils/stringx"
)

// DefaultServiceName names loggers created without a service name
const DefaultServiceName = "ippcode"

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "text", "json" or "logfmt" (default: text)
	Format string

	// Diagnostic stream (default: stderr)
	Output io.Writer

	// Additional outputs besides the diagnostic stream
	AdditionalOutputs []io.Writer

	// Correlation ID of the run; generated when empty
	CorrelationID string

	// Report caller file and line with every entry
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       mdwlog.DefaultLevel().String(),
		Format:      mdwlog.FormatText.String(),
	}
}

// NewLogger creates a Foundation logger tagged with a run correlation ID
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	// Invalid values fall back to the defaults; settings are validated earlier
	level, _ := mdwlog.ParseLevel(cfg.Level)
	format, _ := mdwlog.ParseFormat(cfg.Format)

	correlationID := strings.TrimSpace(cfg.CorrelationID)
	if mdwstringx.IsBlank(correlationID) {
		correlationID = NewCorrelationID()
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         mdwstringx.FirstNonBlank(cfg.ServiceName, DefaultServiceName),
		EnableCaller: cfg.EnableCaller,
	})

	return logger.WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// NewCorrelationID returns a fresh run identifier
func NewCorrelationID() string {
	return uuid.New().String()
}
