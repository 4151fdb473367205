// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to choose the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-16 v0.2.0: Severity mapping for analyzer codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in user supplied input
	// Examples: malformed source, wrong header, bad flags
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code
	SeverityMedium

	// SeverityHigh indicates the environment prevented the work
	// Examples: unreadable source file, unwritable output file
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the analyzer
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInputAccess, CodeOutputAccess:
		return SeverityHigh
	case CodeParameter, CodeHeader, CodeUnknownOpcode, CodeSyntax:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
