// File: codes.go
// Title: Error Code Definitions
// Description: Defines the closed set of error codes produced by the IPPcode24
//              analyzer. Every code maps to exactly one process exit status and
//              one diagnostic message so that the outermost driver can turn the
//              first failure into the agreed termination signal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Analyzer error kinds with exit statuses

package error

// Code represents a structured error code for categorizing errors
type Code string

// Analyzer error codes
const (
	// Invocation
	CodeParameter    Code = "PARAMETER"
	CodeInputAccess  Code = "INPUT_ACCESS"
	CodeOutputAccess Code = "OUTPUT_ACCESS"

	// Source analysis
	CodeHeader        Code = "HEADER"
	CodeUnknownOpcode Code = "UNKNOWN_OPCODE"
	CodeSyntax        Code = "SYNTAX"

	// Generic
	CodeInternal Code = "INTERNAL"
)

// Exit statuses agreed upon with the surrounding CLI
const (
	ExitOK            = 0
	ExitParameter     = 10
	ExitInputAccess   = 11
	ExitOutputAccess  = 12
	ExitHeader        = 21
	ExitUnknownOpcode = 22
	ExitSyntax        = 23
	ExitInternal      = 99
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeParameter, CodeInputAccess, CodeOutputAccess,
		CodeHeader, CodeUnknownOpcode, CodeSyntax,
		CodeInternal:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParameter, CodeInputAccess, CodeOutputAccess:
		return "invocation"
	case CodeHeader, CodeUnknownOpcode, CodeSyntax:
		return "source"
	default:
		return "internal"
	}
}

// ExitStatus returns the process exit status for this error code.
// Unknown codes map to the internal error status.
func (c Code) ExitStatus() int {
	switch c {
	case CodeParameter:
		return ExitParameter
	case CodeInputAccess:
		return ExitInputAccess
	case CodeOutputAccess:
		return ExitOutputAccess
	case CodeHeader:
		return ExitHeader
	case CodeUnknownOpcode:
		return ExitUnknownOpcode
	case CodeSyntax:
		return ExitSyntax
	default:
		return ExitInternal
	}
}

// Message returns the human-readable diagnostic for this error code
func (c Code) Message() string {
	switch c {
	case CodeParameter:
		return "missing script parameter or invalid combination of parameters used"
	case CodeInputAccess:
		return "failed to open input file"
	case CodeOutputAccess:
		return "failed to open output file"
	case CodeHeader:
		return "missing or wrong IPPcode24 header in source code"
	case CodeUnknownOpcode:
		return "unknown opcode in source code"
	case CodeSyntax:
		return "other lexical or syntactical error detected"
	default:
		return "internal error"
	}
}

// AllCodes returns every error code in exit status order
func AllCodes() []Code {
	return []Code{
		CodeParameter,
		CodeInputAccess,
		CodeOutputAccess,
		CodeHeader,
		CodeUnknownOpcode,
		CodeSyntax,
		CodeInternal,
	}
}
