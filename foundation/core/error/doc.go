// Package error provides structured error handling for the IPPcode24 analyzer.
//
// Package: error
// Title: Analyzer Error Handling
// Description: This package implements a structured error type with error
//              codes, severity, details and stack traces. The codes form the
//              closed set of failure kinds of the analyzer and each one maps to
//              a fixed process exit status.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Analyzer codes and exit statuses
//
// Usage:
//   import mdwerror "github.com/msto63/ippcode/foundation/core/error"
//
//   err := mdwerror.NewWithCode(mdwerror.CodeSyntax, "wrong number of arguments").
//     WithDetail("opcode", "ADD").
//     WithDetail("line", 3)
//
//   if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//     os.Exit(mdwerror.GetCode(err).ExitStatus())
//   }
package error
