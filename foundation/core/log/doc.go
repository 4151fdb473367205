// Package log provides structured logging for the IPPcode24 analyzer.
//
// Package: log
// Title: Structured Logging
// Description: This package implements structured logging with fields, levels,
//              JSON, text and logfmt output and timing helpers. Log entries go
//              to the diagnostic stream only; the primary output stream is
//              reserved for the serialized program tree.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Diagnostic stream default, correlation IDs per analysis run
//
// Usage:
//   import mdwlog "github.com/msto63/ippcode/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithField("component", "ippcode-parser")
//
//   logger.Debug("statement accepted", mdwlog.Fields{"order": 3, "opcode": "MOVE"})
//
//   timer := logger.StartTimer("parse")
//   // ... analyze the source
//   timer.Stop()
package log
