// Package stringx provides extended string operations for the IPPcode24 analyzer.
//
// Package: stringx
// Title: Extended String Operations
// Description: Small string utilities that extend the Go standard library.
//              All functions are Unicode-aware and free of side effects.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-16 v0.3.0: Reduced to the analyzer's needs
//
// Usage:
//
//	import mdwstringx "github.com/msto63/ippcode/foundation/utils/stringx"
//
//	for _, line := range mdwstringx.SplitLines(source) {
//		code := mdwstringx.BeforeFirst(line, "#")
//		if mdwstringx.IsBlank(code) {
//			continue
//		}
//		// ...
//	}
package stringx
