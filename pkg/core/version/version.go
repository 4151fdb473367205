// ============================================================================
// ippcode - IPPcode24 Analyzer
// ============================================================================
//
// Package:     version
// Description: Central version management for the analyzer and its CLI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Analyzer release
	Analyzer = "1.0.0"

	// Source language accepted by the analyzer
	Language = "IPPcode24"
)

// Build information, set via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info returns the multi-line version banner printed by the CLI
func Info(program string) string {
	return fmt.Sprintf("%s v%s (%s)\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		program, Analyzer, Language, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
