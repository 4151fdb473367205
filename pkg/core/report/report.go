// ============================================================================
// ippcode - IPPcode24 Analyzer
// ============================================================================
//
// Package:     report
// Description: Turns the first failure of a run into a diagnostic message
//              and the matching process exit status
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tebeka/atexit"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwlog "github.com/msto63/ippcode/foundation/core/log"
)

// ExitFunc terminates the process with the given status
type ExitFunc func(status int)

// Options configures a Reporter
type Options struct {
	// Diagnostic stream (default: stderr)
	Output io.Writer

	// Logger receiving the structured error entry in verbose mode
	Logger *mdwlog.Logger

	// Verbose adds the error chain below the headline and logs the details
	Verbose bool

	// Exit terminates the process (default: atexit.Exit)
	Exit ExitFunc
}

// Reporter writes diagnostics for failed runs
type Reporter struct {
	out     io.Writer
	logger  *mdwlog.Logger
	verbose bool
	exit    ExitFunc

	headline lipgloss.Style
	cause    lipgloss.Style
}

// New creates a Reporter
func New(opts Options) *Reporter {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	exit := opts.Exit
	if exit == nil {
		exit = atexit.Exit
	}

	// Colors only when the diagnostic stream is a terminal
	renderer := lipgloss.NewRenderer(out)

	return &Reporter{
		out:     out,
		logger:  logger,
		verbose: opts.Verbose,
		exit:    exit,
		headline: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444")),
		cause: renderer.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
	}
}

// Report writes the diagnostic for err and returns its exit status.
// A nil error reports nothing and returns ExitOK.
func (r *Reporter) Report(err error) int {
	if err == nil {
		return mdwerror.ExitOK
	}

	code := mdwerror.GetCode(err)
	fmt.Fprintln(r.out, r.headline.Render("Error: "+code.Message()))

	if r.verbose {
		fmt.Fprintln(r.out, r.cause.Render("  "+err.Error()))
		r.logger.LogError(err)
	}

	return code.ExitStatus()
}

// Fail reports err and terminates the process. Reporting is terminal:
// Fail does not return unless the configured exit function does.
func (r *Reporter) Fail(err error) {
	r.exit(r.Report(err))
}

// Exit terminates with the status of err, or ExitOK for nil
func (r *Reporter) Exit(err error) {
	if err == nil {
		r.exit(mdwerror.ExitOK)
		return
	}
	r.Fail(err)
}
