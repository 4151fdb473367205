// File: emit.go
// Title: Emitter Interface and Registry
// Description: Defines the Emitter interface and selects an implementation
//              by format name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package emit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
)

// Emitter writes a program tree to w
type Emitter interface {
	Name() string
	Emit(w io.Writer, prog *mdwast.Program) error
}

// Options configures the emitters
type Options struct {
	Indent int // Spaces per nesting level
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{Indent: 4}
}

var constructors = map[string]func(Options) Emitter{
	"xml":   func(o Options) Emitter { return NewXMLEmitter(o) },
	"yaml":  func(o Options) Emitter { return NewYAMLEmitter(o) },
	"table": func(o Options) Emitter { return NewTableEmitter(o) },
}

// Formats returns the supported format names, sorted
func Formats() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the emitter for a format name, ignoring case
func ForFormat(name string, opts Options) (Emitter, error) {
	constructor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, mdwerror.New(fmt.Sprintf("unsupported output format %q", name)).
			WithCode(mdwerror.CodeParameter).
			WithOperation("emit.ForFormat").
			WithDetail("supported", strings.Join(Formats(), ", "))
	}
	return constructor(opts), nil
}

func outputError(err error, format string) error {
	return mdwerror.Wrap(err, "failed to write "+format+" output").
		WithCode(mdwerror.CodeOutputAccess).
		WithOperation("emit.Emit").
		WithDetail("format", format)
}

func nilProgramError(format string) error {
	return mdwerror.New("no program to emit").
		WithCode(mdwerror.CodeInternal).
		WithOperation("emit.Emit").
		WithDetail("format", format)
}
