// File: registry.go
// Title: IPPcode24 Instruction Registry
// Description: Builds the immutable instruction table once and answers
//              case-insensitive lookups against it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with the full IPPcode24 instruction set

package registry

import (
	"sort"
	"strings"
	"sync"

	mdwlog "github.com/msto63/ippcode/foundation/core/log"
)

// HeaderMarker is the required first statement of every program
const HeaderMarker = ".IPPCODE24"

// Argument layouts shared by several instructions
var (
	shapeNone          = []Kind{}
	shapeVar           = []Kind{KindVar}
	shapeSymb          = []Kind{KindSymb}
	shapeLabel         = []Kind{KindLabel}
	shapeVarSymb       = []Kind{KindVar, KindSymb}
	shapeVarType       = []Kind{KindVar, KindType}
	shapeVarSymbSymb   = []Kind{KindVar, KindSymb, KindSymb}
	shapeLabelSymbSymb = []Kind{KindLabel, KindSymb, KindSymb}
)

// instructionSet groups the instructions by argument layout
var instructionSet = []struct {
	shape []Kind
	names []string
}{
	{shapeNone, []string{"CREATEFRAME", "PUSHFRAME", "POPFRAME", "RETURN", "BREAK"}},
	{shapeVar, []string{"DEFVAR", "POPS"}},
	{shapeSymb, []string{"PUSHS", "WRITE", "EXIT", "DPRINT"}},
	{shapeLabel, []string{"CALL", "LABEL", "JUMP"}},
	{shapeVarSymb, []string{"MOVE", "INT2CHAR", "STRLEN", "TYPE", "NOT"}},
	{shapeVarType, []string{"READ"}},
	{shapeVarSymbSymb, []string{
		"ADD", "SUB", "MUL", "IDIV",
		"LT", "GT", "EQ",
		"AND", "OR",
		"STRI2INT", "CONCAT", "GETCHAR", "SETCHAR",
	}},
	{shapeLabelSymbSymb, []string{"JUMPIFEQ", "JUMPIFNEQ"}},
}

// Registry is the immutable IPPcode24 instruction table
type Registry struct {
	instructions map[string]Signature
	header       Signature
	names        []string
}

var _ Interface = (*Registry)(nil)

// New builds the instruction table
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	r := &Registry{
		instructions: make(map[string]Signature),
		header: Signature{
			Name:   HeaderMarker,
			Args:   shapeNone,
			Header: true,
		},
	}

	for _, group := range instructionSet {
		for _, name := range group.names {
			r.instructions[name] = Signature{Name: name, Args: group.shape}
			r.names = append(r.names, name)
		}
	}
	sort.Strings(r.names)

	opts.Logger.WithField("component", "ippcode-registry").Debug("instruction registry initialized", mdwlog.Fields{
		"instructionCount": len(r.instructions),
		"header":           HeaderMarker,
	})

	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns a process-wide registry built on first use
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New(Options{Logger: mdwlog.NewNop()})
	})
	return defaultRegistry
}

// Lookup finds the signature of an instruction, ignoring letter case.
// Unknown names and the header marker report false.
func (r *Registry) Lookup(name string) (Signature, bool) {
	sig, ok := r.instructions[strings.ToUpper(name)]
	if !ok {
		return Signature{}, false
	}
	return sig.clone(), true
}

// Header returns the header pseudo entry
func (r *Registry) Header() Signature {
	return r.header
}

// IsHeader reports whether text is the header marker, ignoring case and
// surrounding whitespace
func (r *Registry) IsHeader(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), r.header.Name)
}

// Names returns all instruction names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of instructions, without the header entry
func (r *Registry) Len() int {
	return len(r.instructions)
}

// clone detaches Args from the shared layout slices
func (s Signature) clone() Signature {
	args := make([]Kind, len(s.Args))
	copy(args, s.Args)
	s.Args = args
	return s
}
