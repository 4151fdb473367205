// File: interface.go
// Title: IPPcode24 Registry Types
// Description: Argument kinds, instruction signatures and the lookup
//              interface the parser depends on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package registry

import (
	mdwlog "github.com/msto63/ippcode/foundation/core/log"
)

// Options configures registry behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Kind is the argument kind an instruction expects at one position
type Kind int

const (
	// KindVar expects a variable reference such as GF@counter
	KindVar Kind = iota

	// KindSymb expects a variable reference or a constant
	KindSymb

	// KindLabel expects a bare label name
	KindLabel

	// KindType expects a type keyword
	KindType
)

// String returns the grammar name of the kind
func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindSymb:
		return "symb"
	case KindLabel:
		return "label"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}

// Signature describes one entry of the instruction table
type Signature struct {
	Name   string // Upper-case instruction name
	Args   []Kind // Expected argument kinds in positional order
	Header bool   // Marks the header pseudo entry
}

// Arity returns the number of arguments the instruction requires
func (s Signature) Arity() int {
	return len(s.Args)
}

// Interface is the read-only view of the registry used by the parser
type Interface interface {
	// Lookup finds the signature of an instruction, ignoring letter case.
	// The header pseudo entry is never returned.
	Lookup(name string) (Signature, bool)

	// Header returns the header pseudo entry
	Header() Signature

	// IsHeader reports whether text is the header marker, ignoring case
	IsHeader(text string) bool

	// Names returns all instruction names in sorted order
	Names() []string

	// Len returns the number of instructions, without the header entry
	Len() int
}
