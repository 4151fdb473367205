// File: nodes.go
// Title: IPPcode24 Program Tree Nodes
// Description: Defines the node types of the program tree together with
//              their string forms and invariant checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial node definitions

package ast

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwstringx "github.com/msto63/ippcode/foundation/utils/stringx"
)

// LanguageTag identifies the source language on the program root
const LanguageTag = "IPPcode24"

// Node represents the base interface for all tree nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate checks the invariants of the node and its children
	Validate() error
}

// Position represents a position in the source text
type Position struct {
	Line int // Physical line number (1-based), 0 if unknown
}

// ArgType is the resolved kind of a classified argument
type ArgType int

const (
	ArgTypeVar ArgType = iota
	ArgTypeInt
	ArgTypeBool
	ArgTypeNil
	ArgTypeString
	ArgTypeLabel
	ArgTypeType
)

// String returns the type tag used in serialized trees
func (t ArgType) String() string {
	switch t {
	case ArgTypeVar:
		return "var"
	case ArgTypeInt:
		return "int"
	case ArgTypeBool:
		return "bool"
	case ArgTypeNil:
		return "nil"
	case ArgTypeString:
		return "string"
	case ArgTypeLabel:
		return "label"
	case ArgTypeType:
		return "type"
	default:
		return "unknown"
	}
}

// IsValid reports whether t is one of the resolved kinds
func (t ArgType) IsValid() bool {
	return t >= ArgTypeVar && t <= ArgTypeType
}

// IsConstant reports whether t is a constant symbol kind
func (t ArgType) IsConstant() bool {
	switch t {
	case ArgTypeInt, ArgTypeBool, ArgTypeNil, ArgTypeString:
		return true
	default:
		return false
	}
}

// Argument is one classified instruction argument
type Argument struct {
	Index int      // Position among the instruction's arguments (1-based)
	Type  ArgType  // Resolved kind
	Value string   // Literal text extracted from the token
	Pos   Position // Source position
}

// Instruction is one analyzed statement
type Instruction struct {
	Order  int        // Rank among the statements after the header (1-based)
	Opcode string     // Upper-case instruction name
	Args   []Argument // Arguments in positional order
	Pos    Position   // Source position
}

// Program is the root of the tree
type Program struct {
	Language     string
	Instructions []*Instruction
}

// NewProgram creates an empty program tagged with the language name
func NewProgram() *Program {
	return &Program{
		Language:     LanguageTag,
		Instructions: make([]*Instruction, 0),
	}
}

// Append adds an instruction with the next order number and returns it.
// Argument indices are assigned from their slice position.
func (p *Program) Append(opcode string, args []Argument, pos Position) *Instruction {
	inst := &Instruction{
		Order:  len(p.Instructions) + 1,
		Opcode: opcode,
		Args:   make([]Argument, len(args)),
		Pos:    pos,
	}
	for i, arg := range args {
		arg.Index = i + 1
		if arg.Pos.Line == 0 {
			arg.Pos = pos
		}
		inst.Args[i] = arg
	}

	p.Instructions = append(p.Instructions, inst)
	return inst
}

// Len returns the number of instructions
func (p *Program) Len() int {
	return len(p.Instructions)
}

// Implementation of Node interface for Program

func (p *Program) String() string {
	lines := make([]string, 0, len(p.Instructions)+1)
	lines = append(lines, "."+p.Language)
	for _, inst := range p.Instructions {
		lines = append(lines, inst.String())
	}
	return strings.Join(lines, "\n")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	return Position{Line: 1}
}

func (p *Program) Validate() error {
	if p.Language != LanguageTag {
		return invalid("program", fmt.Sprintf("language tag %q, want %q", p.Language, LanguageTag))
	}

	for i, inst := range p.Instructions {
		if inst == nil {
			return invalid("program", fmt.Sprintf("instruction %d is nil", i+1))
		}
		if inst.Order != i+1 {
			return invalid("program", fmt.Sprintf("instruction %d has order %d", i+1, inst.Order)).
				WithDetail("line", inst.Pos.Line)
		}
		if err := inst.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Implementation of Node interface for Instruction

func (i *Instruction) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, i.Opcode)
	for _, arg := range i.Args {
		parts = append(parts, arg.String())
	}
	return strings.Join(parts, " ")
}

func (i *Instruction) Accept(visitor Visitor) interface{} {
	return visitor.VisitInstruction(i)
}

func (i *Instruction) Position() Position {
	return i.Pos
}

func (i *Instruction) Validate() error {
	if mdwstringx.IsBlank(i.Opcode) {
		return invalid("instruction", fmt.Sprintf("instruction %d has no opcode", i.Order))
	}
	if i.Opcode != strings.ToUpper(i.Opcode) {
		return invalid("instruction", fmt.Sprintf("opcode %q is not upper case", i.Opcode))
	}

	for k := range i.Args {
		arg := &i.Args[k]
		if arg.Index != k+1 {
			return invalid("instruction", fmt.Sprintf("%s argument %d has position %d", i.Opcode, k+1, arg.Index)).
				WithDetail("line", i.Pos.Line)
		}
		if err := arg.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Tag returns the element name of the argument: arg1, arg2, ...
func (a *Argument) Tag() string {
	return fmt.Sprintf("arg%d", a.Index)
}

// Implementation of Node interface for Argument

// String renders the argument in source form
func (a *Argument) String() string {
	switch a.Type {
	case ArgTypeVar, ArgTypeLabel, ArgTypeType:
		return a.Value
	default:
		return a.Type.String() + "@" + a.Value
	}
}

func (a *Argument) Accept(visitor Visitor) interface{} {
	return visitor.VisitArgument(a)
}

func (a *Argument) Position() Position {
	return a.Pos
}

func (a *Argument) Validate() error {
	if !a.Type.IsValid() {
		return invalid("argument", fmt.Sprintf("argument %d has unresolved type %d", a.Index, int(a.Type)))
	}
	return nil
}

func invalid(node, message string) *mdwerror.Error {
	return mdwerror.New("invalid program tree: "+message).
		WithCode(mdwerror.CodeInternal).
		WithOperation("ast.Validate").
		WithDetail("node", node)
}
