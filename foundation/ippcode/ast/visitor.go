// File: visitor.go
// Title: IPPcode24 Program Tree Visitor
// Description: Implements the visitor pattern for traversing program trees
//              and a statistics visitor used for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial visitor implementation

package ast

import (
	"sort"
)

// Visitor interface for traversing tree nodes using the visitor pattern
type Visitor interface {
	VisitProgram(prog *Program) interface{}
	VisitInstruction(inst *Instruction) interface{}
	VisitArgument(arg *Argument) interface{}
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(prog *Program) interface{} {
	return nil
}

func (BaseVisitor) VisitInstruction(inst *Instruction) interface{} {
	return nil
}

func (BaseVisitor) VisitArgument(arg *Argument) interface{} {
	return nil
}

// Walk visits prog, then every instruction in order and each of its
// arguments right after the instruction itself
func Walk(visitor Visitor, prog *Program) {
	if prog == nil {
		return
	}

	prog.Accept(visitor)
	for _, inst := range prog.Instructions {
		inst.Accept(visitor)
		for k := range inst.Args {
			inst.Args[k].Accept(visitor)
		}
	}
}

// StatsVisitor counts instructions, arguments and argument types
type StatsVisitor struct {
	BaseVisitor

	Instructions int
	Arguments    int
	Opcodes      map[string]int
	Types        map[ArgType]int
}

// NewStatsVisitor creates an empty statistics visitor
func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{
		Opcodes: make(map[string]int),
		Types:   make(map[ArgType]int),
	}
}

func (sv *StatsVisitor) VisitInstruction(inst *Instruction) interface{} {
	sv.Instructions++
	sv.Opcodes[inst.Opcode]++
	return nil
}

func (sv *StatsVisitor) VisitArgument(arg *Argument) interface{} {
	sv.Arguments++
	sv.Types[arg.Type]++
	return nil
}

// DistinctOpcodes returns the opcodes seen, sorted
func (sv *StatsVisitor) DistinctOpcodes() []string {
	opcodes := make([]string, 0, len(sv.Opcodes))
	for op := range sv.Opcodes {
		opcodes = append(opcodes, op)
	}
	sort.Strings(opcodes)
	return opcodes
}
