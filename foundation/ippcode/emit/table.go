// File: table.go
// Title: Table Emitter
// Description: Lists a program tree as a text table, one row per argument.
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

	"github.com/jedib0t/go-pretty/v6/table"

	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
)

// TableEmitter writes programs as a human-readable table
type TableEmitter struct {
	opts Options
}

// NewTableEmitter creates a table emitter
func NewTableEmitter(opts Options) *TableEmitter {
	return &TableEmitter{opts: opts}
}

// Name returns the format name
func (e *TableEmitter) Name() string {
	return "table"
}

// rowVisitor adds a row per instruction followed by a row per argument
type rowVisitor struct {
	mdwast.BaseVisitor
	writer table.Writer
}

func (rv *rowVisitor) VisitProgram(prog *mdwast.Program) interface{} {
	rv.writer.SetTitle(fmt.Sprintf("%s (%d instructions)", prog.Language, prog.Len()))
	return nil
}

func (rv *rowVisitor) VisitInstruction(inst *mdwast.Instruction) interface{} {
	rv.writer.AppendRow(table.Row{inst.Order, inst.Opcode, "", "", ""})
	return nil
}

func (rv *rowVisitor) VisitArgument(arg *mdwast.Argument) interface{} {
	rv.writer.AppendRow(table.Row{"", "", arg.Tag(), arg.Type.String(), arg.Value})
	return nil
}

// Emit renders the table and writes it to w
func (e *TableEmitter) Emit(w io.Writer, prog *mdwast.Program) error {
	if prog == nil {
		return nilProgramError(e.Name())
	}

	writer := table.NewWriter()
	writer.AppendHeader(table.Row{"Order", "Opcode", "Arg", "Type", "Value"})

	visitor := &rowVisitor{writer: writer}
	mdwast.Walk(visitor, prog)

	if _, err := io.WriteString(w, writer.Render()+"\n"); err != nil {
		return outputError(err, e.Name())
	}
	return nil
}
