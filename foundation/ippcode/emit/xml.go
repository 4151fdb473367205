// File: xml.go
// Title: XML Emitter
// Description: Writes the canonical XML form of a program tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package emit

import (
	"encoding/xml"
	"io"
	"strings"

	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
)

type xmlProgram struct {
	XMLName      xml.Name         `xml:"program"`
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	Order  int      `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg
}

// xmlArg takes its element name (arg1, arg2, ...) from XMLName
type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

// XMLEmitter writes programs as XML documents
type XMLEmitter struct {
	indent string
}

// NewXMLEmitter creates an XML emitter
func NewXMLEmitter(opts Options) *XMLEmitter {
	return &XMLEmitter{indent: strings.Repeat(" ", max(opts.Indent, 0))}
}

// Name returns the format name
func (e *XMLEmitter) Name() string {
	return "xml"
}

// Emit writes the XML declaration followed by the program element
func (e *XMLEmitter) Emit(w io.Writer, prog *mdwast.Program) error {
	if prog == nil {
		return nilProgramError(e.Name())
	}

	data, err := xml.MarshalIndent(toXML(prog), "", e.indent)
	if err != nil {
		return outputError(err, e.Name())
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return outputError(err, e.Name())
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return outputError(err, e.Name())
	}
	return nil
}

func toXML(prog *mdwast.Program) xmlProgram {
	out := xmlProgram{
		Language:     prog.Language,
		Instructions: make([]xmlInstruction, 0, len(prog.Instructions)),
	}

	for _, inst := range prog.Instructions {
		xi := xmlInstruction{
			Order:  inst.Order,
			Opcode: inst.Opcode,
			Args:   make([]xmlArg, 0, len(inst.Args)),
		}
		for k := range inst.Args {
			arg := &inst.Args[k]
			xi.Args = append(xi.Args, xmlArg{
				XMLName: xml.Name{Local: arg.Tag()},
				Type:    arg.Type.String(),
				Value:   arg.Value,
			})
		}
		out.Instructions = append(out.Instructions, xi)
	}

	return out
}
