// File: yaml.go
// Title: YAML Emitter
// Description: Writes a program tree as a YAML document.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package emit

import (
	"io"

	"gopkg.in/yaml.v3"

	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
)

type yamlProgram struct {
	Language     string            `yaml:"language"`
	Instructions []yamlInstruction `yaml:"instructions"`
}

type yamlInstruction struct {
	Order  int       `yaml:"order"`
	Opcode string    `yaml:"opcode"`
	Args   []yamlArg `yaml:"args"`
}

type yamlArg struct {
	Position int    `yaml:"position"`
	Type     string `yaml:"type"`
	Value    string `yaml:"value"`
}

// YAMLEmitter writes programs as YAML documents
type YAMLEmitter struct {
	indent int
}

// NewYAMLEmitter creates a YAML emitter
func NewYAMLEmitter(opts Options) *YAMLEmitter {
	return &YAMLEmitter{indent: opts.Indent}
}

// Name returns the format name
func (e *YAMLEmitter) Name() string {
	return "yaml"
}

// Emit writes the program as one YAML document
func (e *YAMLEmitter) Emit(w io.Writer, prog *mdwast.Program) error {
	if prog == nil {
		return nilProgramError(e.Name())
	}

	doc := yamlProgram{
		Language:     prog.Language,
		Instructions: make([]yamlInstruction, 0, len(prog.Instructions)),
	}
	for _, inst := range prog.Instructions {
		yi := yamlInstruction{
			Order:  inst.Order,
			Opcode: inst.Opcode,
			Args:   make([]yamlArg, 0, len(inst.Args)),
		}
		for _, arg := range inst.Args {
			yi.Args = append(yi.Args, yamlArg{
				Position: arg.Index,
				Type:     arg.Type.String(),
				Value:    arg.Value,
			})
		}
		doc.Instructions = append(doc.Instructions, yi)
	}

	encoder := yaml.NewEncoder(w)
	if e.indent > 0 {
		encoder.SetIndent(e.indent)
	}
	if err := encoder.Encode(doc); err != nil {
		return outputError(err, e.Name())
	}
	if err := encoder.Close(); err != nil {
		return outputError(err, e.Name())
	}
	return nil
}
