// File: emit_test.go
// Title: Emitter Tests
// Description: Tests for format selection, the canonical XML layout, the
//              YAML mapping, the table listing and write failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial tests

package emit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
)

func sampleProgram() *mdwast.Program {
	prog := mdwast.NewProgram()
	prog.Append("DEFVAR", []mdwast.Argument{
		{Type: mdwast.ArgTypeVar, Value: "GF@x"},
	}, mdwast.Position{Line: 2})
	prog.Append("MOVE", []mdwast.Argument{
		{Type: mdwast.ArgTypeVar, Value: "GF@x"},
		{Type: mdwast.ArgTypeInt, Value: "5"},
	}, mdwast.Position{Line: 3})
	return prog
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"xml", "xml", "xml", false},
		{"yaml upper case", "YAML", "yaml", false},
		{"table with spaces", " table ", "table", false},
		{"unknown", "json", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emitter, err := ForFormat(tt.format, DefaultOptions())
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeParameter) {
					t.Fatalf("ForFormat(%q) error = %v, want PARAMETER", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForFormat(%q) unexpected error: %v", tt.format, err)
			}
			if emitter.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", emitter.Name(), tt.want)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "table,xml,yaml" {
		t.Errorf("Formats() = %q", got)
	}
}

func TestXMLEmitter_Emit(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXMLEmitter(DefaultOptions()).Emit(&buf, sampleProgram()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24">
    <instruction order="1" opcode="DEFVAR">
        <arg1 type="var">GF@x</arg1>
    </instruction>
    <instruction order="2" opcode="MOVE">
        <arg1 type="var">GF@x</arg1>
        <arg2 type="int">5</arg2>
    </instruction>
</program>
`
	if buf.String() != want {
		t.Errorf("Emit() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestXMLEmitter_EmptyProgram(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXMLEmitter(DefaultOptions()).Emit(&buf, mdwast.NewProgram()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	if !strings.Contains(buf.String(), `<program language="IPPcode24"></program>`) {
		t.Errorf("Emit() = %q", buf.String())
	}
}

func TestXMLEmitter_EscapesText(t *testing.T) {
	prog := mdwast.NewProgram()
	prog.Append("WRITE", []mdwast.Argument{
		{Type: mdwast.ArgTypeString, Value: "a<b&c>d"},
	}, mdwast.Position{Line: 2})

	var buf bytes.Buffer
	if err := NewXMLEmitter(Options{}).Emit(&buf, prog); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	if !strings.Contains(buf.String(), `<arg1 type="string">a&lt;b&amp;c&gt;d</arg1>`) {
		t.Errorf("Emit() = %q", buf.String())
	}
}

func TestXMLEmitter_CompactWithoutIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXMLEmitter(Options{Indent: 0}).Emit(&buf, sampleProgram()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("compact output has %d lines, want 2:\n%s", len(lines), buf.String())
	}
}

func TestYAMLEmitter_Emit(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLEmitter(Options{Indent: 2}).Emit(&buf, sampleProgram()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	var doc yamlProgram
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}

	if doc.Language != mdwast.LanguageTag {
		t.Errorf("language = %q", doc.Language)
	}
	if len(doc.Instructions) != 2 {
		t.Fatalf("instructions = %d, want 2", len(doc.Instructions))
	}
	move := doc.Instructions[1]
	if move.Order != 2 || move.Opcode != "MOVE" || len(move.Args) != 2 {
		t.Errorf("second instruction = %+v", move)
	}
	if got := move.Args[1]; got.Position != 2 || got.Type != "int" || got.Value != "5" {
		t.Errorf("MOVE arg2 = %+v", got)
	}
}

func TestTableEmitter_Emit(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableEmitter(DefaultOptions()).Emit(&buf, sampleProgram()); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(strings.ToLower(out), "ippcode24 (2 instructions)") {
		t.Errorf("table output missing title:\n%s", out)
	}
	for _, want := range []string{"ORDER", "DEFVAR", "MOVE", "arg2", "GF@x"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestEmit_WriteFailure(t *testing.T) {
	for _, name := range Formats() {
		t.Run(name, func(t *testing.T) {
			emitter, err := ForFormat(name, DefaultOptions())
			if err != nil {
				t.Fatalf("ForFormat(%q) error: %v", name, err)
			}

			err = emitter.Emit(failingWriter{}, sampleProgram())
			if !mdwerror.HasCode(err, mdwerror.CodeOutputAccess) {
				t.Errorf("Emit() error = %v, want OUTPUT_ACCESS", err)
			}
		})
	}
}

func TestEmit_NilProgram(t *testing.T) {
	for _, name := range Formats() {
		emitter, _ := ForFormat(name, DefaultOptions())
		if err := emitter.Emit(&bytes.Buffer{}, nil); !mdwerror.HasCode(err, mdwerror.CodeInternal) {
			t.Errorf("%s: Emit(nil) error = %v, want INTERNAL", name, err)
		}
	}
}
