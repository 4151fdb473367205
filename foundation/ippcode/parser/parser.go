// File: parser.go
// Title: IPPcode24 Program Builder
// Description: Drives the normalizer and classifier over the statements of
//              a source text. Enforces the header rule, opcode lookup and
//              argument counts and assembles the program tree. The first
//              violation aborts the pass without a partial tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwlog "github.com/msto63/ippcode/foundation/core/log"
	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
	mdwregistry "github.com/msto63/ippcode/foundation/ippcode/registry"
	mdwstringx "github.com/msto63/ippcode/foundation/utils/stringx"
)

// Options configures parser behavior
type Options struct {
	Logger   *mdwlog.Logger
	Registry mdwregistry.Interface
}

// Parser builds program trees from IPPcode24 source text
type Parser struct {
	logger   *mdwlog.Logger
	registry mdwregistry.Interface
}

type state int

const (
	stateExpectHeader state = iota
	stateExpectInstruction
)

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Registry == nil {
		opts.Registry = mdwregistry.Default()
	}

	return &Parser{
		logger:   opts.Logger.WithField("component", "ippcode-parser"),
		registry: opts.Registry,
	}
}

// Parse analyzes source with a parser using the default logger and registry
func Parse(source string) (*mdwast.Program, error) {
	return New(Options{}).Parse(source)
}

// Parse analyzes source and returns its program tree
func (p *Parser) Parse(source string) (*mdwast.Program, error) {
	statements := Normalize(source)

	timer := p.logger.StartTimer("parse").
		WithField("bytes", len(source)).
		WithField("statements", len(statements))

	prog, err := p.build(statements)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	if err := prog.Validate(); err != nil {
		wrapped := mdwerror.Wrap(err, "parser produced an invalid tree").
			WithCode(mdwerror.CodeInternal).
			WithOperation("parser.Parse")
		timer.StopWithError(wrapped)
		return nil, wrapped
	}

	if p.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		stats := mdwast.NewStatsVisitor()
		mdwast.Walk(stats, prog)
		p.logger.Debug("program analyzed", mdwlog.Fields{
			"instructions": stats.Instructions,
			"arguments":    stats.Arguments,
			"opcodes":      strings.Join(stats.DistinctOpcodes(), ","),
		})
	}

	timer.Stop()
	return prog, nil
}

func (p *Parser) build(statements []Statement) (*mdwast.Program, error) {
	prog := mdwast.NewProgram()
	current := stateExpectHeader

	for _, stmt := range statements {
		switch current {
		case stateExpectHeader:
			if !p.registry.IsHeader(stmt.Text) {
				return nil, sourceError(mdwerror.CodeHeader, "missing or wrong header", stmt).
					WithDetail("expected", p.registry.Header().Name).
					WithDetail("text", strings.TrimSpace(stmt.Text))
			}
			current = stateExpectInstruction

		case stateExpectInstruction:
			opcode, args, err := p.parseInstruction(stmt)
			if err != nil {
				return nil, err
			}
			inst := prog.Append(opcode, args, mdwast.Position{Line: stmt.Line})

			p.logger.Debug("statement accepted", mdwlog.Fields{
				"order":  inst.Order,
				"opcode": inst.Opcode,
				"line":   stmt.Line,
			})
		}
	}

	if current == stateExpectHeader {
		return nil, mdwerror.NewWithCode(mdwerror.CodeHeader, "missing header: source has no statements").
			WithOperation("parser.Parse").
			WithDetail("expected", p.registry.Header().Name)
	}

	return prog, nil
}

// parseInstruction checks one statement after the header. The argument
// count is checked before any argument is classified.
func (p *Parser) parseInstruction(stmt Statement) (string, []mdwast.Argument, error) {
	tokens := stmt.Tokens()
	opcode := strings.ToUpper(tokens[0])

	if opcode == p.registry.Header().Name {
		return "", nil, sourceError(mdwerror.CodeSyntax, "header repeated after the first statement", stmt).
			WithDetail("opcode", opcode)
	}

	sig, ok := p.registry.Lookup(opcode)
	if !ok {
		return "", nil, sourceError(mdwerror.CodeUnknownOpcode, fmt.Sprintf("unknown opcode %q", tokens[0]), stmt).
			WithDetail("opcode", tokens[0])
	}

	operands := tokens[1:]
	if len(operands) != sig.Arity() {
		return "", nil, sourceError(mdwerror.CodeSyntax,
			fmt.Sprintf("%s takes %d operand(s), got %d", opcode, sig.Arity(), len(operands)), stmt).
			WithDetail("opcode", opcode).
			WithDetail("expected", sig.Arity()).
			WithDetail("actual", len(operands))
	}

	args := make([]mdwast.Argument, 0, len(operands))
	for i, kind := range sig.Args {
		argType, literal, err := Classify(operands[i], kind)
		if err != nil {
			return "", nil, mdwerror.Wrap(err, fmt.Sprintf("%s operand %d", opcode, i+1)).
				WithOperation("parser.Parse").
				WithDetail("line", stmt.Line).
				WithDetail("opcode", opcode).
				WithDetail("position", i+1)
		}

		p.logger.Trace("operand classified", mdwlog.Fields{
			"line":     stmt.Line,
			"position": i + 1,
			"type":     argType.String(),
			"literal":  mdwstringx.Truncate(literal, 40, "..."),
		})

		args = append(args, mdwast.Argument{
			Type:  argType,
			Value: literal,
			Pos:   mdwast.Position{Line: stmt.Line},
		})
	}

	return opcode, args, nil
}

func sourceError(code mdwerror.Code, message string, stmt Statement) *mdwerror.Error {
	return mdwerror.NewWithCode(code, message).
		WithOperation("parser.Parse").
		WithDetail("line", stmt.Line)
}
