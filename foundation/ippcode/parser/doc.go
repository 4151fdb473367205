// File: doc.go
// Title: IPPcode24 Parser Package Documentation
// Description: Lexical and syntactic analysis of IPPcode24 source text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation

/*
Package parser turns IPPcode24 source text into a program tree.

Analysis runs in three steps:

  - Normalize strips comments and blank lines and returns the remaining
    statements in source order.
  - The parser checks the header, looks every opcode up in the registry,
    checks the argument count and classifies each argument.
  - Classify resolves one token against the argument kind expected at its
    position and extracts the literal.

The first violation ends the analysis. Errors are *mdwerror.Error values
with the codes HEADER, UNKNOWN_OPCODE or SYNTAX and details naming the
source line, opcode, argument position and token:

	p := parser.New(parser.Options{Logger: logger})
	prog, err := p.Parse(source)
	if err != nil {
		os.Exit(mdwerror.GetCode(err).ExitStatus())
	}
*/
package parser
