// File: normalizer.go
// Title: IPPcode24 Source Normalizer
// Description: Removes comments and blank lines from source text and keeps
//              the physical line number of every remaining statement.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"strings"

	mdwstringx "github.com/msto63/ippcode/foundation/utils/stringx"
)

// CommentMarker starts a comment running to the end of the line
const CommentMarker = "#"

// Statement is one non-blank, comment-free source line
type Statement struct {
	Index int    // Rank among the statements (1-based)
	Line  int    // Physical line number in the source (1-based)
	Text  string // Line content with the comment removed
}

// Tokens splits the statement at whitespace
func (s Statement) Tokens() []string {
	return strings.Fields(s.Text)
}

// Normalize returns the statements of source in their original order.
// Empty input yields no statements.
func Normalize(source string) []Statement {
	lines := mdwstringx.SplitLines(source)
	statements := make([]Statement, 0, len(lines))

	for i, line := range lines {
		text := mdwstringx.BeforeFirst(line, CommentMarker)
		if mdwstringx.IsBlank(text) {
			continue
		}

		statements = append(statements, Statement{
			Index: len(statements) + 1,
			Line:  i + 1,
			Text:  text,
		})
	}

	return statements
}
