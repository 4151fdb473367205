// File: classifier.go
// Title: IPPcode24 Argument Classifier
// Description: Resolves an argument token against the kind its instruction
//              expects and extracts the literal text. Symbols try their
//              alternatives in a fixed order and the first match wins.
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
	"regexp"
	"strings"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
	mdwregistry "github.com/msto63/ippcode/foundation/ippcode/registry"
)

const identifier = `[A-Za-z_\-$&%*!?][A-Za-z0-9_\-$&%*!?]*`

var (
	variablePattern = regexp.MustCompile(`^(GF|LF|TF)@` + identifier + `$`)
	labelPattern    = regexp.MustCompile(`^` + identifier + `$`)
	intPattern      = regexp.MustCompile(`^int@([+-]?[0-9]+|0[xX][0-9a-fA-F]+|0[0-7]+)$`)
	boolPattern     = regexp.MustCompile(`^bool@(true|false)$`)
	nilPattern      = regexp.MustCompile(`^nil@nil$`)
	stringPattern   = regexp.MustCompile(`^string@([^\\\s#]|\\[0-9]{3})*$`)
)

// typeKeywords are the operands accepted where a type is expected.
// Matching is case-sensitive.
var typeKeywords = map[string]bool{
	"int":    true,
	"string": true,
	"bool":   true,
}

// matcher is one alternative of a symbol
type matcher struct {
	argType mdwast.ArgType
	pattern *regexp.Regexp
	prefix  bool // literal is the text after the first '@'
}

// symbolMatchers in priority order
var symbolMatchers = []matcher{
	{mdwast.ArgTypeVar, variablePattern, false},
	{mdwast.ArgTypeInt, intPattern, true},
	{mdwast.ArgTypeBool, boolPattern, true},
	{mdwast.ArgTypeNil, nilPattern, true},
	{mdwast.ArgTypeString, stringPattern, true},
}

func (m matcher) match(token string) (string, bool) {
	if !m.pattern.MatchString(token) {
		return "", false
	}
	if m.prefix {
		return literalOf(token), true
	}
	return token, true
}

// Classify resolves token against the expected kind. It returns the
// resolved argument type and the literal, or a SYNTAX error.
func Classify(token string, expected mdwregistry.Kind) (mdwast.ArgType, string, error) {
	switch expected {
	case mdwregistry.KindVar:
		if variablePattern.MatchString(token) {
			return mdwast.ArgTypeVar, token, nil
		}

	case mdwregistry.KindLabel:
		if labelPattern.MatchString(token) {
			return mdwast.ArgTypeLabel, token, nil
		}

	case mdwregistry.KindType:
		if typeKeywords[token] {
			return mdwast.ArgTypeType, token, nil
		}

	case mdwregistry.KindSymb:
		for _, m := range symbolMatchers {
			if literal, ok := m.match(token); ok {
				return m.argType, literal, nil
			}
		}

	default:
		return 0, "", mdwerror.New(fmt.Sprintf("unsupported argument kind %d", int(expected))).
			WithCode(mdwerror.CodeInternal).
			WithOperation("parser.Classify")
	}

	return 0, "", mdwerror.New(fmt.Sprintf("malformed %s operand %q", expected, token)).
		WithCode(mdwerror.CodeSyntax).
		WithOperation("parser.Classify").
		WithDetail("token", token).
		WithDetail("expected", expected.String())
}

// literalOf returns the text after the first '@' of token
func literalOf(token string) string {
	_, literal, _ := strings.Cut(token, "@")
	return literal
}
