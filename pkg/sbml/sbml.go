// Package sbml is the library facade over the lexer/parser/interp
// pipeline: a pure function from source text to captured output plus
// completion status, as spec.md §1 frames the interpreter ("a pure
// function (source: string, symtab: env) -> effects + completion").
package sbml

import (
	"bytes"

	"github.com/pchan37/glowing-engine/internal/ast"
	"github.com/pchan37/glowing-engine/internal/interp"
	"github.com/pchan37/glowing-engine/internal/lexer"
	"github.com/pchan37/glowing-engine/internal/parser"
)

// Run lexes, parses, and evaluates source, returning everything written by
// `print` statements and the first *errors.SyntaxError/*errors.SemanticError
// encountered, if any. A non-nil err means evaluation stopped at that point
// (spec.md §7: both error categories are fatal, with no partial recovery).
func Run(source string) (output string, err error) {
	program, err := parser.Parse(source)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	it := interp.New(&buf)
	if err := it.Run(program); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}

// Tokens lexes source to completion, stopping at the first unrecognized
// character. Exposed for interpreter tooling (cmd/sbml's --dump-tokens).
func Tokens(source string) ([]lexer.Token, error) {
	l := lexer.New(source)
	var tokens []lexer.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
		if tok.Type == lexer.ILLEGAL {
			break
		}
	}
	return tokens, nil
}

// Parse exposes the parser alone, for interpreter tooling (cmd/sbml's
// --dump-ast) and for tests that want the AST without running it.
func Parse(source string) (*ast.Block, error) {
	return parser.Parse(source)
}
