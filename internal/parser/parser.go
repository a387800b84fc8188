// Package parser implements a recursive-descent parser over SBML's
// precedence-stratified grammar (spec.md §4.2). Each precedence level gets
// its own method, named after the grammar production it implements
// (parseOr, parseAnd, ... parsePrimary) — the same structure the reference
// grammar itself uses (see spec.md §4.2's BNF, and sbml_parser.py's
// p_or/p_and/... rules in the original implementation this was distilled
// from), walked with a classic curToken/peekToken cursor in the teacher's
// style.
package parser

import (
	"fmt"

	"github.com/pchan37/glowing-engine/internal/ast"
	"github.com/pchan37/glowing-engine/internal/errors"
	"github.com/pchan37/glowing-engine/internal/lexer"
)

// Parser consumes a token stream from a Lexer and produces an *ast.Block.
// On the first grammar violation it panics with a *errors.SyntaxError, which
// Parse recovers into a plain error return — this keeps the recursive
// descent itself free of error-propagation plumbing, matching the
// fail-fast, no-partial-result shape spec.md §7 requires (there is nothing
// useful to return once a syntax error is detected).
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser reading from l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse lexes and parses a complete SBML program (spec.md §4.2 START) and
// returns its AST, or a *errors.SyntaxError.
func Parse(source string) (block *ast.Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			if syntaxErr, ok := r.(*errors.SyntaxError); ok {
				err = syntaxErr
				return
			}
			panic(r)
		}
	}()

	p := New(lexer.New(source))
	block = p.parseStart()
	return block, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past the expected token type, or raises a syntax
// error. Mirrors the teacher's expectPeek pattern.
func (p *Parser) expectPeek(t lexer.TokenType) lexer.Token {
	if !p.peekTokenIs(t) {
		p.fail("expected %s, got %s", t, p.peekToken.Type)
	}
	p.nextToken()
	return p.curToken
}

func (p *Parser) fail(format string, args ...any) {
	panic(errors.NewSyntaxError(fmt.Sprintf(format, args...)))
}

// parseStart implements START := BLOCK: a program is exactly one block,
// followed by EOF.
func (p *Parser) parseStart() *ast.Block {
	if !p.curTokenIs(lexer.LBRACE) {
		p.fail("expected '{' to start program, got %s", p.curToken.Type)
	}
	block := p.parseBlock()
	if !p.curTokenIs(lexer.EOF) {
		p.fail("unexpected token %s after program", p.curToken.Type)
	}
	return block
}

// parseBlock implements BLOCK := '{' '}' | '{' STATEMENT+ '}'. Entry:
// curToken is '{'. Exit: curToken is the token after the matching '}'.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken}
	p.nextToken() // consume '{'

	for !p.curTokenIs(lexer.RBRACE) {
		if p.curTokenIs(lexer.EOF) {
			p.fail("unexpected end of input inside block")
		}
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.nextToken() // consume '}'

	return block
}

// parseStatement implements the STATEMENT production.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.PRINT:
		return p.parsePrintStatement()
	default:
		return p.parseExpressionOrAssignStatement()
	}
}
