package parser

import (
	"github.com/pchan37/glowing-engine/internal/ast"
	"github.com/pchan37/glowing-engine/internal/lexer"
)

// parseIfStatement implements IF and IFELSE:
//
//	IFELSE := 'if' '(' OR ')' BLOCK 'else' BLOCK
//	IF     := 'if' '(' OR ')' BLOCK
func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	p.expectPeek(lexer.LPAREN)
	p.nextToken()
	stmt.Condition = p.parseOr()
	p.expectPeek(lexer.RPAREN)

	p.expectPeek(lexer.LBRACE)
	stmt.Consequence = p.parseBlock()

	if p.curTokenIs(lexer.ELSE) {
		p.expectPeek(lexer.LBRACE)
		stmt.Alternative = p.parseBlock()
	}

	return stmt
}

// parseWhileStatement implements WHILE := 'while' '(' OR ')' BLOCK.
func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	p.expectPeek(lexer.LPAREN)
	p.nextToken()
	stmt.Condition = p.parseOr()
	p.expectPeek(lexer.RPAREN)

	p.expectPeek(lexer.LBRACE)
	stmt.Body = p.parseBlock()

	return stmt
}

// parsePrintStatement implements PRINT := 'print' '(' OR ')' ';'.
func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}

	p.expectPeek(lexer.LPAREN)
	p.nextToken()
	stmt.Value = p.parseOr()
	p.expectPeek(lexer.RPAREN)
	p.expectPeek(lexer.SEMICOLON)
	p.nextToken()

	return stmt
}

// parseExpressionOrAssignStatement implements everything else STATEMENT can
// be: a bare `OR ';'` expression statement, or one of ASSIGN's three surface
// forms (spec.md §4.2):
//
//	ASSIGN := IDENT '=' OR ';'
//	        | IDENT '[' OR ']' '=' OR ';'
//	        | '[' ']' '[' OR ']' '=' OR ';'   (always a semantic error)
//
// All three, plus the chained-index form spec.md §4.2 calls out separately
// ("any other left-hand side... reached via the LIST_STR_INDEXING
// production"), fall out of the same move: parse one OR-level expression,
// then check whether '=' follows. If it does, the parsed expression is
// reinterpreted as an assignment target — a bare *ast.Identifier becomes the
// simple form, an *ast.IndexExpression (however deeply chained, e.g.
// `a[0][1]`) becomes the indexed form, and anything else is a syntax error,
// since the grammar admits no other assignable shape.
func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	token := p.curToken
	expr := p.parseOr()

	if p.peekTokenIs(lexer.ASSIGN) {
		assignToken := p.expectPeek(lexer.ASSIGN)
		p.nextToken()
		value := p.parseOr()
		p.expectPeek(lexer.SEMICOLON)
		p.nextToken()

		switch target := expr.(type) {
		case *ast.Identifier:
			return &ast.AssignStatement{Token: assignToken, Name: target, Value: value}
		case *ast.IndexExpression:
			return &ast.IndexAssignStatement{
				Token:  assignToken,
				Target: target.Target,
				Index:  target.Index,
				Value:  value,
			}
		default:
			p.fail("invalid assignment target")
			return nil
		}
	}

	p.expectPeek(lexer.SEMICOLON)
	p.nextToken()
	return &ast.ExpressionStatement{Token: token, Expression: expr}
}
