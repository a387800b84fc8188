package parser

import (
	"github.com/pchan37/glowing-engine/internal/ast"
	"github.com/pchan37/glowing-engine/internal/lexer"
)

// advanceToOperator moves off the left operand's last token onto the
// (peeked) operator token, returns it, then advances once more onto the
// first token of the right operand. Every left-associative binary level
// below uses this to stay in the curToken=last-token-consumed convention.
func (p *Parser) advanceToOperator() lexer.Token {
	p.nextToken()
	tok := p.curToken
	p.nextToken()
	return tok
}

// parseOr implements OR := AND | OR 'orelse' AND (left associative).
func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.peekTokenIs(lexer.ORELSE) {
		tok := p.advanceToOperator()
		right := p.parseAnd()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

// parseAnd implements AND := NEGATION | AND 'andalso' NEGATION.
func (p *Parser) parseAnd() ast.Expression {
	left := p.parseNegation()
	for p.peekTokenIs(lexer.ANDALSO) {
		tok := p.advanceToOperator()
		right := p.parseNegation()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

// parseNegation implements NEGATION := COMPARISON | 'not' NEGATION.
func (p *Parser) parseNegation() ast.Expression {
	if p.curTokenIs(lexer.NOT) {
		tok := p.curToken
		p.nextToken()
		right := p.parseNegation()
		return &ast.UnaryExpression{Token: tok, Operator: "not", Right: right}
	}
	return p.parseComparison()
}

// parseComparison implements the six non-chaining comparison operators,
// each node taking exactly two operands, folded left-associatively
// (spec.md §4.2 "Comparisons are non-chaining ... parsed left-associatively
// ... by folding the binary operator across two operands only").
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseCons()
	for isComparisonOp(p.peekToken.Type) {
		tok := p.advanceToOperator()
		right := p.parseCons()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func isComparisonOp(t lexer.TokenType) bool {
	switch t {
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE, lexer.EQ, lexer.NE:
		return true
	default:
		return false
	}
}

// parseCons implements CONS := MEMBERSHIP | MEMBERSHIP '::' CONS
// (right associative).
func (p *Parser) parseCons() ast.Expression {
	left := p.parseMembership()
	if p.peekTokenIs(lexer.CONS) {
		tok := p.advanceToOperator()
		right := p.parseCons()
		return &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

// parseMembership implements MEMBERSHIP := ADD | MEMBERSHIP 'in' ADD.
func (p *Parser) parseMembership() ast.Expression {
	left := p.parseAdditive()
	for p.peekTokenIs(lexer.IN) {
		tok := p.advanceToOperator()
		right := p.parseAdditive()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

// parseAdditive implements ADD := MUL | ADD ('+'|'-') MUL.
func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.peekTokenIs(lexer.PLUS) || p.peekTokenIs(lexer.MINUS) {
		tok := p.advanceToOperator()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

// parseMultiplicative implements MUL := UNARY | MUL ('*'|'/'|'div'|'mod') UNARY.
func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for isMultiplicativeOp(p.peekToken.Type) {
		tok := p.advanceToOperator()
		right := p.parseUnary()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func isMultiplicativeOp(t lexer.TokenType) bool {
	switch t {
	case lexer.ASTERISK, lexer.SLASH, lexer.DIV, lexer.MOD:
		return true
	default:
		return false
	}
}

// parseUnary implements UNARY := EXPONENTIATION | '-' UNARY.
func (p *Parser) parseUnary() ast.Expression {
	if p.curTokenIs(lexer.MINUS) {
		tok := p.curToken
		p.nextToken()
		right := p.parseUnary()
		return &ast.UnaryExpression{Token: tok, Operator: "-", Right: right}
	}
	return p.parseExponent()
}

// parseExponent implements EXPONENTIATION := IDX | IDX '**' EXPONENTIATION
// (right associative).
func (p *Parser) parseExponent() ast.Expression {
	left := p.parseIndex()
	if p.peekTokenIs(lexer.EXPONENT) {
		tok := p.advanceToOperator()
		right := p.parseExponent()
		return &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

// parseIndex implements IDX := TIDX | IDX '[' OR ']', the postfix
// list/string index. Left-associative, so `a[0][1]` builds nested
// IndexExpressions.
func (p *Parser) parseIndex() ast.Expression {
	left := p.parseTupleIndex()
	for p.peekTokenIs(lexer.LBRACKET) {
		tok := p.advanceToOperator()
		index := p.parseOr()
		p.expectPeek(lexer.RBRACKET)
		left = &ast.IndexExpression{Token: tok, Target: left, Index: index}
	}
	return left
}

// parseTupleIndex implements TIDX := TL | '#' INTEGER TL. The index after
// '#' is a literal INTEGER token, not a general sub-expression — it binds
// tighter than any operator (spec.md §4.2).
func (p *Parser) parseTupleIndex() ast.Expression {
	if p.curTokenIs(lexer.HASH) {
		tok := p.curToken
		idxTok := p.expectPeek(lexer.INTEGER)
		idx, _ := idxTok.Value.(int64)
		p.nextToken()
		tuple := p.parseTupleOrList()
		return &ast.TupleIndexExpression{Token: tok, Index: idx, Tuple: tuple}
	}
	return p.parseTupleOrList()
}

// parseTupleOrList implements the TL production: parenthesized
// expressions/tuples, list literals, and bare primaries.
func (p *Parser) parseTupleOrList() ast.Expression {
	switch p.curToken.Type {
	case lexer.LPAREN:
		return p.parseParenOrTuple()
	case lexer.LBRACKET:
		return p.parseListLiteral()
	default:
		return p.parsePrimary()
	}
}

// parseParenOrTuple disambiguates `()`, `(e)`, `(e,)`, and `(e, e2, ...)`
// (spec.md §4.2 "Tuple literal disambiguation").
func (p *Parser) parseParenOrTuple() ast.Expression {
	openTok := p.curToken

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return &ast.CollectionLiteral{Token: openTok, Kind: ast.TupleKind}
	}

	p.nextToken()
	first := p.parseOr()

	if !p.peekTokenIs(lexer.COMMA) {
		p.expectPeek(lexer.RPAREN)
		return first
	}

	items := []ast.Expression{first}
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // ','
		if p.peekTokenIs(lexer.RPAREN) {
			break // trailing comma: "(e,)"
		}
		p.nextToken()
		items = append(items, p.parseOr())
	}
	p.expectPeek(lexer.RPAREN)
	return &ast.CollectionLiteral{Token: openTok, Kind: ast.TupleKind, Items: items}
}

// parseListLiteral implements `[]` and `[e, e2, ...]`. Unlike tuples, a
// list literal has no trailing-comma form (spec.md §4.2 LISTITEMS).
func (p *Parser) parseListLiteral() ast.Expression {
	openTok := p.curToken
	lit := &ast.CollectionLiteral{Token: openTok, Kind: ast.ListKind}

	if p.peekTokenIs(lexer.RBRACKET) {
		p.nextToken()
		return lit
	}

	p.nextToken()
	lit.Items = append(lit.Items, p.parseOr())
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		lit.Items = append(lit.Items, p.parseOr())
	}
	p.expectPeek(lexer.RBRACKET)
	return lit
}

// parsePrimary implements PRIMARY := BOOLEAN | INTEGER | REAL | STRING |
// IDENT (the `'(' OR ')'` alternative is handled by parseParenOrTuple
// before reaching here).
func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case lexer.BOOLEAN:
		value, _ := p.curToken.Value.(bool)
		return &ast.BooleanLiteral{Token: p.curToken, Value: value}
	case lexer.INTEGER:
		value, _ := p.curToken.Value.(int64)
		return &ast.IntegerLiteral{Token: p.curToken, Value: value}
	case lexer.REAL:
		value, _ := p.curToken.Value.(float64)
		return &ast.RealLiteral{Token: p.curToken, Value: value}
	case lexer.STRING:
		value, _ := p.curToken.Value.(string)
		return &ast.StringLiteral{Token: p.curToken, Value: value}
	case lexer.IDENT:
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	default:
		p.fail("unexpected token %s", p.curToken.Type)
		return nil
	}
}
