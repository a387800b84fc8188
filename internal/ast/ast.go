// Package ast defines the abstract syntax tree produced by the parser and
// walked by the interpreter. SBML has no static type system, so — unlike a
// statically-checked language's AST — nodes carry no type annotations; every
// typing decision is made at evaluation time (spec.md §4.3).
package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pchan37/glowing-engine/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Block is a brace-delimited ordered sequence of statements. A program is
// exactly one Block (spec.md §3); blocks introduce no new scope.
type Block struct {
	Token      lexer.Token // the '{' token
	Statements []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range b.Statements {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// Identifier is a reference to a variable in the symbol table.
type Identifier struct {
	Token lexer.Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// BooleanLiteral is a `True`/`False` literal.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }

// IntegerLiteral is an `[0-9]+` literal.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return strconv.FormatInt(il.Value, 10) }

// RealLiteral is a decimal literal with a mandatory dot (spec.md §4.1).
type RealLiteral struct {
	Token lexer.Token
	Value float64
}

func (rl *RealLiteral) expressionNode()      {}
func (rl *RealLiteral) TokenLiteral() string { return rl.Token.Literal }
func (rl *RealLiteral) String() string       { return rl.Token.Literal }

// StringLiteral is a quoted string literal with delimiters already stripped
// and escapes left unprocessed (spec.md §4.1).
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }

// CollectionKind distinguishes list literals from tuple literals.
type CollectionKind int

const (
	ListKind CollectionKind = iota
	TupleKind
)

// CollectionLiteral is a list (`[...]`) or tuple (`(...)`) literal
// (spec.md §4.2 "Tuple literal disambiguation").
type CollectionLiteral struct {
	Token lexer.Token // the opening bracket/paren token
	Kind  CollectionKind
	Items []Expression
}

func (cl *CollectionLiteral) expressionNode()      {}
func (cl *CollectionLiteral) TokenLiteral() string { return cl.Token.Literal }
func (cl *CollectionLiteral) String() string {
	var open, close string
	if cl.Kind == TupleKind {
		open, close = "(", ")"
	} else {
		open, close = "[", "]"
	}
	parts := make([]string, len(cl.Items))
	for i, item := range cl.Items {
		parts[i] = item.String()
	}
	return open + strings.Join(parts, ", ") + close
}

// BinaryExpression applies a two-operand operator (spec.md §4.3.1).
// Operator is the literal token text: one of
// orelse andalso < <= > >= == <> :: in + - * / div mod **.
type BinaryExpression struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

// UnaryExpression applies a one-operand prefix operator: `not` or unary `-`.
type UnaryExpression struct {
	Token    lexer.Token
	Operator string
	Right    Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) String() string {
	return "(" + ue.Operator + ue.Right.String() + ")"
}

// IndexExpression is a postfix list/string index `target[index]`
// (spec.md §4.2 IDX production).
type IndexExpression struct {
	Token  lexer.Token // the '[' token
	Target Expression
	Index  Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	return ie.Target.String() + "[" + ie.Index.String() + "]"
}

// TupleIndexExpression is the prefix `#k tuple` form. Spec.md §4.2's TIDX
// production requires k to be a literal INTEGER token, not a general
// sub-expression, so Index is stored as a parsed int64 rather than an
// Expression.
type TupleIndexExpression struct {
	Token lexer.Token // the '#' token
	Index int64
	Tuple Expression
}

func (te *TupleIndexExpression) expressionNode()      {}
func (te *TupleIndexExpression) TokenLiteral() string { return te.Token.Literal }
func (te *TupleIndexExpression) String() string {
	return "#" + strconv.FormatInt(te.Index, 10) + " " + te.Tuple.String()
}
