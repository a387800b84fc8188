package ast

import "github.com/pchan37/glowing-engine/internal/lexer"

// ExpressionStatement wraps a bare `OR ';'` statement: an expression
// evaluated for its side effects (if any) with its value discarded
// (spec.md §4.2 STATEMENT production).
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ""
	}
	return es.Expression.String()
}

// PrintStatement is `print(expr);` (spec.md §4.3.4).
type PrintStatement struct {
	Token lexer.Token // the 'print' token
	Value Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) String() string       { return "print(" + ps.Value.String() + ")" }

// AssignStatement is the simple `ident = expr;` form. It always binds by
// name, never through evaluating a target expression.
type AssignStatement struct {
	Token lexer.Token // the '=' token
	Name  *Identifier
	Value Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) String() string {
	return as.Name.String() + " = " + as.Value.String()
}

// IndexAssignStatement covers both assignment surface forms that write
// through an index: `ident[i] = expr;` (Target is an *Identifier, looked up
// and rebound by name) and the chained-index form `expr[i] = expr2;`
// reached by parsing an arbitrary postfix index expression as the
// assignment target (Target is evaluated as a general expression and
// mutated in place — spec.md §4.2 "Assignment forms" / §4.3.4).
type IndexAssignStatement struct {
	Token  lexer.Token // the '=' token
	Target Expression
	Index  Expression
	Value  Expression
}

func (ias *IndexAssignStatement) statementNode()       {}
func (ias *IndexAssignStatement) TokenLiteral() string { return ias.Token.Literal }
func (ias *IndexAssignStatement) String() string {
	return ias.Target.String() + "[" + ias.Index.String() + "] = " + ias.Value.String()
}

// IfStatement is `if (cond) block` or `if (cond) block else block`
// (spec.md §4.2 IF/IFELSE).
type IfStatement struct {
	Token       lexer.Token // the 'if' token
	Condition   Expression
	Consequence *Block
	Alternative *Block // nil when there is no else branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	out := "if (" + is.Condition.String() + ") " + is.Consequence.String()
	if is.Alternative != nil {
		out += " else " + is.Alternative.String()
	}
	return out
}

// WhileStatement is `while (cond) block` (spec.md §4.2 WHILE).
type WhileStatement struct {
	Token     lexer.Token // the 'while' token
	Condition Expression
	Body      *Block
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}
