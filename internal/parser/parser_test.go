package parser

import (
	"testing"

	"github.com/pchan37/glowing-engine/internal/ast"
)

func parseOrFatal(t *testing.T, source string) *ast.Block {
	t.Helper()
	block, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", source, err)
	}
	return block
}

func TestParseEmptyBlock(t *testing.T) {
	block := parseOrFatal(t, `{}`)
	if len(block.Statements) != 0 {
		t.Fatalf("expected 0 statements, got %d", len(block.Statements))
	}
}

func TestParsePrintStatement(t *testing.T) {
	block := parseOrFatal(t, `{ print(1 + 2 * 3); }`)
	if len(block.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Statements))
	}
	stmt, ok := block.Statements[0].(*ast.PrintStatement)
	if !ok {
		t.Fatalf("expected *ast.PrintStatement, got %T", block.Statements[0])
	}
	bin, ok := stmt.Value.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level '+' binary expression, got %#v", stmt.Value)
	}
}

func TestParsePrecedence(t *testing.T) {
	block := parseOrFatal(t, `{ print(1 + 2 * 3); }`)
	stmt := block.Statements[0].(*ast.PrintStatement)
	want := "(1 + (2 * 3))"
	if got := stmt.Value.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestParseConsRightAssociative(t *testing.T) {
	block := parseOrFatal(t, `{ print(1 :: 2 :: [3]); }`)
	stmt := block.Statements[0].(*ast.PrintStatement)
	want := "(1 :: (2 :: [3]))"
	if got := stmt.Value.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestParseExponentRightAssociative(t *testing.T) {
	block := parseOrFatal(t, `{ print(2 ** 3 ** 2); }`)
	stmt := block.Statements[0].(*ast.PrintStatement)
	want := "(2 ** (3 ** 2))"
	if got := stmt.Value.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestParseSimpleAssign(t *testing.T) {
	block := parseOrFatal(t, `{ x = 1; }`)
	stmt, ok := block.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected *ast.AssignStatement, got %T", block.Statements[0])
	}
	if stmt.Name.Value != "x" {
		t.Fatalf("want identifier x, got %s", stmt.Name.Value)
	}
}

func TestParseIndexAssign(t *testing.T) {
	block := parseOrFatal(t, `{ a[1] = 20; }`)
	stmt, ok := block.Statements[0].(*ast.IndexAssignStatement)
	if !ok {
		t.Fatalf("expected *ast.IndexAssignStatement, got %T", block.Statements[0])
	}
	if _, ok := stmt.Target.(*ast.Identifier); !ok {
		t.Fatalf("expected identifier target, got %T", stmt.Target)
	}
}

func TestParseChainedIndexAssign(t *testing.T) {
	block := parseOrFatal(t, `{ a[0][1] = 5; }`)
	stmt, ok := block.Statements[0].(*ast.IndexAssignStatement)
	if !ok {
		t.Fatalf("expected *ast.IndexAssignStatement, got %T", block.Statements[0])
	}
	if _, ok := stmt.Target.(*ast.IndexExpression); !ok {
		t.Fatalf("expected chained index target, got %T", stmt.Target)
	}
}

func TestParseIfElseAndWhile(t *testing.T) {
	block := parseOrFatal(t, `{
		if (x < 3) { print(1); } else { print(2); }
		while (x < 3) { x = x + 1; }
	}`)
	if len(block.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(block.Statements))
	}
	ifStmt, ok := block.Statements[0].(*ast.IfStatement)
	if !ok || ifStmt.Alternative == nil {
		t.Fatalf("expected if/else statement with an alternative")
	}
	if _, ok := block.Statements[1].(*ast.WhileStatement); !ok {
		t.Fatalf("expected while statement, got %T", block.Statements[1])
	}
}

func TestParseTupleIndexBindsTighterThanPostfixIndex(t *testing.T) {
	block := parseOrFatal(t, `{ print(#2 (10, [20, 30], 40)[1]); }`)
	stmt := block.Statements[0].(*ast.PrintStatement)
	idx, ok := stmt.Value.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("expected the postfix index at the top, got %T", stmt.Value)
	}
	tidx, ok := idx.Target.(*ast.TupleIndexExpression)
	if !ok {
		t.Fatalf("expected *ast.TupleIndexExpression, got %T", idx.Target)
	}
	if tidx.Index != 2 {
		t.Fatalf("want index 2, got %d", tidx.Index)
	}
}

func TestParseTupleLiteralDisambiguation(t *testing.T) {
	tests := []struct {
		source string
		kind   ast.CollectionKind
		isExpr bool // true if the parenthesized form collapses to a bare expression
		count  int
	}{
		{`{ print(()); }`, ast.TupleKind, false, 0},
		{`{ print((1,)); }`, ast.TupleKind, false, 1},
		{`{ print((1, 2)); }`, ast.TupleKind, false, 2},
		{`{ print([]); }`, ast.ListKind, false, 0},
		{`{ print([1, 2, 3]); }`, ast.ListKind, false, 3},
	}

	for _, tt := range tests {
		block := parseOrFatal(t, tt.source)
		stmt := block.Statements[0].(*ast.PrintStatement)
		lit, ok := stmt.Value.(*ast.CollectionLiteral)
		if !ok {
			t.Fatalf("source %q: expected *ast.CollectionLiteral, got %T", tt.source, stmt.Value)
		}
		if lit.Kind != tt.kind {
			t.Errorf("source %q: wrong collection kind", tt.source)
		}
		if len(lit.Items) != tt.count {
			t.Errorf("source %q: want %d items, got %d", tt.source, tt.count, len(lit.Items))
		}
	}
}

func TestParseParenthesizedExpressionIsNotATuple(t *testing.T) {
	block := parseOrFatal(t, `{ print((1 + 2)); }`)
	stmt := block.Statements[0].(*ast.PrintStatement)
	if _, ok := stmt.Value.(*ast.CollectionLiteral); ok {
		t.Fatalf("a parenthesized expression must not become a tuple literal")
	}
	if _, ok := stmt.Value.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected the unwrapped '+' expression, got %T", stmt.Value)
	}
}

func TestParseSyntaxErrorOnUnexpectedToken(t *testing.T) {
	_, err := Parse(`{ print(1 + ); }`)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestParseSyntaxErrorOnMissingBrace(t *testing.T) {
	_, err := Parse(`{ print(1);`)
	if err == nil {
		t.Fatalf("expected a syntax error for unterminated block")
	}
}
