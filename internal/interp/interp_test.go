package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pchan37/glowing-engine/internal/parser"
)

func runOrFatal(t *testing.T, source string) string {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", source, err)
	}
	var buf bytes.Buffer
	it := New(&buf)
	if err := it.Run(program); err != nil {
		t.Fatalf("Run(%q) returned error: %v", source, err)
	}
	return buf.String()
}

func runExpectError(t *testing.T, source string) error {
	t.Helper()
	program, err := parser.Parse(source)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	it := New(&buf)
	return it.Run(program)
}

func TestSpecScenarios(t *testing.T) {
	tests := []struct {
		source string
		output string
	}{
		{`{ print(1 + 2 * 3); }`, "7\n"},
		{`{ a = [1,2,3]; a[1] = 20; print(a); }`, "[1, 20, 3]\n"},
		{`{ print(#2 (10, 20, 30)); }`, "20\n"},
		{`{ print(1 :: [2,3]); }`, "[1, 2, 3]\n"},
		{`{ i = 0; while (i < 3) { print(i); i = i + 1; } }`, "0\n1\n2\n"},
	}
	for _, tt := range tests {
		got := runOrFatal(t, tt.source)
		if got != tt.output {
			t.Errorf("source %q: want %q, got %q", tt.source, tt.output, got)
		}
	}
}

func TestSpecSemanticErrorScenarios(t *testing.T) {
	tests := []string{
		`{ print(1 + "a"); }`,
		`{ print(3 / 0); }`,
		`{ print(x); }`,
	}
	for _, source := range tests {
		err := runExpectError(t, source)
		if err == nil || err.Error() != "SEMANTIC ERROR" {
			t.Errorf("source %q: want SEMANTIC ERROR, got %v", source, err)
		}
	}
}

func TestSpecSyntaxErrorScenario(t *testing.T) {
	err := runExpectError(t, `{ print(1 + ); }`)
	if err == nil || err.Error() != "SYNTAX ERROR" {
		t.Fatalf("want SYNTAX ERROR, got %v", err)
	}
}

func TestBooleanNotASubtypeOfInteger(t *testing.T) {
	err := runExpectError(t, `{ print(True + 1); }`)
	if err == nil || err.Error() != "SEMANTIC ERROR" {
		t.Fatalf("want SEMANTIC ERROR for True + 1, got %v", err)
	}
}

func TestDivisionAlwaysProducesReal(t *testing.T) {
	got := runOrFatal(t, `{ print(4 / 2); }`)
	if !strings.Contains(got, ".") {
		t.Fatalf("expected a Real (fractional) result from /, got %q", got)
	}
}

func TestDivAndModRejectReal(t *testing.T) {
	err := runExpectError(t, `{ print(4.0 div 2); }`)
	if err == nil || err.Error() != "SEMANTIC ERROR" {
		t.Fatalf("want SEMANTIC ERROR for div with a Real operand, got %v", err)
	}
}

func TestShortCircuitOrelseSkipsRightTypeCheck(t *testing.T) {
	// The right operand is a non-Boolean ("not a bool"), which would be a
	// type error if evaluated — but orelse short-circuits on a True left
	// operand and must never evaluate it (spec.md §4.3.2).
	got := runOrFatal(t, `{ print(True orelse "not a bool"); }`)
	if got != "True\n" {
		t.Fatalf("want True, got %q", got)
	}
}

func TestShortCircuitAndalsoSkipsRightOnFalse(t *testing.T) {
	err := runExpectError(t, `{ print(False andalso (1 + "x" == 1)); }`)
	if err != nil {
		t.Fatalf("andalso should short-circuit on False without evaluating the right operand, got %v", err)
	}
}

func TestConsProducesFreshList(t *testing.T) {
	got := runOrFatal(t, `{
		a = [2, 3];
		b = 1 :: a;
		a[0] = 99;
		print(b);
	}`)
	if got != "[1, 2, 3]\n" {
		t.Fatalf("cons must not alias the original list; want [1, 2, 3], got %q", got)
	}
}

func TestMixedNumericEquality(t *testing.T) {
	got := runOrFatal(t, `{ print(1 == 1.0); }`)
	if got != "True\n" {
		t.Fatalf("want True for 1 == 1.0, got %q", got)
	}
}

func TestIndexOutOfRangeIsSemanticError(t *testing.T) {
	err := runExpectError(t, `{ a = [1,2]; print(a[5]); }`)
	if err == nil || err.Error() != "SEMANTIC ERROR" {
		t.Fatalf("want SEMANTIC ERROR for out-of-range index, got %v", err)
	}
}

func TestEmptyListIndexAssignIsAlwaysSemanticError(t *testing.T) {
	// `[][i] = e` is syntactically valid but always a semantic error
	// (spec.md §4.2 ASSIGN production, §7(f)).
	err := runExpectError(t, `{ [][0] = 1; }`)
	if err == nil || err.Error() != "SEMANTIC ERROR" {
		t.Fatalf("want SEMANTIC ERROR for [][0] = 1, got %v", err)
	}
}

func TestTupleIndexIsOneBased(t *testing.T) {
	err := runExpectError(t, `{ print(#0 (10, 20)); }`)
	if err == nil || err.Error() != "SEMANTIC ERROR" {
		t.Fatalf("want SEMANTIC ERROR for #0, tuple indexing is 1-based, got %v", err)
	}
}

func TestStringIndexingYieldsSingleCharacterString(t *testing.T) {
	got := runOrFatal(t, `{ print("hello"[1]); }`)
	if got != "e\n" {
		t.Fatalf("want e, got %q", got)
	}
}

func TestListConcatenationProducesFreshList(t *testing.T) {
	got := runOrFatal(t, `{
		a = [1, 2];
		b = a + [3];
		a[0] = 99;
		print(b);
	}`)
	if got != "[1, 2, 3]\n" {
		t.Fatalf("want [1, 2, 3], got %q", got)
	}
}
