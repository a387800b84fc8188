package interp

import (
	"math"
	"strings"

	"github.com/pchan37/glowing-engine/internal/ast"
	"github.com/pchan37/glowing-engine/internal/errors"
)

// eval evaluates an expression node to a Value. Operand evaluation is
// always left-to-right (spec.md §5); the short-circuit operators are the
// only ones that skip evaluating (and therefore type-checking) the right
// operand (spec.md §4.3.2).
func (it *Interpreter) eval(expr ast.Expression) Value {
	switch e := expr.(type) {
	case *ast.BooleanLiteral:
		return &BooleanValue{Value: e.Value}
	case *ast.IntegerLiteral:
		return &IntegerValue{Value: e.Value}
	case *ast.RealLiteral:
		return &RealValue{Value: e.Value}
	case *ast.StringLiteral:
		return &StringValue{Value: e.Value}
	case *ast.Identifier:
		value, ok := it.Env.Get(e.Value)
		if !ok {
			fail("undefined identifier %q", e.Value)
		}
		return value
	case *ast.CollectionLiteral:
		return it.evalCollectionLiteral(e)
	case *ast.UnaryExpression:
		return it.evalUnary(e)
	case *ast.BinaryExpression:
		return it.evalBinary(e)
	case *ast.IndexExpression:
		return it.evalIndex(e)
	case *ast.TupleIndexExpression:
		return it.evalTupleIndex(e)
	default:
		fail("internal error: unhandled expression node %T", expr)
		return nil
	}
}

func (it *Interpreter) evalCollectionLiteral(e *ast.CollectionLiteral) Value {
	elements := make([]Value, len(e.Items))
	for i, item := range e.Items {
		elements[i] = it.eval(item)
	}
	if e.Kind == ast.TupleKind {
		return &TupleValue{Elements: elements}
	}
	return &ListValue{Elements: elements}
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpression) Value {
	right := it.eval(e.Right)
	switch e.Operator {
	case "not":
		b, ok := right.(*BooleanValue)
		if !ok {
			fail("not requires a Boolean operand, got %s", typeName(right))
		}
		return &BooleanValue{Value: !b.Value}
	case "-":
		// Unary minus lowers to binary subtraction from zero, matching the
		// reference parser's `ExpressionNode(0, operand, MINUS)` reduction —
		// it shares evalMinus's type guard rather than having its own, so a
		// non-numeric operand (e.g. a List) fails the same way `0 - x` would.
		return evalMinus(&IntegerValue{Value: 0}, right)
	default:
		fail("internal error: unhandled unary operator %q", e.Operator)
		return nil
	}
}

// evalBinary evaluates a binary expression node. orelse/andalso short-circuit
// before evaluating the right operand; every other operator evaluates both
// operands left-to-right and then checks the operator's type guard.
func (it *Interpreter) evalBinary(e *ast.BinaryExpression) Value {
	switch e.Operator {
	case "orelse":
		left := it.evalBoolean(e.Left, "orelse")
		if left {
			return &BooleanValue{Value: true}
		}
		return &BooleanValue{Value: it.evalBoolean(e.Right, "orelse")}
	case "andalso":
		left := it.evalBoolean(e.Left, "andalso")
		if !left {
			return &BooleanValue{Value: false}
		}
		return &BooleanValue{Value: it.evalBoolean(e.Right, "andalso")}
	}

	left := it.eval(e.Left)
	right := it.eval(e.Right)

	switch e.Operator {
	case "<", "<=", ">", ">=", "==", "<>":
		return evalComparison(e.Operator, left, right)
	case "::":
		return evalCons(left, right)
	case "in":
		return evalMembership(left, right)
	case "+":
		return evalPlus(left, right)
	case "-":
		return evalMinus(left, right)
	case "*":
		return evalTimes(left, right)
	case "/":
		return evalDivide(left, right)
	case "div":
		return evalIntDiv(left, right)
	case "mod":
		return evalIntMod(left, right)
	case "**":
		return evalPow(left, right)
	default:
		fail("internal error: unhandled binary operator %q", e.Operator)
		return nil
	}
}

func (it *Interpreter) evalBoolean(expr ast.Expression, op string) bool {
	value := it.eval(expr)
	b, ok := value.(*BooleanValue)
	if !ok {
		panic(typeMismatch(op, value))
	}
	return b.Value
}

func evalComparison(op string, left, right Value) Value {
	switch {
	case ofValidTypes([]Value{left, right}, isNumeric):
		a, b := asFloat64(left), asFloat64(right)
		return &BooleanValue{Value: compareNumeric(op, a, b)}
	case ofValidTypes([]Value{left, right}, isString):
		a, b := left.(*StringValue).Value, right.(*StringValue).Value
		return &BooleanValue{Value: compareStrings(op, a, b)}
	default:
		panic(typeMismatch(op, left, right))
	}
}

func compareNumeric(op string, a, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	case "==":
		return a == b
	case "<>":
		return a != b
	default:
		return false
	}
}

func compareStrings(op string, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	case "==":
		return a == b
	case "<>":
		return a != b
	default:
		return false
	}
}

// evalCons implements `::` (spec.md §4.3.3): any left operand prepended
// onto a List right operand, producing a fresh List (the value-semantics
// deviation from the reference's in-place mutation — see DESIGN.md).
func evalCons(left, right Value) Value {
	list, ok := right.(*ListValue)
	if !ok {
		panic(typeMismatch("::", left, right))
	}
	elements := make([]Value, 0, len(list.Elements)+1)
	elements = append(elements, left)
	elements = append(elements, list.Elements...)
	return &ListValue{Elements: elements}
}

// evalMembership implements `in`: (any, List) membership, or (String,
// String) substring containment (spec.md §4.3.1).
func evalMembership(left, right Value) Value {
	if list, ok := right.(*ListValue); ok {
		for _, elem := range list.Elements {
			if valuesEqual(left, elem) {
				return &BooleanValue{Value: true}
			}
		}
		return &BooleanValue{Value: false}
	}
	if ofValidTypes([]Value{left, right}, isString) {
		needle := left.(*StringValue).Value
		haystack := right.(*StringValue).Value
		return &BooleanValue{Value: strings.Contains(haystack, needle)}
	}
	panic(typeMismatch("in", left, right))
}

// valuesEqual tests equality for `in`'s list-membership case: numeric
// (mixed Int/Real) and String pairs compare as `==` does, Boolean pairs
// compare by value (a pairing `==` itself rejects), and any other pairing,
// including nested Lists and Tuples, is unequal.
func valuesEqual(a, b Value) bool {
	switch {
	case ofValidTypes([]Value{a, b}, isNumeric):
		return asFloat64(a) == asFloat64(b)
	case ofValidTypes([]Value{a, b}, isString):
		return a.(*StringValue).Value == b.(*StringValue).Value
	case ofValidTypes([]Value{a, b}, isBoolean):
		return a.(*BooleanValue).Value == b.(*BooleanValue).Value
	default:
		return false
	}
}

// evalPlus implements `+`: numeric, String concatenation, or List
// concatenation into a fresh List (spec.md Open Questions: list `+`
// produces a new list, never mutates).
func evalPlus(left, right Value) Value {
	switch {
	case ofValidTypes([]Value{left, right}, isNumeric):
		result, err := evalNumericBinary("+", left, right,
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
		if err != nil {
			panic(err)
		}
		return result
	case ofValidTypes([]Value{left, right}, isString):
		return &StringValue{Value: left.(*StringValue).Value + right.(*StringValue).Value}
	case ofValidTypes([]Value{left, right}, isList):
		a := left.(*ListValue).Elements
		b := right.(*ListValue).Elements
		elements := make([]Value, 0, len(a)+len(b))
		elements = append(elements, a...)
		elements = append(elements, b...)
		return &ListValue{Elements: elements}
	default:
		panic(typeMismatch("+", left, right))
	}
}

func evalMinus(left, right Value) Value {
	result, err := evalNumericBinary("-", left, right,
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
	if err != nil {
		panic(err)
	}
	return result
}

func evalTimes(left, right Value) Value {
	result, err := evalNumericBinary("*", left, right,
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
	if err != nil {
		panic(err)
	}
	return result
}

// evalDivide implements `/`, which always produces Real even for two
// Integer operands (spec.md §4.3.1).
func evalDivide(left, right Value) Value {
	if !ofValidTypes([]Value{left, right}, isNumeric) {
		panic(typeMismatch("/", left, right))
	}
	divisor := asFloat64(right)
	if divisor == 0 {
		panic(errors.NewSemanticError("division by zero"))
	}
	return &RealValue{Value: asFloat64(left) / divisor}
}

func evalIntDiv(left, right Value) Value {
	if !ofValidTypes([]Value{left, right}, isInteger) {
		panic(typeMismatch("div", left, right))
	}
	a, b := left.(*IntegerValue).Value, right.(*IntegerValue).Value
	if b == 0 {
		panic(errors.NewSemanticError("div by zero"))
	}
	return &IntegerValue{Value: a / b}
}

func evalIntMod(left, right Value) Value {
	if !ofValidTypes([]Value{left, right}, isInteger) {
		panic(typeMismatch("mod", left, right))
	}
	a, b := left.(*IntegerValue).Value, right.(*IntegerValue).Value
	if b == 0 {
		panic(errors.NewSemanticError("mod by zero"))
	}
	return &IntegerValue{Value: a % b}
}

// evalPow implements `**`, right-associative at the parser level; both-Int
// operands with a non-negative exponent stay Int via repeated
// multiplication, matching the same widen-unless-both-Int rule as +, -, *
// (spec.md §4.3.1). A negative Int exponent yields a Real.
func evalPow(left, right Value) Value {
	if !ofValidTypes([]Value{left, right}, isNumeric) {
		panic(typeMismatch("**", left, right))
	}
	if isInteger(left) && isInteger(right) {
		base := left.(*IntegerValue).Value
		exp := right.(*IntegerValue).Value
		if exp >= 0 {
			return &IntegerValue{Value: intPow(base, exp)}
		}
	}
	return &RealValue{Value: realPow(asFloat64(left), asFloat64(right))}
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func realPow(base, exp float64) float64 { return math.Pow(base, exp) }

// evalIndex implements postfix `e1[e2]` over a List or String
// (spec.md §4.3.1).
func (it *Interpreter) evalIndex(e *ast.IndexExpression) Value {
	target := it.eval(e.Target)
	index := it.eval(e.Index)

	idxInt, ok := index.(*IntegerValue)
	if !ok {
		fail("index must be an Integer, got %s", typeName(index))
	}

	switch t := target.(type) {
	case *ListValue:
		if idxInt.Value < 0 || int(idxInt.Value) >= len(t.Elements) {
			fail("index %d out of range for List of length %d", idxInt.Value, len(t.Elements))
		}
		return t.Elements[idxInt.Value]
	case *StringValue:
		runes := []rune(t.Value)
		if idxInt.Value < 0 || int(idxInt.Value) >= len(runes) {
			fail("index %d out of range for String of length %d", idxInt.Value, len(runes))
		}
		return &StringValue{Value: string(runes[idxInt.Value])}
	default:
		fail("indexing target must be a List or String, got %s", typeName(target))
		return nil
	}
}

// evalTupleIndex implements prefix `#k e`, 1-based (spec.md §8 scenario 3:
// `#2 (10, 20, 30)` is `20`).
func (it *Interpreter) evalTupleIndex(e *ast.TupleIndexExpression) Value {
	target := it.eval(e.Tuple)
	tuple, ok := target.(*TupleValue)
	if !ok {
		fail("tuple index target must be a Tuple, got %s", typeName(target))
	}
	if e.Index < 1 || int(e.Index) > len(tuple.Elements) {
		fail("tuple index %d out of range for Tuple of length %d", e.Index, len(tuple.Elements))
	}
	return tuple.Elements[e.Index-1]
}
