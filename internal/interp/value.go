// Package interp evaluates an *ast.Block against SBML's dynamic value model
// (spec.md §4.3). There is no static type system: every operator dispatches
// on the concrete Go type of its operand Values at runtime, and mismatches
// raise a *errors.SemanticError rather than coercing.
package interp

import (
	"strconv"
	"strings"
)

// Value is any SBML runtime value. It is a closed set of six concrete
// pointer types; type switches over Value are exhaustive across them.
type Value interface {
	value()
	// String renders the value the way `print` emits it (spec.md §6):
	// scalars render bare, but list/tuple elements render strings quoted.
	String() string
}

// BooleanValue wraps True/False.
type BooleanValue struct{ Value bool }

func (*BooleanValue) value() {}
func (b *BooleanValue) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// IntegerValue wraps a 64-bit signed integer.
type IntegerValue struct{ Value int64 }

func (*IntegerValue) value()           {}
func (i *IntegerValue) String() string { return strconv.FormatInt(i.Value, 10) }

// RealValue wraps a 64-bit float.
type RealValue struct{ Value float64 }

func (*RealValue) value() {}
func (r *RealValue) String() string {
	s := strconv.FormatFloat(r.Value, 'g', -1, 64)
	// A whole-valued Real still prints with a fractional part ("2.0", not
	// "2"), so it stays distinguishable from an Integer.
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

// StringValue wraps an immutable string.
type StringValue struct{ Value string }

func (*StringValue) value()           {}
func (s *StringValue) String() string { return s.Value }

// quoted renders a value the way it appears nested inside a List/Tuple
// (spec.md §6): strings get their quotes back, everything else is unchanged.
func quoted(v Value) string {
	if s, ok := v.(*StringValue); ok {
		return "\"" + s.Value + "\""
	}
	return v.String()
}

// ListValue wraps a mutable, dynamically-sized sequence. Index assignment
// mutates Elements in place; `::` never does (spec.md Open Questions — cons
// produces a fresh list, see DESIGN.md).
type ListValue struct{ Elements []Value }

func (*ListValue) value() {}
func (l *ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = quoted(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TupleValue wraps an immutable fixed-size sequence.
type TupleValue struct{ Elements []Value }

func (*TupleValue) value() {}
func (t *TupleValue) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = quoted(e)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// typeName names a Value's dynamic type for diagnostic messages (never
// surfaced to the user per spec.md §7, only carried in SemanticError.Detail).
func typeName(v Value) string {
	switch v.(type) {
	case *BooleanValue:
		return "Boolean"
	case *IntegerValue:
		return "Integer"
	case *RealValue:
		return "Real"
	case *StringValue:
		return "String"
	case *ListValue:
		return "List"
	case *TupleValue:
		return "Tuple"
	default:
		return "?"
	}
}
