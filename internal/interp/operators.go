package interp

import "github.com/pchan37/glowing-engine/internal/errors"

// typeSet is a predicate over a Value's dynamic type: one row of an
// operator's type guard (spec.md §4.3.1's type table).
type typeSet func(Value) bool

func isBoolean(v Value) bool { _, ok := v.(*BooleanValue); return ok }
func isInteger(v Value) bool { _, ok := v.(*IntegerValue); return ok }
func isReal(v Value) bool    { _, ok := v.(*RealValue); return ok }
func isString(v Value) bool  { _, ok := v.(*StringValue); return ok }
func isList(v Value) bool    { _, ok := v.(*ListValue); return ok }

// isNumeric is Int or Real; Boolean is deliberately excluded — it is never a
// subtype of Integer for type-checking purposes (spec.md §3).
func isNumeric(v Value) bool { return isInteger(v) || isReal(v) }

// ofValidTypes mirrors the reference implementation's of_valid_types: given
// a vector of operand Values and a list of allowed all-of-this-type sets,
// it picks the set that matches the first operand's type and requires every
// operand to match that same set (sbml_utils.py of_valid_types).
func ofValidTypes(args []Value, sets ...typeSet) bool {
	if len(args) == 0 {
		return false
	}
	for _, set := range sets {
		if !set(args[0]) {
			continue
		}
		all := true
		for _, a := range args {
			if !set(a) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func typeMismatch(op string, args ...Value) error {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = typeName(a)
	}
	detail := "operator " + op + " does not accept operand types"
	for _, n := range names {
		detail += " " + n
	}
	return errors.NewSemanticError(detail)
}

// asFloat64 widens an Int-or-Real Value to float64 for mixed arithmetic.
func asFloat64(v Value) float64 {
	switch n := v.(type) {
	case *IntegerValue:
		return float64(n.Value)
	case *RealValue:
		return n.Value
	default:
		panic("asFloat64: not numeric")
	}
}

// evalNumericBinary applies a numeric operator following spec.md §4.3.1:
// "Both numeric" widens to Real if either operand is Real, else stays Int.
func evalNumericBinary(op string, left, right Value, intOp func(a, b int64) int64, realOp func(a, b float64) float64) (Value, error) {
	if !ofValidTypes([]Value{left, right}, isNumeric) {
		return nil, typeMismatch(op, left, right)
	}
	if isInteger(left) && isInteger(right) {
		a := left.(*IntegerValue).Value
		b := right.(*IntegerValue).Value
		return &IntegerValue{Value: intOp(a, b)}, nil
	}
	return &RealValue{Value: realOp(asFloat64(left), asFloat64(right))}, nil
}
