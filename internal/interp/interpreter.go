package interp

import (
	"fmt"
	"io"

	"github.com/pchan37/glowing-engine/internal/ast"
	"github.com/pchan37/glowing-engine/internal/errors"
)

// Interpreter walks an *ast.Block against a single global Environment,
// writing `print` output to Out. There is no call stack, no scoping, and no
// suspension: evaluation is synchronous and single-threaded (spec.md §5).
type Interpreter struct {
	Env *Environment
	Out io.Writer
}

// New builds an Interpreter with a fresh global environment.
func New(out io.Writer) *Interpreter {
	return &Interpreter{Env: NewEnvironment(), Out: out}
}

// Run evaluates a parsed program to completion, or returns the first
// *errors.SemanticError encountered.
func (it *Interpreter) Run(program *ast.Block) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if semErr, ok := r.(*errors.SemanticError); ok {
				err = semErr
				return
			}
			panic(r)
		}
	}()
	it.evalBlock(program)
	return nil
}

func fail(format string, args ...any) {
	panic(errors.NewSemanticError(fmt.Sprintf(format, args...)))
}

// evalBlock evaluates a Block's statements in order. Blocks introduce no
// new scope (spec.md §3).
func (it *Interpreter) evalBlock(block *ast.Block) {
	for _, stmt := range block.Statements {
		it.evalStatement(stmt)
	}
}

func (it *Interpreter) evalStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		it.eval(s.Expression)
	case *ast.PrintStatement:
		value := it.eval(s.Value)
		fmt.Fprintln(it.Out, value.String())
	case *ast.AssignStatement:
		value := it.eval(s.Value)
		it.Env.Set(s.Name.Value, value)
	case *ast.IndexAssignStatement:
		it.evalIndexAssign(s)
	case *ast.IfStatement:
		it.evalIf(s)
	case *ast.WhileStatement:
		it.evalWhile(s)
	default:
		fail("internal error: unhandled statement node %T", stmt)
	}
}

// evalIndexAssign implements `x[i] = e` and its chained-target generalization
// `e[i] = e2` (spec.md §4.3.4): the index and value are evaluated first
// (index before value), the target must evaluate to a List, and the index
// must be an in-range Int.
func (it *Interpreter) evalIndexAssign(s *ast.IndexAssignStatement) {
	index := it.eval(s.Index)
	value := it.eval(s.Value)

	idxInt, ok := index.(*IntegerValue)
	if !ok {
		fail("index must be an Integer, got %s", typeName(index))
	}

	if ident, ok := s.Target.(*ast.Identifier); ok {
		bound, exists := it.Env.Get(ident.Value)
		if !exists {
			fail("undefined identifier %q", ident.Value)
		}
		list, ok := bound.(*ListValue)
		if !ok {
			fail("indexed assignment target must be a List, got %s", typeName(bound))
		}
		if idxInt.Value < 0 || int(idxInt.Value) >= len(list.Elements) {
			fail("index %d out of range for List of length %d", idxInt.Value, len(list.Elements))
		}
		list.Elements[idxInt.Value] = value
		it.Env.Set(ident.Value, list)
		return
	}

	target := it.eval(s.Target)
	list, ok := target.(*ListValue)
	if !ok {
		fail("indexed assignment target must be a List, got %s", typeName(target))
	}
	if idxInt.Value < 0 || int(idxInt.Value) >= len(list.Elements) {
		fail("index %d out of range for List of length %d", idxInt.Value, len(list.Elements))
	}
	list.Elements[idxInt.Value] = value
}

func (it *Interpreter) evalIf(s *ast.IfStatement) {
	cond := it.eval(s.Condition)
	condBool, ok := cond.(*BooleanValue)
	if !ok {
		fail("if condition must be Boolean, got %s", typeName(cond))
	}
	if condBool.Value {
		it.evalBlock(s.Consequence)
	} else if s.Alternative != nil {
		it.evalBlock(s.Alternative)
	}
}

func (it *Interpreter) evalWhile(s *ast.WhileStatement) {
	for {
		cond := it.eval(s.Condition)
		condBool, ok := cond.(*BooleanValue)
		if !ok {
			fail("while condition must be Boolean, got %s", typeName(cond))
		}
		if !condBool.Value {
			return
		}
		it.evalBlock(s.Body)
	}
}
