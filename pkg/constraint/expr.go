package constraint

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getfaked/faked/pkg/callspec"
)

// programCache memoizes compiled expressions. Specifications are typically
// built once and matched many times, but the same expression source often
// recurs across specifications in a test suite.
var (
	programMu    sync.RWMutex
	programCache = map[string]*vm.Program{}
)

func compile(src string) (*vm.Program, error) {
	programMu.RLock()
	if program, ok := programCache[src]; ok {
		programMu.RUnlock()
		return program, nil
	}
	programMu.RUnlock()

	program, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	programMu.Lock()
	// Double-check in case another goroutine compiled the same source.
	if existing, ok := programCache[src]; ok {
		programMu.Unlock()
		return existing, nil
	}
	programCache[src] = program
	programMu.Unlock()

	return program, nil
}

// exprConstraint evaluates a compiled boolean expression with the live
// argument bound to "value".
type exprConstraint struct {
	src     string
	program *vm.Program
}

func (c exprConstraint) Matches(value any) bool {
	result, err := expr.Run(c.program, map[string]any{"value": value})
	if err != nil {
		return false
	}
	ok, isBool := result.(bool)
	return isBool && ok
}

func (c exprConstraint) String() string {
	return fmt.Sprintf("<expr %q>", c.src)
}

// Expr returns a constraint matched by values for which the expression
// evaluates to true. The live argument is bound to "value", e.g.
// "value > 2 && value < 10".
func Expr(src string) (callspec.Constraint, error) {
	program, err := compile(src)
	if err != nil {
		return nil, fmt.Errorf("constraint: compile expression %q: %w", src, err)
	}
	return exprConstraint{src: src, program: program}, nil
}

// ArgsExpr returns a whole-arguments predicate from an expression. The live
// argument list is bound to "args", e.g. "len(args) == 2".
func ArgsExpr(src string) (callspec.ArgsPredicate, error) {
	program, err := compile(src)
	if err != nil {
		return nil, fmt.Errorf("constraint: compile arguments expression %q: %w", src, err)
	}
	return func(args []any) bool {
		result, err := expr.Run(program, map[string]any{"args": args})
		if err != nil {
			return false
		}
		ok, isBool := result.(bool)
		return isBool && ok
	}, nil
}
