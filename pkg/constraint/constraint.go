package constraint

import (
	"reflect"

	"github.com/getfaked/faked/pkg/callspec"
)

// exact accepts values deeply equal to the expected value.
type exact struct {
	expected any
}

func (c exact) Matches(value any) bool {
	return reflect.DeepEqual(value, c.expected)
}

func (c exact) String() string {
	return callspec.RenderValue(c.expected)
}

// Exact returns a constraint matched only by values deeply equal to expected.
func Exact(expected any) callspec.Constraint {
	return exact{expected: expected}
}

// anyValue accepts every value.
type anyValue struct{}

func (anyValue) Matches(any) bool { return true }

func (anyValue) String() string { return callspec.TokenAny }

// Any returns the wildcard constraint.
func Any() callspec.Constraint {
	return anyValue{}
}

// pred accepts values for which the predicate returns true.
type pred struct {
	fn func(any) bool
}

func (c pred) Matches(value any) bool {
	return c.fn(value)
}

func (c pred) String() string { return callspec.TokenPredicated }

// Pred returns a constraint matched by values satisfying fn.
func Pred(fn func(any) bool) callspec.Constraint {
	return pred{fn: fn}
}

// never rejects every value. The builder falls back to it when a node's
// payload cannot produce a working constraint (e.g. an expression that does
// not compile), keeping the node-to-constraint mapping total.
type never struct {
	desc string
}

func (never) Matches(any) bool { return false }

func (c never) String() string { return c.desc }
