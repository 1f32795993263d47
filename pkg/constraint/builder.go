package constraint

import (
	"fmt"

	"github.com/getfaked/faked/pkg/callspec"
)

// Recognizer converts one captured argument node into a constraint. A
// recognizer that does not claim the node returns ok == false and the next
// strategy is consulted. Recognizing wildcard or predicate markers in
// captured syntax is authoring-surface policy, which is why the chain is
// pluggable.
type Recognizer interface {
	Recognize(node callspec.ArgNode) (c callspec.Constraint, ok bool)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(node callspec.ArgNode) (callspec.Constraint, bool)

// Recognize implements Recognizer.
func (f RecognizerFunc) Recognize(node callspec.ArgNode) (callspec.Constraint, bool) {
	return f(node)
}

// Builder maps captured argument nodes to constraints. Custom recognizers
// run first, in order; nodes nobody claims fall through to the default
// tag dispatch. The mapping is total: every node yields exactly one
// constraint, and the same node always yields a constraint with the same
// validity behavior.
type Builder struct {
	recognizers []Recognizer
}

// NewBuilder creates a builder with optional custom recognizers.
func NewBuilder(recognizers ...Recognizer) *Builder {
	return &Builder{recognizers: recognizers}
}

// Build implements callspec.ConstraintBuilder.
func (b *Builder) Build(node callspec.ArgNode) callspec.Constraint {
	for _, r := range b.recognizers {
		if c, ok := r.Recognize(node); ok {
			return c
		}
	}
	return buildDefault(node)
}

// buildDefault dispatches on the node tag.
func buildDefault(node callspec.ArgNode) callspec.Constraint {
	switch node.Kind {
	case callspec.ArgAny:
		return Any()

	case callspec.ArgPredicate:
		if node.Predicate == nil {
			return never{desc: callspec.TokenPredicated}
		}
		return Pred(node.Predicate)

	case callspec.ArgExpr:
		c, err := Expr(node.Expr)
		if err != nil {
			// An expression that does not compile can never accept a value.
			return never{desc: fmt.Sprintf("<expr %q>", node.Expr)}
		}
		return c

	case callspec.ArgJSONPath:
		return JSONPath(node.Paths)

	case callspec.ArgGlob:
		return Glob(node.Pattern)

	default:
		// ArgLiteral and unrecognized tags match by exact value.
		return Exact(node.Literal)
	}
}
