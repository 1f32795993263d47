package callspec

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// MatchMode is the argument-checking mode of a Spec.
type MatchMode string

const (
	// ModePerArgument checks each positional constraint against the
	// corresponding live argument.
	ModePerArgument MatchMode = "per_argument"
	// ModeOverridden checks a single predicate against the whole argument
	// list; positional constraints remain only for rendering.
	ModeOverridden MatchMode = "overridden"
)

// ArgsPredicate accepts or rejects a whole live argument list.
type ArgsPredicate func(args []any) bool

// Spec is a call specification: a resolved method reference plus an ordered
// list of argument constraints. It is built once from a captured call node
// and is immutable except for UseArgumentsPredicate.
type Spec struct {
	method MethodRef

	mu          sync.RWMutex
	constraints []Constraint
	argsPred    ArgsPredicate
}

// FromNode builds a specification from a captured call node.
//
// A method-call node yields the node's method reference and one constraint
// per argument expression, in source order. A property-read node yields the
// property's getter reference and zero constraints. Any other shape fails
// with ErrInvalidShape and no partial Spec is returned.
func FromNode(node *Node, builder ConstraintBuilder) (*Spec, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidShape)
	}

	switch node.Kind {
	case KindMethodCall:
		mc := node.MethodCall
		if mc == nil {
			return nil, fmt.Errorf("%w: method_call node without payload", ErrInvalidShape)
		}
		constraints := make([]Constraint, len(mc.Args))
		for i, arg := range mc.Args {
			constraints[i] = builder.Build(arg)
		}
		return &Spec{method: mc.Method, constraints: constraints}, nil

	case KindPropertyRead:
		pr := node.PropertyRead
		if pr == nil {
			return nil, fmt.Errorf("%w: property_read node without payload", ErrInvalidShape)
		}
		getter, err := pr.Property.Getter()
		if err != nil {
			return nil, err
		}
		return &Spec{method: getter, constraints: nil}, nil

	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidShape, node.Kind)
	}
}

// Method returns the resolved method reference.
func (s *Spec) Method() MethodRef {
	return s.method
}

// Mode returns the current argument-checking mode.
func (s *Spec) Mode() MatchMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.argsPred != nil {
		return ModeOverridden
	}
	return ModePerArgument
}

// Arity returns the number of argument slots.
func (s *Spec) Arity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.constraints)
}

// Constraints returns a copy of the positional constraints.
func (s *Spec) Constraints() []Constraint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Constraint, len(s.constraints))
	copy(out, s.constraints)
	return out
}

// UseArgumentsPredicate irreversibly replaces the per-argument check with a
// single predicate over the whole argument list. Every positional constraint
// becomes an override marker so descriptions keep the original arity.
// Calling it again re-overrides with the new predicate; there is no way back
// to per-argument checking.
//
// The switch is expected to happen once, synchronously, before the Spec is
// published for concurrent matching.
func (s *Spec) UseArgumentsPredicate(p ArgsPredicate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.constraints {
		s.constraints[i] = overridden{}
	}
	s.argsPred = p
}

// ArgumentsPredicate returns the installed whole-arguments predicate, or
// nil while the spec is still in per-argument mode.
func (s *Spec) ArgumentsPredicate() ArgsPredicate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.argsPred
}

// ArgumentsMatch reports whether the live argument values satisfy the
// specification's argument check under its current mode.
//
// Precondition: len(args) equals the spec's arity. The interception layer
// guarantees this for calls whose method could match; it is not re-checked
// here so pipeline defects surface instead of being masked.
func (s *Spec) ArgumentsMatch(args []any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.argsPred != nil {
		return s.argsPred(args)
	}
	for i, c := range s.constraints {
		if !c.Matches(args[i]) {
			return false
		}
	}
	return true
}

// Describe renders the specification as
// "DeclaringType.Method(<c1>, <c2>, ...)". The format is stable and
// deterministic; assertion layers use it for diagnostics and tests use it to
// deduplicate specifications, so treat it as a compatibility surface.
func (s *Spec) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString(s.method.String())
	b.WriteByte('(')
	for i, c := range s.constraints {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

// RenderValue renders a literal value for descriptions: strings are quoted,
// nil renders as "<nil>", everything else uses its default formatting.
func RenderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
