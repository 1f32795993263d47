package callspec

// Constraint is a per-argument acceptance rule with a textual rendering.
// Implementations must be safe for concurrent use once published.
type Constraint interface {
	// Matches reports whether the live argument value satisfies the rule.
	Matches(value any) bool

	// String renders the rule for Spec descriptions. Literal constraints
	// render their value; wildcard and predicate constraints render fixed
	// tokens so descriptions stay deterministic.
	String() string
}

// ConstraintBuilder maps one captured argument node to one Constraint.
// The mapping must be total and deterministic: the same node always yields a
// constraint with the same validity behavior.
type ConstraintBuilder interface {
	Build(node ArgNode) Constraint
}

// TokenAny is the fixed rendering of a wildcard constraint.
const TokenAny = "<any>"

// TokenPredicated is the fixed rendering of predicate and override
// constraints.
const TokenPredicated = "<predicated>"

// overridden is the marker constraint installed by UseArgumentsPredicate.
// It stands in for every per-argument slot once a whole-arguments predicate
// owns validity, so descriptions keep the original arity.
type overridden struct{}

func (overridden) Matches(any) bool { return true }

func (overridden) String() string { return TokenPredicated }
