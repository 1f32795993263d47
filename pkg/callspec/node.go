package callspec

// NodeKind identifies the shape of a captured call node.
type NodeKind string

const (
	// KindMethodCall is a method invocation with argument expressions.
	KindMethodCall NodeKind = "method_call"
	// KindPropertyRead is a property read, treated as a zero-argument
	// invocation of the property's getter.
	KindPropertyRead NodeKind = "property_read"
)

// Node is a captured call node produced by an expression-capture layer.
// The Kind field determines which variant pointer is populated; any other
// shape is rejected at Spec construction.
type Node struct {
	Kind         NodeKind
	MethodCall   *MethodCallNode
	PropertyRead *PropertyReadNode
}

// MethodCallNode is a method invocation with ordered argument expressions.
type MethodCallNode struct {
	Method MethodRef
	Args   []ArgNode
}

// PropertyReadNode is a read of a property.
type PropertyReadNode struct {
	Property PropertyRef
}

// Invoke builds a method-call node.
func Invoke(method MethodRef, args ...ArgNode) *Node {
	return &Node{
		Kind:       KindMethodCall,
		MethodCall: &MethodCallNode{Method: method, Args: args},
	}
}

// ReadProperty builds a property-read node.
func ReadProperty(prop PropertyRef) *Node {
	return &Node{
		Kind:         KindPropertyRead,
		PropertyRead: &PropertyReadNode{Property: prop},
	}
}

// ArgKind identifies how a captured argument expression should be matched.
type ArgKind string

const (
	// ArgLiteral matches by exact value equality.
	ArgLiteral ArgKind = "literal"
	// ArgAny matches any value.
	ArgAny ArgKind = "any"
	// ArgPredicate matches when a user-supplied func returns true.
	ArgPredicate ArgKind = "predicate"
	// ArgExpr matches when an expression evaluates to true against the value.
	ArgExpr ArgKind = "expr"
	// ArgJSONPath matches structured values against JSONPath conditions.
	ArgJSONPath ArgKind = "jsonpath"
	// ArgGlob matches string values against a glob pattern.
	ArgGlob ArgKind = "glob"
)

// ArgNode is one captured argument expression. The Kind tag determines which
// payload field is meaningful. How a front end decides the kind of a node is
// recognition policy; the constraint builder only requires the tag.
type ArgNode struct {
	Kind      ArgKind
	Literal   any
	Predicate func(any) bool
	Expr      string
	Paths     map[string]any
	Pattern   string
}

// Lit builds a literal argument node matched by exact value.
func Lit(v any) ArgNode { return ArgNode{Kind: ArgLiteral, Literal: v} }

// AnyArg builds a wildcard argument node.
func AnyArg() ArgNode { return ArgNode{Kind: ArgAny} }

// PredArg builds a predicate argument node.
func PredArg(p func(any) bool) ArgNode { return ArgNode{Kind: ArgPredicate, Predicate: p} }

// ExprArg builds an expression argument node. The expression is evaluated
// with the live argument bound to "value".
func ExprArg(src string) ArgNode { return ArgNode{Kind: ArgExpr, Expr: src} }

// JSONPathArg builds a JSONPath argument node. Each map entry is a JSONPath
// expression paired with its expected value or an existence check.
func JSONPathArg(paths map[string]any) ArgNode { return ArgNode{Kind: ArgJSONPath, Paths: paths} }

// GlobArg builds a glob-pattern argument node for string arguments.
func GlobArg(pattern string) ArgNode { return ArgNode{Kind: ArgGlob, Pattern: pattern} }
