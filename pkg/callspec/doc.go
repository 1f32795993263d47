// Package callspec defines call specifications for fake objects.
//
// A call specification is a declarative description of "a call to method M
// with arguments satisfying constraints C1..Cn", built once from a captured
// call node and then tested repeatedly against live call records.
//
// Key types:
//
//   - MethodRef: A method or property getter, scoped to its declaring type
//   - Node: A captured call node (method invocation or property read)
//   - ArgNode: A captured argument expression within a call node
//   - Call: A live call record produced by an interception layer
//   - Spec: An immutable call specification built from a Node
//   - Constraint: A per-argument acceptance rule
//
// Specs are built via FromNode using a ConstraintBuilder that maps each
// argument node to a Constraint. The only mutation a Spec allows after
// construction is UseArgumentsPredicate, which irreversibly replaces the
// per-argument constraints with a single predicate over the whole argument
// list. After that point (or immediately after construction, if the
// predicate is never installed) a Spec is safe for concurrent use.
package callspec
