// Package constraint provides argument constraints for call specifications.
//
// It implements the acceptance rules a specification can place on a single
// argument position:
//
//   - Exact: deep value equality
//   - Any: wildcard, accepts every value
//   - Pred: user-supplied Go predicate
//   - Expr: expression-language predicate over the value
//   - JSONPath: JSONPath conditions over structured values
//   - Glob: glob-pattern matching for string values
//
// Key types:
//
//   - Builder: Total, deterministic mapping from captured argument nodes to
//     constraints
//   - Recognizer: Pluggable strategy consulted before the default mapping,
//     so a specification-authoring front end can install its own policy for
//     recognizing wildcard or predicate markers
package constraint
