// Package matching provides call matching for fake objects.
//
// It decides whether a live call record satisfies a call specification,
// reconciling two sources of ambiguity:
//
//   - Method identity: a specification is written against a declared type
//     (usually an interface) while live calls carry the concrete runtime
//     type, so an interface method and the concrete method satisfying it
//     must count as the same invoked method
//   - Argument validity: arguments match by exact value, wildcard,
//     predicate, expression, glob, or JSONPath condition
//
// Key types:
//
//   - Resolver: Decides whether two method references execute the same
//     implementation on a given runtime type, memoized per triple
//   - Matcher: Tests live calls against one specification and renders the
//     specification as text
//   - Breakdown: Per-field diagnostics computed without short-circuiting,
//     with weighted scores for ranking near misses
//
// Score constants are defined in scores.go.
package matching
