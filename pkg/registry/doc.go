// Package registry provides storage for call matchers.
//
// It defines a thread-safe in-memory store keyed by matcher ID, with a
// secondary index on the matcher's canonical description. Because two
// specifications built from structurally identical call nodes render the
// same description, the description index lets an assertion layer
// deduplicate equivalent specifications instead of registering them twice.
//
// Key types:
//
//   - Store: Thread-safe in-memory matcher store with description dedup
//
// The store holds no match state; matchers remain independently usable.
package registry
