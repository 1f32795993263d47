// Package portability provides portable call-specification documents.
//
// A Document is a YAML/JSON description of a call specification: the
// declared method (or property) plus its argument nodes. Documents cover the
// portable argument kinds only: literal, any, expr, glob, and jsonpath. Go
// func predicates cannot travel through a document by design.
//
// Key types:
//
//   - Document: One portable call specification
//   - File: A document collection as stored on disk
//   - TypeIndex: Registry of Go types so documents can be imported back
//     into callspec nodes against real declaring types
//
// A Document can render its canonical description without any type
// registration, which is what the faked CLI uses to describe spec files.
package portability
