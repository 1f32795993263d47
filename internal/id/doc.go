// Package id provides unique identifier generation utilities.
//
// This is the canonical source for ID generation across the faked codebase.
// UUID returns a standard UUID v4; matcher instances and registry entries
// carry these as their identifiers, including in breakdown diagnostics.
package id
