// Package logging provides structured logging for the matching engine.
//
// It is a thin wrapper around log/slog that standardizes configuration:
// level, output format (text or json), destination writer, and source
// annotation. The matching core itself only emits debug-level traces, so
// Nop is the default almost everywhere; embedding applications opt in by
// passing a configured logger.
package logging
