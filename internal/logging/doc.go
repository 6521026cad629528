// Package logging builds slog loggers for the CLI and the reconciliation
// engine.
//
// It exposes a small set of helpers so callers never import log/slog
// directly: typed attribute constructors, a no-op logger for tests, and
// NewComponentLogger which stamps every record with a standardized
// component attribute. Output format is either "console" (text) or "json",
// optionally teed into a log file next to the identifier cache.
package logging
