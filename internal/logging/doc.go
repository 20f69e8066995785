// Package logging builds the slog loggers used by recipegen.
//
// It maps the configured level and format onto slog handlers: a text
// handler for terminals, a JSON handler with short keys for pipelines and
// CI logs, and "auto" to pick between them based on whether the output is
// a terminal. NewNop returns a logger that discards everything for tests.
package logging
