// Package logging constructs the application's slog loggers and provides
// the standardized attribute helpers and context-derived fields used across
// the CLI and the timing engine.
//
// Two formats are supported: a human-oriented console format with optional
// color when writing to a terminal, and line-delimited JSON for machine
// consumption. Components receive child loggers tagged with a standard
// component attribute.
package logging
