// Package logging assembles structured slog loggers for the studentcard CLI.
//
// It owns the console and JSON handlers, level parsing, and the session
// handler that stamps every record with the invocation's session ID. A no-op
// logger is provided for tests and wiring code that cannot fail.
//
// Logs are diagnostics: callers send them to stderr so stdout stays reserved
// for command output.
package logging
