// Package logging assembles the slog loggers used by the strguard CLI.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and provides a no-op logger for tests. The textutil package never logs;
// only command code does.
package logging
