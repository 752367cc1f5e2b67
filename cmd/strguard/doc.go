// Package main hosts the strguard CLI.
//
// The Cobra command tree runs the empty-value guard from internal/textutil on
// a pair of inputs given as --a and --b flags. An omitted flag is an absent
// value and an explicitly empty flag is an empty string, so every cell of the
// absent/empty/content partition can be reached from a shell. Results render
// as a table, JSON, or a bare value.
package main
