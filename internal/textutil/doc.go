// Package textutil guards string comparisons against absent and empty input.
//
// Similarity and distance algorithms call these helpers before doing any real
// work. When at least one side is absent or empty the result is known without
// looking at the text, and the helpers return it as a degenerate Outcome.
// When both sides carry content the Outcome is Delegate and the caller runs
// its own algorithm, usually through Outcome.Resolve.
//
// Text keeps "absent" and "empty" apart at the API boundary even though the
// guard treats them the same way, so callers holding *string or optional
// database columns can pass them through unchanged.
package textutil
