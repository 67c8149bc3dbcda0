// Package search implements the occurrence search engine and the per-session
// search memory.
//
// Literal and pattern searches share one traversal: the remainder of the
// current line, then following lines in order, then (with wrap enabled) the
// far side of the buffer back around to the starting line. Backward search
// is the mirror image. Zero-width pattern matches always advance the scan by
// at least one rune, so lookahead-style patterns cannot loop.
//
// Pattern compilation failures and empty patterns resolve to "no search
// performed" rather than an error; the engine never panics on user input.
//
// State holds the last committed pattern, direction, and match list. Its
// fields change together: Set replaces everything, Clear drops everything.
// All columns are rune indexes.
package search
