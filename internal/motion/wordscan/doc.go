// Package wordscan implements the word and WORD boundary engine.
//
// Two token models share one set of scanners:
//
//   - word: a maximal run of one character class (word or punctuation) as
//     defined by package charclass; a class change or whitespace ends the
//     token
//   - WORD: a maximal run of non-whitespace; internal class changes are
//     ignored
//
// The big parameter on every scanner selects the WORD model.
//
// Per-line scanners (NextStart, End, PrevStart, PrevEnd) work on a single
// line and report "not found" when no boundary remains on that line. The
// buffer-level scanners (NextStartAt, EndAt, PrevStartAt, PrevEndAt) add
// multi-line continuation: when a per-line scan fails they roll to the next
// or previous line and look for the first or last token there. Blank lines
// are skipped while a further token exists; when the scan runs out of tokens,
// the first blank line encountered becomes the landing point at column 0.
//
// All columns are rune indexes.
package wordscan
