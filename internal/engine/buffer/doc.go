// Package buffer provides the line-oriented text buffer read by the motion
// engine. It is the document model: an ordered sequence of line strings with
// no embedded newlines.
//
// The buffer package provides:
//
//   - Line lookup by index that reports "absent" instead of panicking
//   - Rune-indexed line lengths (all engine columns are rune indexes)
//   - Full-content join/replace with line ending normalization
//   - Revision tracking so sessions can detect content replacement
//
// A buffer with zero lines is an empty document. This is distinct from a
// buffer holding a single empty line, which is a one-line document whose only
// line happens to be blank.
//
// Basic usage:
//
//	buf := buffer.FromString("hello world\nfoo bar")
//	line, ok := buf.Line(1) // "foo bar", true
//	_, ok = buf.Line(7)     // "", false
//
// Ownership:
//
// A Buffer belongs to exactly one editing session and carries no internal
// locking. Motions only read it; content replacement happens between motions
// through SetText. Applications needing multiple documents create one Buffer
// per document.
package buffer
