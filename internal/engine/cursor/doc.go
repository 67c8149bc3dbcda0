// Package cursor provides the immutable caret position used by the motion
// engine.
//
// Position carries three coordinates:
//
//   - Line: the 0-indexed buffer line
//   - Col: the clamped, on-screen column (rune index)
//   - DesiredCol: the column a vertical motion is trying to preserve,
//     independent of clamping on short intermediate lines
//
// Horizontal motions set DesiredCol = Col. Vertical and document motions
// preserve DesiredCol and recompute Col = min(DesiredCol, line length), so a
// cursor at column 20 that crosses a 5-character line comes back out at
// column 20.
//
// All transforms return a new Position; nothing mutates in place. Position is
// a plain value type and safe to copy and compare.
package cursor
