package cursor

import "fmt"

// Position is an immutable caret location. Line, Col, and DesiredCol are
// always >= 0.
type Position struct {
	Line       int
	Col        int
	DesiredCol int
}

// New creates a position at the given line and column. Negative inputs clamp
// to zero. DesiredCol starts equal to Col.
func New(line, col int) Position {
	line = clampZero(line)
	col = clampZero(col)
	return Position{Line: line, Col: col, DesiredCol: col}
}

// WithLine returns a position on a different line. Col and DesiredCol are
// preserved; vertical callers re-clamp Col against the target line.
func (p Position) WithLine(line int) Position {
	p.Line = clampZero(line)
	return p
}

// WithCol returns a position with a new column. DesiredCol resets to the new
// column; this is the horizontal-motion transform.
func (p Position) WithCol(col int) Position {
	p.Col = clampZero(col)
	p.DesiredCol = p.Col
	return p
}

// WithColAndDesired returns a position with column and desired column set
// independently; vertical motions use this to clamp Col while keeping the
// target column.
func (p Position) WithColAndDesired(col, desired int) Position {
	p.Col = clampZero(col)
	p.DesiredCol = clampZero(desired)
	return p
}

// Left returns a position one column left, clamped at zero.
func (p Position) Left() Position {
	return p.WithCol(p.Col - 1)
}

// Right returns a position one column right.
func (p Position) Right() Position {
	return p.WithCol(p.Col + 1)
}

// Up returns a position one line up, clamped at zero. Col and DesiredCol are
// preserved.
func (p Position) Up() Position {
	return p.WithLine(p.Line - 1)
}

// Down returns a position one line down. Col and DesiredCol are preserved.
func (p Position) Down() Position {
	return p.WithLine(p.Line + 1)
}

// Equal reports whether two positions have the same line and columns.
func (p Position) Equal(other Position) bool {
	return p == other
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d desired=%d)", p.Line, p.Col, p.DesiredCol)
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
