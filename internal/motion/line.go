package motion

import (
	"unicode/utf8"

	"github.com/dshills/motive/internal/engine/cursor"
	"github.com/dshills/motive/internal/motion/wordscan"
)

// lineCandidate applies a column rule. An explicit count greater than one
// first advances count-1 lines down, clamped to the last line, matching how
// counts compose with line-relative motions.
func (m Motion) lineCandidate(ctx *Context) (cursor.Position, bool) {
	cur := ctx.Cursor
	line := cur.Line
	if ctx.Count.Active && ctx.Count.Value > 1 {
		line += ctx.Count.Value - 1
		if last := ctx.Buffer.LineCount() - 1; line > last {
			line = last
		}
	}

	text, ok := ctx.Buffer.Line(line)
	if !ok {
		return cur, false
	}

	var col int
	switch m.Col {
	case ColStart:
		col = 0
	case ColFirstNonBlank:
		// A blank or whitespace-only line lands at column 0.
		col, _ = wordscan.FirstNonSpace(text)
	case ColEnd:
		col = utf8.RuneCountInString(text) - 1
		if col < 0 {
			col = 0
		}
	default:
		return cur, false
	}
	return cur.WithLine(line).WithCol(col), true
}

// documentCandidate jumps to a buffer edge, or to the count-th line when an
// explicit positive count is supplied (1-based, clamped to the last line; an
// explicit count of zero is treated as no count). The desired column is
// preserved across the jump.
func (m Motion) documentCandidate(ctx *Context) (cursor.Position, bool) {
	cur := ctx.Cursor
	buf := ctx.Buffer

	var line int
	if ctx.Count.Active && ctx.Count.Value > 0 {
		line = ctx.Count.Value - 1
		if last := buf.LineCount() - 1; line > last {
			line = last
		}
	} else if m.Edge == EdgeFirst {
		line = 0
	} else {
		line = buf.LineCount() - 1
	}

	col := cur.DesiredCol
	if max := buf.LineLen(line); col > max {
		col = max
	}
	return cur.WithLine(line).WithColAndDesired(col, cur.DesiredCol), true
}
