package motion

import (
	"github.com/dshills/motive/internal/engine/buffer"
	"github.com/dshills/motive/internal/engine/cursor"
)

// stepCandidate computes directional unit steps: column moves, vertical moves
// with desired-column stickiness, paragraph jumps, and find/till character
// jumps. The repeat count repeats the unit; running against an edge clamps
// rather than fails, except find/till, which fails when the count-th
// occurrence does not exist.
func (m Motion) stepCandidate(ctx *Context) (cursor.Position, bool) {
	cur := ctx.Cursor
	count := ctx.Count.Get()
	buf := ctx.Buffer

	switch m.Dir {
	case StepLeft:
		col := cur.Col - count
		if col < 0 {
			col = 0
		}
		return cur.WithCol(col), true

	case StepRight:
		col := cur.Col + count
		if max := buf.LineLen(cur.Line); col > max {
			col = max
		}
		return cur.WithCol(col), true

	case StepUp, StepDown:
		line := cur.Line
		if m.Dir == StepUp {
			line -= count
		} else {
			line += count
		}
		if line < 0 {
			line = 0
		}
		if last := buf.LineCount() - 1; line > last {
			line = last
		}
		col := cur.DesiredCol
		if max := buf.LineLen(line); col > max {
			col = max
		}
		return cur.WithLine(line).WithColAndDesired(col, cur.DesiredCol), true

	case StepParaForward:
		line := cur.Line
		for i := 0; i < count; i++ {
			line = nextParagraphEdge(buf, line)
		}
		return cursor.New(line, 0), true

	case StepParaBackward:
		line := cur.Line
		for i := 0; i < count; i++ {
			line = prevParagraphEdge(buf, line)
		}
		return cursor.New(line, 0), true

	case StepFindForward, StepTillForward,
		StepFindBackward, StepTillBackward:
		return m.findCandidate(ctx, count)

	default:
		return cur, false
	}
}

// nextParagraphEdge returns the next blank line after line, or the last line
// when none remains.
func nextParagraphEdge(buf *buffer.Buffer, line int) int {
	for l := line + 1; l < buf.LineCount(); l++ {
		if text, ok := buf.Line(l); ok && text == "" {
			return l
		}
	}
	return buf.LineCount() - 1
}

// prevParagraphEdge returns the previous blank line before line, or line 0
// when none remains.
func prevParagraphEdge(buf *buffer.Buffer, line int) int {
	for l := line - 1; l >= 0; l-- {
		if text, ok := buf.Line(l); ok && text == "" {
			return l
		}
	}
	return 0
}

// findCandidate resolves f/F/t/T: jump to (or just before) the count-th
// occurrence of the target character on the current line. No occurrence means
// no movement.
func (m Motion) findCandidate(ctx *Context, count int) (cursor.Position, bool) {
	cur := ctx.Cursor
	if m.Target == 0 {
		return cur, false
	}
	text, ok := ctx.Buffer.Line(cur.Line)
	if !ok {
		return cur, false
	}
	runes := []rune(text)
	forward := m.Dir == StepFindForward || m.Dir == StepTillForward
	till := m.Dir == StepTillForward || m.Dir == StepTillBackward

	col := cur.Col
	for i := 0; i < count; i++ {
		c, found := findRune(runes, col, m.Target, forward)
		if !found {
			return cur, false
		}
		col = c
	}

	if till {
		if forward {
			col--
		} else {
			col++
		}
		if col == cur.Col {
			return cur, false
		}
	}
	return cur.WithCol(col), true
}

// findRune locates the next occurrence of target strictly after (or before)
// col on the line.
func findRune(runes []rune, col int, target rune, forward bool) (int, bool) {
	if forward {
		for c := col + 1; c < len(runes); c++ {
			if runes[c] == target {
				return c, true
			}
		}
		return 0, false
	}
	start := col - 1
	if start > len(runes)-1 {
		start = len(runes) - 1
	}
	for c := start; c >= 0; c-- {
		if runes[c] == target {
			return c, true
		}
	}
	return 0, false
}
