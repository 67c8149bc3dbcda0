package motion

import (
	"github.com/dshills/motive/internal/engine/cursor"
	"github.com/dshills/motive/internal/motion/wordscan"
)

// wordCandidate runs the boundary scanner count times. Partial progress is
// kept: when the buffer edge cuts the run short, the cursor lands on the last
// boundary reached. Only a scan that never moves at all fails.
func (m Motion) wordCandidate(ctx *Context) (cursor.Position, bool) {
	cur := ctx.Cursor
	count := ctx.Count.Get()

	line, col := cur.Line, cur.Col
	moved := false
	for i := 0; i < count; i++ {
		l, c, ok := m.scanOnce(ctx, line, col)
		if !ok {
			break
		}
		line, col, moved = l, c, true
	}
	if !moved {
		return cur, false
	}
	return cur.WithLine(line).WithCol(col), true
}

func (m Motion) scanOnce(ctx *Context, line, col int) (int, int, bool) {
	switch m.Scan {
	case ScanNextStart:
		return wordscan.NextStartAt(ctx.Buffer, line, col, m.Big)
	case ScanEnd:
		return wordscan.EndAt(ctx.Buffer, line, col, m.Big)
	case ScanPrevStart:
		return wordscan.PrevStartAt(ctx.Buffer, line, col, m.Big)
	case ScanPrevEnd:
		return wordscan.PrevEndAt(ctx.Buffer, line, col, m.Big)
	default:
		return 0, 0, false
	}
}
