package motion

import (
	"github.com/dshills/motive/internal/engine/buffer"
	"github.com/dshills/motive/internal/engine/cursor"
)

// Execute runs the motion against ctx and returns the resulting cursor. On
// success the context cursor is replaced; on any gate, not-found, or
// validation failure the cursor is returned unchanged and the context is not
// touched. Motions never return errors and never panic.
func (m Motion) Execute(ctx *Context) cursor.Position {
	if !m.Modes.Contains(ctx.Mode) {
		return ctx.Cursor
	}
	if ctx.Mode == Visual && !ctx.Config.VisualEnabled {
		return ctx.Cursor
	}
	if ctx.Buffer == nil || ctx.Buffer.IsEmpty() {
		return ctx.Cursor
	}

	cand, ok := m.candidate(ctx)
	if !ok {
		return ctx.Cursor
	}
	if !validPosition(ctx.Buffer, cand) {
		return ctx.Cursor
	}
	ctx.Cursor = cand
	return cand
}

// candidate dispatches to the category algorithm.
func (m Motion) candidate(ctx *Context) (cursor.Position, bool) {
	switch m.Kind {
	case KindStep:
		return m.stepCandidate(ctx)
	case KindWord:
		return m.wordCandidate(ctx)
	case KindLine:
		return m.lineCandidate(ctx)
	case KindDocument:
		return m.documentCandidate(ctx)
	case KindSearch:
		return m.searchCandidate(ctx)
	case KindCustom:
		return m.customCandidate(ctx)
	default:
		return ctx.Cursor, false
	}
}

// validPosition reports whether p is a legal cursor position: the line must
// exist, and the column must lie within [0, lineLen], where lineLen (one past
// the last character) is a legal resting column.
func validPosition(buf *buffer.Buffer, p cursor.Position) bool {
	if p.Line < 0 || p.Line >= buf.LineCount() {
		return false
	}
	if p.Col < 0 || p.Col > buf.LineLen(p.Line) {
		return false
	}
	return true
}

// customCandidate delegates to the host-registered function.
func (m Motion) customCandidate(ctx *Context) (cursor.Position, bool) {
	if m.Fn == nil {
		return ctx.Cursor, false
	}
	line, col, ok := m.Fn(ctx)
	if !ok || line < 0 || col < 0 {
		return ctx.Cursor, false
	}
	return ctx.Cursor.WithLine(line).WithCol(col), true
}
