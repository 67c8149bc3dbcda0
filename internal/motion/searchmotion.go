package motion

import (
	"github.com/dshills/motive/internal/engine/cursor"
	"github.com/dshills/motive/internal/motion/bracket"
	"github.com/dshills/motive/internal/motion/search"
	"github.com/dshills/motive/internal/motion/wordscan"
)

// searchCandidate resolves the search-based family. These motions consume no
// repeat count: the engine result decides the landing position, and a miss is
// a silent no-op.
func (m Motion) searchCandidate(ctx *Context) (cursor.Position, bool) {
	cur := ctx.Cursor

	switch m.Op {
	case OpBracket:
		match := bracket.MatchAt(ctx.Buffer, cur.Line, cur.Col)
		if !match.Found {
			return cur, false
		}
		return cur.WithLine(match.Line).WithCol(match.Col), true

	case OpNext, OpPrev:
		return m.repeatSearch(ctx)

	case OpWordForward, OpWordBackward:
		return m.wordSearch(ctx)

	default:
		return cur, false
	}
}

// repeatSearch reruns the committed search from the cursor, in the recorded
// direction or its opposite.
func (m Motion) repeatSearch(ctx *Context) (cursor.Position, bool) {
	cur := ctx.Cursor
	if ctx.Search == nil {
		return cur, false
	}
	pattern, ok := ctx.Search.Pattern()
	if !ok {
		return cur, false
	}
	dir, _ := ctx.Search.Direction()
	if m.Op == OpPrev {
		dir = dir.Opposite()
	}
	re, ok := search.Compile(pattern)
	if !ok {
		return cur, false
	}

	var r search.Result
	if dir == search.Forward {
		r = search.Next(ctx.Buffer, cur.Line, cur.Col, re, ctx.Config.Wrap)
	} else {
		r = search.Prev(ctx.Buffer, cur.Line, cur.Col, re, ctx.Config.Wrap)
	}
	if !r.Found {
		return cur, false
	}
	ctx.Search.MarkCurrent(search.Pos{Line: r.Line, Col: r.Col})
	return cur.WithLine(r.Line).WithCol(r.Col), true
}

// wordSearch commits a whole-word search for the word under the cursor and
// jumps to its first occurrence in the motion's direction. Resting on
// whitespace or punctuation means there is no word to search for.
func (m Motion) wordSearch(ctx *Context) (cursor.Position, bool) {
	cur := ctx.Cursor
	if ctx.Search == nil {
		return cur, false
	}
	text, ok := ctx.Buffer.Line(cur.Line)
	if !ok {
		return cur, false
	}
	word, ok := wordscan.WordAt(text, cur.Col)
	if !ok {
		return cur, false
	}

	pattern := search.WholeWord(word)
	re, ok := search.Compile(pattern)
	if !ok {
		return cur, false
	}
	dir := search.Forward
	if m.Op == OpWordBackward {
		dir = search.Backward
	}
	ctx.Search.Set(pattern, dir, search.FindAll(ctx.Buffer, re))

	var r search.Result
	if dir == search.Forward {
		r = search.Next(ctx.Buffer, cur.Line, cur.Col, re, ctx.Config.Wrap)
	} else {
		r = search.Prev(ctx.Buffer, cur.Line, cur.Col, re, ctx.Config.Wrap)
	}
	if !r.Found {
		return cur, false
	}
	ctx.Search.MarkCurrent(search.Pos{Line: r.Line, Col: r.Col})
	return cur.WithLine(r.Line).WithCol(r.Col), true
}
