package motion

import "github.com/dshills/motive/internal/motion/search"

// InputPhase is the state of the interactive pattern-entry machine.
type InputPhase uint8

const (
	// InputIdle means no pattern entry is in progress.
	InputIdle InputPhase = iota

	// InputCollecting means the prompt is open and accepting characters.
	InputCollecting
)

// Input is the interactive search-entry state machine: the only component
// that transitions a session into and out of the SearchInput mode. While
// collecting, the session's search memory is untouched; only Confirm commits
// anything, and Cancel restores the prior mode with no other effect.
type Input struct {
	phase   InputPhase
	dir     search.Direction
	pattern []rune
	caret   int
	prev    Mode
}

// NewInput creates an idle pattern-entry machine.
func NewInput() *Input {
	return &Input{}
}

// Phase returns the current phase.
func (in *Input) Phase() InputPhase {
	return in.phase
}

// Direction returns the direction of the entry in progress.
func (in *Input) Direction() search.Direction {
	return in.dir
}

// Pattern returns the text collected so far.
func (in *Input) Pattern() string {
	return string(in.pattern)
}

// Caret returns the caret position within the collected text.
func (in *Input) Caret() int {
	return in.caret
}

// Start opens the prompt. Entry can only begin from normal or visual mode;
// anywhere else it is refused.
func (in *Input) Start(ctx *Context, dir search.Direction) bool {
	if ctx.Mode != Normal && ctx.Mode != Visual {
		return false
	}
	in.phase = InputCollecting
	in.dir = dir
	in.pattern = in.pattern[:0]
	in.caret = 0
	in.prev = ctx.Mode
	ctx.Mode = SearchInput
	return true
}

// Type inserts a character at the caret.
func (in *Input) Type(r rune) {
	if in.phase != InputCollecting {
		return
	}
	in.pattern = append(in.pattern, 0)
	copy(in.pattern[in.caret+1:], in.pattern[in.caret:])
	in.pattern[in.caret] = r
	in.caret++
}

// Backspace removes the character before the caret.
func (in *Input) Backspace() {
	if in.phase != InputCollecting || in.caret == 0 {
		return
	}
	in.pattern = append(in.pattern[:in.caret-1], in.pattern[in.caret:]...)
	in.caret--
}

// Confirm closes the prompt, commits the pattern to the session's search
// memory, and performs one search from the cursor in the entry direction.
// An empty or malformed pattern commits nothing and reports false; a valid
// pattern with no occurrence commits the state but leaves the cursor alone.
func (in *Input) Confirm(ctx *Context) bool {
	if in.phase != InputCollecting {
		return false
	}
	in.phase = InputIdle
	ctx.Mode = in.prev

	re, ok := search.Compile(string(in.pattern))
	if !ok || ctx.Search == nil {
		return false
	}
	ctx.Search.Set(string(in.pattern), in.dir, search.FindAll(ctx.Buffer, re))

	cur := ctx.Cursor
	var r search.Result
	if in.dir == search.Forward {
		r = search.Next(ctx.Buffer, cur.Line, cur.Col, re, ctx.Config.Wrap)
	} else {
		r = search.Prev(ctx.Buffer, cur.Line, cur.Col, re, ctx.Config.Wrap)
	}
	if !r.Found {
		return false
	}
	ctx.Search.MarkCurrent(search.Pos{Line: r.Line, Col: r.Col})
	ctx.Cursor = cur.WithLine(r.Line).WithCol(r.Col)
	return true
}

// Cancel closes the prompt and restores the prior mode. The session's search
// memory and cursor are untouched.
func (in *Input) Cancel(ctx *Context) {
	if in.phase != InputCollecting {
		return
	}
	in.phase = InputIdle
	in.pattern = in.pattern[:0]
	in.caret = 0
	ctx.Mode = in.prev
}
