package motion

import (
	"github.com/dshills/motive/internal/engine/buffer"
	"github.com/dshills/motive/internal/engine/cursor"
	"github.com/dshills/motive/internal/motion/search"
)

// Config holds the declarative movement parameters a session applies to
// every motion. The repeat count is not part of Config; it arrives per
// dispatch through CountState.
type Config struct {
	// Wrap enables search wraparound at the buffer edges.
	Wrap bool

	// ScrollOnEdge asks the host view to scroll when a motion pushes the
	// cursor against the viewport edge. The engine records the intent; the
	// renderer acts on it.
	ScrollOnEdge bool

	// VisualEnabled allows motions to fire in visual mode.
	VisualEnabled bool
}

// DefaultConfig returns the stock movement configuration.
func DefaultConfig() Config {
	return Config{Wrap: true, ScrollOnEdge: true, VisualEnabled: true}
}

// Context is the execution context one motion runs against. A motion reads
// the buffer and cursor through it and, on success, replaces the cursor
// value; the buffer is never written.
type Context struct {
	// Buffer is the document being navigated.
	Buffer *buffer.Buffer

	// Cursor is the current caret. Execute replaces it on success.
	Cursor cursor.Position

	// Mode is the active editing mode.
	Mode Mode

	// Count is the pending repeat count.
	Count CountState

	// Config is the session's movement configuration.
	Config Config

	// Search is the session's search memory. Search-based motions read and
	// update it; everything else leaves it alone.
	Search *search.State
}

// NewContext builds a context with defaults for a buffer.
func NewContext(buf *buffer.Buffer) *Context {
	return &Context{
		Buffer: buf,
		Cursor: cursor.New(0, 0),
		Mode:   Normal,
		Config: DefaultConfig(),
		Search: search.NewState(),
	}
}
