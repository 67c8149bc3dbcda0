package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/motive/internal/config"
	"github.com/dshills/motive/internal/engine/buffer"
	"github.com/dshills/motive/internal/engine/cursor"
	"github.com/dshills/motive/internal/motion"
	"github.com/dshills/motive/internal/motion/search"
)

// Control keys the dispatcher recognizes.
const (
	keyEscape    = 0x1b
	keyBackspace = 0x7f
)

// Session is one editing session.
type Session struct {
	id     string
	ctx    *motion.Context
	input  *motion.Input
	keymap *config.Keymap
	custom map[string]motion.Motion

	// Pending dispatch state.
	pendingKeys   string
	pendingMotion *motion.Motion // waiting for a find/till target
}

// Option configures a session.
type Option func(*Session)

// WithConfig applies movement settings from the loaded configuration.
func WithConfig(cfg config.Config) Option {
	return func(s *Session) {
		s.ctx.Config = motion.Config{
			Wrap:          cfg.Movement.WrapSearch,
			ScrollOnEdge:  cfg.Movement.ScrollOnEdge,
			VisualEnabled: cfg.Movement.VisualMode,
		}
	}
}

// WithKeymap layers user bindings over the builtin table.
func WithKeymap(km *config.Keymap) Option {
	return func(s *Session) {
		if km != nil {
			s.keymap = km
		}
	}
}

// WithCustomMotions registers host-provided motions, addressable by name
// through the keymap or directly by their key sequence.
func WithCustomMotions(ms []motion.Motion) Option {
	return func(s *Session) {
		for _, m := range ms {
			s.custom[m.Name] = m
		}
	}
}

// New creates a session over a buffer.
func New(buf *buffer.Buffer, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		ctx:    motion.NewContext(buf),
		input:  motion.NewInput(),
		keymap: config.NewKeymap(),
		custom: make(map[string]motion.Motion),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Buffer returns the session's buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.ctx.Buffer
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() cursor.Position {
	return s.ctx.Cursor
}

// Mode returns the current editing mode.
func (s *Session) Mode() motion.Mode {
	return s.ctx.Mode
}

// SetMode switches the editing mode and drops pending dispatch state.
func (s *Session) SetMode(m motion.Mode) {
	s.ctx.Mode = m
	s.resetPending()
}

// Count returns the pending repeat count state.
func (s *Session) Count() motion.CountState {
	return s.ctx.Count
}

// Pending returns the partially entered key sequence.
func (s *Session) Pending() string {
	return s.pendingKeys
}

// SearchPattern returns the text collected in an open search prompt.
func (s *Session) SearchPattern() string {
	return s.input.Pattern()
}

// SearchState returns the session's committed search memory.
func (s *Session) SearchState() *search.State {
	return s.ctx.Search
}

// SearchLiteral commits a literal text search, with every pattern
// metacharacter escaped, and jumps to the nearest occurrence in dir. The
// escaped form is what gets committed, so searchNext and searchPrev repeat
// the same literal.
func (s *Session) SearchLiteral(text string, dir search.Direction) bool {
	re, ok := search.CompileLiteral(text)
	if !ok {
		return false
	}
	s.ctx.Search.Set(re.String(), dir, search.FindAll(s.ctx.Buffer, re))

	cur := s.ctx.Cursor
	var r search.Result
	if dir == search.Forward {
		r = search.Next(s.ctx.Buffer, cur.Line, cur.Col, re, s.ctx.Config.Wrap)
	} else {
		r = search.Prev(s.ctx.Buffer, cur.Line, cur.Col, re, s.ctx.Config.Wrap)
	}
	if !r.Found {
		return false
	}
	s.ctx.Search.MarkCurrent(search.Pos{Line: r.Line, Col: r.Col})
	s.ctx.Cursor = cur.WithLine(r.Line).WithCol(r.Col)
	return true
}

// Do executes a motion by name against the session, resolving builtins and
// custom motions alike. The pending count is consumed.
func (s *Session) Do(name string) (cursor.Position, bool) {
	m, ok := s.resolveName(name)
	if !ok {
		return s.ctx.Cursor, false
	}
	return s.execute(m), true
}

// HandleKey feeds one keystroke to the dispatcher and reports whether the
// cursor moved.
func (s *Session) HandleKey(r rune) bool {
	if s.ctx.Mode == motion.SearchInput {
		return s.handleSearchKey(r)
	}

	if s.pendingMotion != nil {
		m := s.pendingMotion.WithTarget(r)
		s.pendingMotion = nil
		before := s.ctx.Cursor
		return !s.execute(m).Equal(before)
	}

	if r == keyEscape {
		s.resetPending()
		return false
	}

	// Count digits. A leading zero is the line-start motion, not a count.
	if s.pendingKeys == "" && (motion.IsCountStart(r) || (s.ctx.Count.Active && r >= '0' && r <= '9')) {
		s.ctx.Count.AccumulateDigit(r)
		return false
	}

	if s.pendingKeys == "" && (r == '/' || r == '?') {
		dir := search.Forward
		if r == '?' {
			dir = search.Backward
		}
		s.input.Start(s.ctx, dir)
		return false
	}

	keys := s.pendingKeys + string(r)
	if m, ok := s.resolveKeys(keys); ok {
		s.pendingKeys = ""
		if m.NeedsTarget() {
			s.pendingMotion = &m
			return false
		}
		before := s.ctx.Cursor
		return !s.execute(m).Equal(before)
	}
	if s.isPrefix(keys) {
		s.pendingKeys = keys
		return false
	}
	s.resetPending()
	return false
}

// isPrefix reports whether keys could still grow into a builtin, keymap, or
// custom motion binding.
func (s *Session) isPrefix(keys string) bool {
	if motion.IsPrefix(keys) {
		return true
	}
	if s.keymap.IsPrefix(keys) {
		return true
	}
	for _, m := range s.custom {
		if len(m.Keys) > len(keys) && strings.HasPrefix(m.Keys, keys) {
			return true
		}
	}
	return false
}

// handleSearchKey routes keys while the search prompt is open.
func (s *Session) handleSearchKey(r rune) bool {
	switch r {
	case '\r', '\n':
		return s.input.Confirm(s.ctx)
	case keyEscape:
		s.input.Cancel(s.ctx)
		return false
	case keyBackspace, '\b':
		s.input.Backspace()
		return false
	default:
		s.input.Type(r)
		return false
	}
}

// resolveKeys maps a key sequence to a motion, letting user bindings mask or
// redirect the builtins.
func (s *Session) resolveKeys(keys string) (motion.Motion, bool) {
	if s.keymap.Masked(keys) {
		return motion.Motion{}, false
	}
	if name, ok := s.keymap.Motion(keys); ok {
		return s.resolveName(name)
	}
	if m, ok := motion.Lookup(keys, s.ctx.Mode); ok {
		return m, true
	}
	for _, m := range s.custom {
		if m.Keys == keys && m.Modes.Contains(s.ctx.Mode) {
			return m, true
		}
	}
	return motion.Motion{}, false
}

// resolveName maps a motion name to a builtin or custom motion.
func (s *Session) resolveName(name string) (motion.Motion, bool) {
	if m, ok := motion.ByName(name); ok {
		return m, true
	}
	m, ok := s.custom[name]
	return m, ok
}

// execute runs the motion and consumes the pending count.
func (s *Session) execute(m motion.Motion) cursor.Position {
	pos := m.Execute(s.ctx)
	s.ctx.Count.Reset()
	return pos
}

func (s *Session) resetPending() {
	s.pendingKeys = ""
	s.pendingMotion = nil
	s.ctx.Count.Reset()
}
