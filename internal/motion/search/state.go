package search

// State is the per-session search memory: the last committed pattern, its
// direction, and the enumerated matches. All fields are replaced together by
// Set and dropped together by Clear; the state is never partially updated.
type State struct {
	pattern string
	dir     Direction
	matches []Pos
	current int
	active  bool
}

// NewState creates an empty search state.
func NewState() *State {
	return &State{current: -1}
}

// Set replaces the whole state with a new pattern, direction, and match list.
func (s *State) Set(pattern string, dir Direction, matches []Pos) {
	s.pattern = pattern
	s.dir = dir
	s.matches = append([]Pos(nil), matches...)
	s.current = -1
	s.active = true
}

// Clear drops the whole state.
func (s *State) Clear() {
	*s = State{current: -1}
}

// Active reports whether a pattern has been committed.
func (s *State) Active() bool {
	return s.active
}

// Pattern returns the committed pattern, or false when none is set.
func (s *State) Pattern() (string, bool) {
	if !s.active {
		return "", false
	}
	return s.pattern, true
}

// Direction returns the committed direction, or false when none is set.
func (s *State) Direction() (Direction, bool) {
	if !s.active {
		return Forward, false
	}
	return s.dir, true
}

// Matches returns a copy of the enumerated match positions.
func (s *State) Matches() []Pos {
	return append([]Pos(nil), s.matches...)
}

// Current returns the most recently visited match, or false when none.
func (s *State) Current() (Pos, bool) {
	if !s.active || s.current < 0 || s.current >= len(s.matches) {
		return Pos{}, false
	}
	return s.matches[s.current], true
}

// MarkCurrent records pos as the current match if it is in the match list.
func (s *State) MarkCurrent(pos Pos) {
	if !s.active {
		return
	}
	for i, m := range s.matches {
		if m == pos {
			s.current = i
			return
		}
	}
	s.current = -1
}
