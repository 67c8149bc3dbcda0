// Package bracket implements depth-tracked bracket matching across lines.
//
// Four pair types are recognized: (), [], {}, and <>. Depth bookkeeping is
// type-specific, so a parenthesis inside square brackets never disturbs the
// square-bracket depth. When the cursor is not on a bracket, the matcher
// hunts forward for the first bracket character of either direction and
// resolves from there.
package bracket

// Lines is the read surface the matcher needs. The engine buffer satisfies it.
type Lines interface {
	Line(i int) (string, bool)
	LineCount() int
}

// Match is the outcome of a matching attempt. When Found is false, Line and
// Col carry the original cursor position, never a sentinel.
type Match struct {
	Line  int
	Col   int
	Found bool
}

// pairs maps each opening bracket to its closing partner.
var pairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// partners maps each closing bracket back to its opener.
var partners = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
	'>': '<',
}

// IsBracket reports whether r is one of the eight bracket characters.
func IsBracket(r rune) bool {
	_, open := pairs[r]
	_, close := partners[r]
	return open || close
}

// MatchAt finds the bracket matching the one at (line, col). When the cursor
// is not on a bracket, the first bracket found scanning forward is resolved
// instead: an opener matches forward, a closer matches backward to an opener
// that necessarily lies at or before the cursor. An unmatched bracket yields
// Found=false with the original position.
func MatchAt(buf Lines, line, col int) Match {
	notFound := Match{Line: line, Col: col}

	r, ok := runeAt(buf, line, col)
	if !ok {
		// Off the end of the line still hunts forward, same as resting on a
		// non-bracket character.
		r = 0
	}

	if _, isOpen := pairs[r]; isOpen {
		return scanForward(buf, line, col, r, notFound)
	}
	if _, isClose := partners[r]; isClose {
		return scanBackward(buf, line, col, r, notFound)
	}

	// Not on a bracket: hunt forward for the first bracket of either kind.
	hl, hc, hr, found := huntForward(buf, line, col)
	if !found {
		return notFound
	}
	if _, isOpen := pairs[hr]; isOpen {
		return scanForward(buf, hl, hc, hr, notFound)
	}
	return scanBackward(buf, hl, hc, hr, notFound)
}

// scanForward finds the closer matching the opener at (line, col), tracking
// nesting depth for this pair type only.
func scanForward(buf Lines, line, col int, open rune, notFound Match) Match {
	close := pairs[open]
	depth := 1

	for l := line; l < buf.LineCount(); l++ {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		runes := []rune(text)
		start := 0
		if l == line {
			start = col + 1
		}
		for c := start; c < len(runes); c++ {
			switch runes[c] {
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					return Match{Line: l, Col: c, Found: true}
				}
			}
		}
	}
	return notFound
}

// scanBackward finds the opener matching the closer at (line, col).
func scanBackward(buf Lines, line, col int, close rune, notFound Match) Match {
	open := partners[close]
	depth := 1

	for l := line; l >= 0; l-- {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		runes := []rune(text)
		start := len(runes) - 1
		if l == line {
			start = col - 1
			if start > len(runes)-1 {
				start = len(runes) - 1
			}
		}
		for c := start; c >= 0; c-- {
			switch runes[c] {
			case close:
				depth++
			case open:
				depth--
				if depth == 0 {
					return Match{Line: l, Col: c, Found: true}
				}
			}
		}
	}
	return notFound
}

// huntForward looks for the first bracket character at or after (line, col).
func huntForward(buf Lines, line, col int) (int, int, rune, bool) {
	for l := line; l < buf.LineCount(); l++ {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		runes := []rune(text)
		start := 0
		if l == line {
			start = col
			if start < 0 {
				start = 0
			}
		}
		for c := start; c < len(runes); c++ {
			if IsBracket(runes[c]) {
				return l, c, runes[c], true
			}
		}
	}
	return 0, 0, 0, false
}

// runeAt returns the rune at (line, col), or false when out of range.
func runeAt(buf Lines, line, col int) (rune, bool) {
	text, ok := buf.Line(line)
	if !ok {
		return 0, false
	}
	runes := []rune(text)
	if col < 0 || col >= len(runes) {
		return 0, false
	}
	return runes[col], true
}
