package search

import (
	"regexp"
	"unicode/utf8"
)

// Direction selects the traversal order.
type Direction uint8

const (
	// Forward searches toward the end of the buffer.
	Forward Direction = iota

	// Backward searches toward the start of the buffer.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Lines is the read surface the engine needs. The engine buffer satisfies it.
type Lines interface {
	Line(i int) (string, bool)
	LineCount() int
}

// Pos is a match location in rune columns.
type Pos struct {
	Line int
	Col  int
}

// Result is the outcome of one occurrence search. When Found is false, Line
// and Col carry the original position.
type Result struct {
	Line  int
	Col   int
	Found bool
}

// Compile compiles a search pattern. Empty and malformed patterns both yield
// (nil, false), meaning "no search performed".
func Compile(pattern string) (*regexp.Regexp, bool) {
	if pattern == "" {
		return nil, false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	return re, true
}

// CompileLiteral compiles a literal substring search by escaping every
// pattern metacharacter.
func CompileLiteral(text string) (*regexp.Regexp, bool) {
	if text == "" {
		return nil, false
	}
	return Compile(regexp.QuoteMeta(text))
}

// WholeWord builds a pattern matching word as a whole word: the escaped
// literal wrapped in word-boundary assertions on both sides.
func WholeWord(word string) string {
	return `\b` + regexp.QuoteMeta(word) + `\b`
}

// Next finds the first occurrence strictly after (line, col). With wrap
// enabled the scan continues from the buffer start back around to the
// original column inclusive.
func Next(buf Lines, line, col int, re *regexp.Regexp, wrap bool) Result {
	notFound := Result{Line: line, Col: col}
	if re == nil {
		return notFound
	}

	if text, ok := buf.Line(line); ok {
		for _, c := range matchCols(text, re) {
			if c > col {
				return Result{Line: line, Col: c, Found: true}
			}
		}
	}
	for l := line + 1; l < buf.LineCount(); l++ {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		if cols := matchCols(text, re); len(cols) > 0 {
			return Result{Line: l, Col: cols[0], Found: true}
		}
	}
	if !wrap {
		return notFound
	}
	for l := 0; l < line && l < buf.LineCount(); l++ {
		text, _ := buf.Line(l)
		if cols := matchCols(text, re); len(cols) > 0 {
			return Result{Line: l, Col: cols[0], Found: true}
		}
	}
	if text, ok := buf.Line(line); ok {
		for _, c := range matchCols(text, re) {
			if c <= col {
				return Result{Line: line, Col: c, Found: true}
			}
		}
	}
	return notFound
}

// Prev finds the last occurrence strictly before (line, col). With wrap
// enabled the scan continues from the buffer end back around to the original
// column inclusive.
func Prev(buf Lines, line, col int, re *regexp.Regexp, wrap bool) Result {
	notFound := Result{Line: line, Col: col}
	if re == nil {
		return notFound
	}

	if text, ok := buf.Line(line); ok {
		if c, found := lastBefore(matchCols(text, re), col); found {
			return Result{Line: line, Col: c, Found: true}
		}
	}
	for l := line - 1; l >= 0; l-- {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		if cols := matchCols(text, re); len(cols) > 0 {
			return Result{Line: l, Col: cols[len(cols)-1], Found: true}
		}
	}
	if !wrap {
		return notFound
	}
	for l := buf.LineCount() - 1; l > line; l-- {
		text, _ := buf.Line(l)
		if cols := matchCols(text, re); len(cols) > 0 {
			return Result{Line: l, Col: cols[len(cols)-1], Found: true}
		}
	}
	if text, ok := buf.Line(line); ok {
		cols := matchCols(text, re)
		for i := len(cols) - 1; i >= 0; i-- {
			if cols[i] >= col {
				return Result{Line: line, Col: cols[i], Found: true}
			}
		}
	}
	return notFound
}

// FindAll returns every occurrence in the buffer in document order.
func FindAll(buf Lines, re *regexp.Regexp) []Pos {
	if re == nil {
		return nil
	}
	var all []Pos
	for l := 0; l < buf.LineCount(); l++ {
		text, ok := buf.Line(l)
		if !ok {
			break
		}
		for _, c := range matchCols(text, re) {
			all = append(all, Pos{Line: l, Col: c})
		}
	}
	return all
}

// matchCols returns the rune columns of every match start in one line, in
// order. The whole line is scanned in one pass so anchors and boundary
// assertions keep their context; FindAll advances past zero-width matches on
// its own.
func matchCols(line string, re *regexp.Regexp) []int {
	var cols []int
	for _, loc := range re.FindAllStringIndex(line, -1) {
		cols = append(cols, utf8.RuneCountInString(line[:loc[0]]))
	}
	return cols
}

// lastBefore returns the greatest column in cols strictly less than col.
func lastBefore(cols []int, col int) (int, bool) {
	for i := len(cols) - 1; i >= 0; i-- {
		if cols[i] < col {
			return cols[i], true
		}
	}
	return 0, false
}
