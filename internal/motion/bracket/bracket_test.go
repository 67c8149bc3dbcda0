package bracket

import "testing"

type fakeLines []string

func (f fakeLines) Line(i int) (string, bool) {
	if i < 0 || i >= len(f) {
		return "", false
	}
	return f[i], true
}

func (f fakeLines) LineCount() int { return len(f) }

func TestMatchAt(t *testing.T) {
	tests := []struct {
		name      string
		buf       fakeLines
		line, col int
		wantLine  int
		wantCol   int
		found     bool
	}{
		{"simple paren forward", fakeLines{"(hello world)"}, 0, 0, 0, 12, true},
		{"simple paren backward", fakeLines{"(hello world)"}, 0, 12, 0, 0, true},
		{"nested same type", fakeLines{"((a) b)"}, 0, 0, 0, 6, true},
		{"inner nested", fakeLines{"((a) b)"}, 0, 1, 0, 3, true},
		{"type-specific depth", fakeLines{"[ (x) ]"}, 0, 0, 0, 6, true},
		{"angle pair", fakeLines{"<T>"}, 0, 0, 0, 2, true},
		{"brace backward nested", fakeLines{"{a {b} c}"}, 0, 8, 0, 0, true},
		{"across lines forward", fakeLines{"func {", "  body", "}"}, 0, 5, 2, 0, true},
		{"across lines backward", fakeLines{"func {", "  body", "}"}, 2, 0, 0, 5, true},
		{"off bracket hunts forward to opener", fakeLines{"ab (cd)"}, 0, 0, 0, 6, true},
		{"off bracket hunts to closer", fakeLines{"(ab cd) e"}, 0, 3, 0, 0, true},
		{"hunt crosses lines", fakeLines{"no brackets", "here (x)"}, 0, 0, 1, 7, true},
		{"unmatched opener", fakeLines{"(abc"}, 0, 0, 0, 0, false},
		{"unmatched closer", fakeLines{"abc)"}, 0, 3, 0, 3, false},
		{"no brackets at all", fakeLines{"plain text"}, 0, 2, 0, 2, false},
		{"mixed nesting", fakeLines{"([{x}])"}, 0, 1, 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MatchAt(tt.buf, tt.line, tt.col)
			if m.Found != tt.found {
				t.Fatalf("Found = %v, want %v (match %+v)", m.Found, tt.found, m)
			}
			if tt.found && (m.Line != tt.wantLine || m.Col != tt.wantCol) {
				t.Errorf("match at (%d,%d), want (%d,%d)", m.Line, m.Col, tt.wantLine, tt.wantCol)
			}
			if !tt.found && (m.Line != tt.line || m.Col != tt.col) {
				t.Errorf("not-found match should carry original position, got (%d,%d)", m.Line, m.Col)
			}
		})
	}
}

// Matching from an opener and again from the reported closer must return to
// the opener.
func TestMatchRoundTrip(t *testing.T) {
	bufs := []fakeLines{
		{"(hello world)"},
		{"((a) [b] {c})"},
		{"start (", "  [nested { deep } ]", ") end"},
	}

	for _, buf := range bufs {
		for l := 0; l < buf.LineCount(); l++ {
			text, _ := buf.Line(l)
			for c, r := range []rune(text) {
				if !IsBracket(r) {
					continue
				}
				first := MatchAt(buf, l, c)
				if !first.Found {
					t.Errorf("buffer %v: bracket at (%d,%d) unmatched", buf, l, c)
					continue
				}
				back := MatchAt(buf, first.Line, first.Col)
				if !back.Found || back.Line != l || back.Col != c {
					t.Errorf("buffer %v: round trip from (%d,%d) via (%d,%d) landed at (%d,%d)",
						buf, l, c, first.Line, first.Col, back.Line, back.Col)
				}
			}
		}
	}
}
