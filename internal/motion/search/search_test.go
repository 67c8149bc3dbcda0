package search

import "testing"

type fakeLines []string

func (f fakeLines) Line(i int) (string, bool) {
	if i < 0 || i >= len(f) {
		return "", false
	}
	return f[i], true
}

func (f fakeLines) LineCount() int { return len(f) }

func TestCompile(t *testing.T) {
	if _, ok := Compile(""); ok {
		t.Error("empty pattern should not compile")
	}
	if _, ok := Compile("[unclosed"); ok {
		t.Error("malformed pattern should not compile")
	}
	if _, ok := Compile(`wo\w+`); !ok {
		t.Error("valid pattern should compile")
	}
	if _, ok := CompileLiteral("a.b*c"); !ok {
		t.Error("literal with metacharacters should compile")
	}
}

func TestCompileLiteralEscapes(t *testing.T) {
	re, ok := CompileLiteral("a.c")
	if !ok {
		t.Fatal("CompileLiteral failed")
	}
	if re.MatchString("abc") {
		t.Error("escaped dot must not match an arbitrary character")
	}
	if !re.MatchString("a.c") {
		t.Error("escaped literal must match itself")
	}
}

func TestNextForwardLiteral(t *testing.T) {
	buf := fakeLines{"hello, world"}
	re, _ := CompileLiteral("world")

	r := Next(buf, 0, 0, re, true)
	if !r.Found || r.Line != 0 || r.Col != 7 {
		t.Errorf("Next = %+v, want (0,7,true)", r)
	}
}

func TestPrevBackwardLiteral(t *testing.T) {
	buf := fakeLines{"hello, world"}
	re, _ := CompileLiteral("hello")

	r := Prev(buf, 0, 7, re, true)
	if !r.Found || r.Line != 0 || r.Col != 0 {
		t.Errorf("Prev = %+v, want (0,0,true)", r)
	}
}

func TestNextStrictlyAfter(t *testing.T) {
	buf := fakeLines{"foo foo"}
	re, _ := CompileLiteral("foo")

	// Starting on the first match must report the second, not itself.
	r := Next(buf, 0, 0, re, false)
	if !r.Found || r.Col != 4 {
		t.Errorf("Next = %+v, want col 4", r)
	}
}

func TestNextWraparound(t *testing.T) {
	buf := fakeLines{"alpha", "beta", "gamma"}
	re, _ := CompileLiteral("alpha")

	r := Next(buf, 1, 0, re, true)
	if !r.Found || r.Line != 0 || r.Col != 0 {
		t.Errorf("wrapped Next = %+v, want (0,0,true)", r)
	}

	r = Next(buf, 1, 0, re, false)
	if r.Found {
		t.Errorf("Next without wrap = %+v, want not found", r)
	}
	if r.Line != 1 || r.Col != 0 {
		t.Errorf("not-found result should carry original position, got %+v", r)
	}
}

func TestPrevWraparound(t *testing.T) {
	buf := fakeLines{"alpha", "beta", "gamma"}
	re, _ := CompileLiteral("gamma")

	r := Prev(buf, 1, 0, re, true)
	if !r.Found || r.Line != 2 || r.Col != 0 {
		t.Errorf("wrapped Prev = %+v, want (2,0,true)", r)
	}

	r = Prev(buf, 1, 0, re, false)
	if r.Found {
		t.Errorf("Prev without wrap = %+v, want not found", r)
	}
}

// k consecutive forward searches over a pattern with k occurrences must
// visit every occurrence exactly once before repeating.
func TestWraparoundCompleteness(t *testing.T) {
	buf := fakeLines{"x ab x", "ab", "c ab ab"}
	re, _ := CompileLiteral("ab")

	want := []Pos{{0, 2}, {1, 0}, {2, 2}, {2, 5}}
	if got := FindAll(buf, re); len(got) != len(want) {
		t.Fatalf("FindAll = %v, want %v", got, want)
	}

	starts := []Pos{{0, 0}, {1, 1}, {2, 6}}
	for _, start := range starts {
		seen := make(map[Pos]int)
		line, col := start.Line, start.Col
		for i := 0; i < len(want); i++ {
			r := Next(buf, line, col, re, true)
			if !r.Found {
				t.Fatalf("start %v: search %d found nothing", start, i)
			}
			seen[Pos{r.Line, r.Col}]++
			line, col = r.Line, r.Col
		}
		for _, w := range want {
			if seen[w] != 1 {
				t.Errorf("start %v: occurrence %v visited %d times, want 1", start, w, seen[w])
			}
		}
	}
}

// Anchors and boundary assertions must see the whole line, not the tail
// left over from a previous match.
func TestAnchoredPatterns(t *testing.T) {
	buf := fakeLines{"foofoo"}
	re, ok := Compile("^foo")
	if !ok {
		t.Fatal("pattern should compile")
	}

	all := FindAll(buf, re)
	if len(all) != 1 || all[0] != (Pos{0, 0}) {
		t.Errorf("FindAll ^foo = %v, want [(0,0)]", all)
	}
	if r := Next(buf, 0, 0, re, true); !r.Found || r.Line != 0 || r.Col != 0 {
		t.Errorf("wrapped Next ^foo = %+v, want (0,0,true)", r)
	}

	buf = fakeLines{"abab"}
	re, ok = Compile(`\bab`)
	if !ok {
		t.Fatal("pattern should compile")
	}
	all = FindAll(buf, re)
	if len(all) != 1 || all[0] != (Pos{0, 0}) {
		t.Errorf(`FindAll \bab = %v, want [(0,0)]`, all)
	}

	buf = fakeLines{"end mid end"}
	re, _ = Compile("end$")
	all = FindAll(buf, re)
	if len(all) != 1 || all[0] != (Pos{0, 8}) {
		t.Errorf("FindAll end$ = %v, want [(0,8)]", all)
	}
}

func TestZeroWidthMatchAdvances(t *testing.T) {
	buf := fakeLines{"abc"}
	re, ok := Compile("x*") // matches the empty string everywhere
	if !ok {
		t.Fatal("pattern should compile")
	}

	r := Next(buf, 0, 0, re, true)
	if !r.Found || r.Col != 1 {
		t.Errorf("Next after zero-width = %+v, want col 1", r)
	}

	// FindAll must terminate and yield one match per scan position.
	all := FindAll(buf, re)
	if len(all) != 4 {
		t.Errorf("FindAll zero-width matches = %d, want 4", len(all))
	}
}

func TestNilPatternIsNoSearch(t *testing.T) {
	buf := fakeLines{"abc"}
	if r := Next(buf, 0, 0, nil, true); r.Found {
		t.Error("nil pattern must perform no search")
	}
	if r := Prev(buf, 0, 0, nil, true); r.Found {
		t.Error("nil pattern must perform no search")
	}
	if all := FindAll(buf, nil); all != nil {
		t.Error("nil pattern must enumerate nothing")
	}
}

func TestWholeWord(t *testing.T) {
	re, ok := Compile(WholeWord("cat"))
	if !ok {
		t.Fatal("whole-word pattern should compile")
	}
	if !re.MatchString("a cat sat") {
		t.Error("should match standalone word")
	}
	if re.MatchString("concatenate") {
		t.Error("should not match inside a longer word")
	}

	re, ok = Compile(WholeWord("a+b"))
	if !ok {
		t.Fatal("whole-word pattern with metacharacters should compile")
	}
	if !re.MatchString("x a+b y") {
		t.Error("metacharacters should be escaped, not interpreted")
	}
}

func TestUnicodeColumns(t *testing.T) {
	buf := fakeLines{"héllo wörld"}
	re, _ := CompileLiteral("wörld")

	r := Next(buf, 0, 0, re, false)
	if !r.Found || r.Col != 6 {
		t.Errorf("Next = %+v, want rune column 6", r)
	}
}

func TestStateSetAndClear(t *testing.T) {
	s := NewState()
	if s.Active() {
		t.Error("new state should be inactive")
	}
	if _, ok := s.Pattern(); ok {
		t.Error("inactive state should report no pattern")
	}

	s.Set("foo", Backward, []Pos{{0, 1}, {2, 3}})
	if p, ok := s.Pattern(); !ok || p != "foo" {
		t.Errorf("Pattern = %q,%v", p, ok)
	}
	if d, ok := s.Direction(); !ok || d != Backward {
		t.Errorf("Direction = %v,%v", d, ok)
	}
	if len(s.Matches()) != 2 {
		t.Errorf("Matches = %v", s.Matches())
	}

	s.MarkCurrent(Pos{2, 3})
	if cur, ok := s.Current(); !ok || cur != (Pos{2, 3}) {
		t.Errorf("Current = %v,%v", cur, ok)
	}

	s.Clear()
	if s.Active() {
		t.Error("cleared state should be inactive")
	}
	if _, ok := s.Direction(); ok {
		t.Error("cleared state should report no direction")
	}
	if len(s.Matches()) != 0 {
		t.Error("cleared state should hold no matches")
	}
}
