package buffer

import "testing"

func TestFromStringSplitting(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", nil},
		{"single line", "hello", []string{"hello"}},
		{"two lines", "hello\nworld", []string{"hello", "world"}},
		{"trailing newline", "hello\nworld\n", []string{"hello", "world"}},
		{"lone newline", "\n", []string{""}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"cr only", "a\rb", []string{"a", "b"}},
		{"blank middle line", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.text)
			if b.LineCount() != len(tt.want) {
				t.Fatalf("LineCount() = %d, want %d", b.LineCount(), len(tt.want))
			}
			for i, want := range tt.want {
				got, ok := b.Line(i)
				if !ok {
					t.Fatalf("Line(%d) absent, want %q", i, want)
				}
				if got != want {
					t.Errorf("Line(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestLineAbsent(t *testing.T) {
	b := FromString("one\ntwo")

	for _, i := range []int{-1, 2, 100} {
		if _, ok := b.Line(i); ok {
			t.Errorf("Line(%d) should be absent", i)
		}
	}
	if b.LineLen(-1) != 0 || b.LineLen(2) != 0 {
		t.Error("LineLen for absent lines should be 0")
	}
}

func TestIsEmptyDistinction(t *testing.T) {
	if !New().IsEmpty() {
		t.Error("zero-line buffer should be empty")
	}
	if !FromString("").IsEmpty() {
		t.Error("buffer from empty string should be empty")
	}
	if FromString("\n").IsEmpty() {
		t.Error("buffer with one blank line is not an empty document")
	}
	if FromLines([]string{""}).IsEmpty() {
		t.Error("buffer with one empty-string line is not an empty document")
	}
}

func TestLineLenRunes(t *testing.T) {
	b := FromString("héllo\n日本語")
	if got := b.LineLen(0); got != 5 {
		t.Errorf("LineLen(0) = %d, want 5", got)
	}
	if got := b.LineLen(1); got != 3 {
		t.Errorf("LineLen(1) = %d, want 3", got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	b := FromString("a\nb\nc")
	if got := b.Text(); got != "a\nb\nc" {
		t.Errorf("Text() = %q", got)
	}
}

func TestSetTextBumpsRevision(t *testing.T) {
	b := FromString("before")
	rev := b.RevisionID()
	b.SetText("after")
	if b.RevisionID() == rev {
		t.Error("SetText should change the revision ID")
	}
	if got, _ := b.Line(0); got != "after" {
		t.Errorf("Line(0) = %q, want %q", got, "after")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	b := FromString("a\nb")
	lines := b.Lines()
	lines[0] = "mutated"
	if got, _ := b.Line(0); got != "a" {
		t.Error("mutating the returned slice must not affect the buffer")
	}
}
