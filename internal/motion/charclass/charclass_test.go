package charclass

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{"lowercase letter", 'a', Word},
		{"uppercase letter", 'Z', Word},
		{"digit", '7', Word},
		{"underscore", '_', Word},
		{"unicode letter", 'é', Word},
		{"cjk letter", '語', Word},
		{"space", ' ', Whitespace},
		{"tab", '\t', Whitespace},
		{"newline", '\n', Whitespace},
		{"nbsp", ' ', Whitespace},
		{"hyphen", '-', Punct},
		{"dot", '.', Punct},
		{"paren", '(', Punct},
		{"at sign", '@', Punct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.r); got != tt.want {
				t.Errorf("Of(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestPredicatesAgree(t *testing.T) {
	for _, r := range "a7_ \t-.(é語" {
		c := Of(r)
		if IsWord(r) != (c == Word) {
			t.Errorf("IsWord(%q) disagrees with Of", r)
		}
		if IsSpace(r) != (c == Whitespace) {
			t.Errorf("IsSpace(%q) disagrees with Of", r)
		}
		if IsPunct(r) != (c == Punct) {
			t.Errorf("IsPunct(%q) disagrees with Of", r)
		}
	}
}
