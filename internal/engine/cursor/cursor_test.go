package cursor

import "testing"

func TestNewClampsNegative(t *testing.T) {
	p := New(-3, -7)
	if p.Line != 0 || p.Col != 0 || p.DesiredCol != 0 {
		t.Errorf("New(-3,-7) = %v, want origin", p)
	}
}

func TestWithColResetsDesired(t *testing.T) {
	p := New(2, 5).WithColAndDesired(5, 20)
	p = p.WithCol(3)
	if p.Col != 3 || p.DesiredCol != 3 {
		t.Errorf("WithCol(3) = %v, want Col=3 DesiredCol=3", p)
	}
}

func TestWithLinePreservesColumns(t *testing.T) {
	p := New(0, 4).WithColAndDesired(2, 9)
	p = p.WithLine(6)
	if p.Line != 6 || p.Col != 2 || p.DesiredCol != 9 {
		t.Errorf("WithLine(6) = %v, want (6,2 desired=9)", p)
	}
}

func TestStepTransforms(t *testing.T) {
	tests := []struct {
		name  string
		start Position
		step  func(Position) Position
		want  Position
	}{
		{"left", New(1, 3), Position.Left, Position{1, 2, 2}},
		{"left at zero", New(1, 0), Position.Left, Position{1, 0, 0}},
		{"right", New(1, 3), Position.Right, Position{1, 4, 4}},
		{"up", New(3, 2), Position.Up, Position{2, 2, 2}},
		{"up at zero", New(0, 2), Position.Up, Position{0, 2, 2}},
		{"down", New(3, 2), Position.Down, Position{4, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.step(tt.start); !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformsDoNotMutate(t *testing.T) {
	p := New(1, 1)
	_ = p.Right().Down().WithCol(9)
	if !p.Equal(New(1, 1)) {
		t.Errorf("original position changed: %v", p)
	}
}
