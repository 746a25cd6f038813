package game

import "testing"

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); err == nil {
			t.Errorf("NewGrid(%d, %d) should fail", dims[0], dims[1])
		}
	}
	if _, err := NewGrid(1, 1); err != nil {
		t.Errorf("NewGrid(1, 1) failed: %v", err)
	}
}

func TestGridInBound(t *testing.T) {
	g, err := NewGrid(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		p    Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{9, 9}, true},
		{Position{9, 0}, true},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
		{Position{10, 0}, false},
		{Position{0, 10}, false},
	}
	for _, c := range cases {
		if got := g.InBound(c.p); got != c.want {
			t.Errorf("InBound(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestPositionStep(t *testing.T) {
	p := Position{X: 4, Y: 4}
	cases := []struct {
		d    Direction
		want Position
	}{
		{DirUp, Position{4, 3}},
		{DirDown, Position{4, 5}},
		{DirLeft, Position{3, 4}},
		{DirRight, Position{5, 4}},
	}
	for _, c := range cases {
		if got := p.Step(c.d); got != c.want {
			t.Errorf("%v.Step(%v) = %v, want %v", p, c.d, got, c.want)
		}
	}
}

func TestPositionStepIgnoresBounds(t *testing.T) {
	// Step is pure arithmetic; walking off the board is the caller's problem.
	if got := (Position{0, 0}).Step(DirUp); got != (Position{0, -1}) {
		t.Errorf("Step(DirUp) from origin = %v, want (0,-1)", got)
	}
}
