package game

import "testing"

func mustGrid(t *testing.T, w, h int) Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func positionsEqual(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(mustGrid(t, 10, 10), NewRand(1))

	want := []Position{{0, 2}, {0, 1}, {0, 0}}
	if !positionsEqual(s.Segments, want) {
		t.Errorf("starting segments = %v, want %v", s.Segments, want)
	}
	if s.Heading != DirDown {
		t.Errorf("starting heading = %v, want down", s.Heading)
	}
	if s.State != SnakeAlive {
		t.Errorf("starting state = %v, want alive", s.State)
	}
	if s.occupies(s.Food) {
		t.Errorf("food %v spawned on the body %v", s.Food, s.Segments)
	}
}

func TestChangeDirectionIgnoresReversal(t *testing.T) {
	s := NewSnake(mustGrid(t, 10, 10), NewRand(1))

	s.ChangeDirection(DirUp) // opposite of down
	if s.Heading != DirDown {
		t.Errorf("reversal accepted: heading = %v, want down", s.Heading)
	}

	s.ChangeDirection(DirLeft)
	if s.Heading != DirLeft {
		t.Errorf("heading = %v, want left", s.Heading)
	}

	s.ChangeDirection(DirRight) // opposite of the new heading
	if s.Heading != DirLeft {
		t.Errorf("reversal accepted: heading = %v, want left", s.Heading)
	}
}

func TestChangeDirectionLastRequestWins(t *testing.T) {
	s := NewSnake(mustGrid(t, 10, 10), NewRand(1))

	// Several requests between two ticks: no queueing, each overwrites.
	s.ChangeDirection(DirLeft)
	s.ChangeDirection(DirRight) // reversal of left, ignored
	s.ChangeDirection(DirDown)
	if s.Heading != DirDown {
		t.Errorf("heading = %v, want down", s.Heading)
	}
}

func TestAdvanceMove(t *testing.T) {
	s := NewSnake(mustGrid(t, 10, 10), NewRand(1))
	s.Food = Position{5, 5} // keep the path ahead clear

	if !s.Advance() {
		t.Fatal("advance on an open board failed")
	}

	want := []Position{{0, 3}, {0, 2}, {0, 1}}
	if !positionsEqual(s.Segments, want) {
		t.Errorf("segments after advance = %v, want %v", s.Segments, want)
	}
}

func TestAdvancePreservesLengthWithoutFood(t *testing.T) {
	s := NewSnake(mustGrid(t, 10, 10), NewRand(1))
	s.Food = Position{9, 9}

	for i := 0; i < 5; i++ {
		if !s.Advance() {
			t.Fatalf("advance %d failed", i)
		}
		if len(s.Segments) != 3 {
			t.Fatalf("length changed to %d on a non-growth move", len(s.Segments))
		}
	}
}

func TestAdvanceOutOfBoundsKillsWithoutMutation(t *testing.T) {
	s := &Snake{
		Segments: []Position{{0, 0}, {0, 1}, {0, 2}},
		Heading:  DirUp,
		Food:     Position{5, 5},
		grid:     mustGrid(t, 10, 10),
		rng:      NewRand(1),
	}

	if s.Advance() {
		t.Fatal("advance off the board succeeded")
	}
	if s.State != SnakeDead {
		t.Errorf("state = %v, want dead", s.State)
	}
	want := []Position{{0, 0}, {0, 1}, {0, 2}}
	if !positionsEqual(s.Segments, want) {
		t.Errorf("segments mutated on death: %v, want %v", s.Segments, want)
	}
	if s.Heading != DirUp || s.Food != (Position{5, 5}) {
		t.Error("heading or food mutated on death")
	}
}

func TestAdvanceIntoTailIsFatal(t *testing.T) {
	// Body bent into a hook so the head is next to the live tail. The tail
	// would vacate on this move, but the collision check runs against the
	// pre-move body, so this is a death.
	s := &Snake{
		Segments: []Position{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
		Heading:  DirUp,
		Food:     Position{5, 5},
		grid:     mustGrid(t, 10, 10),
		rng:      NewRand(1),
	}

	if s.Advance() {
		t.Fatal("moving into the current tail tile should be fatal")
	}
	if s.State != SnakeDead {
		t.Errorf("state = %v, want dead", s.State)
	}
	want := []Position{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	if !positionsEqual(s.Segments, want) {
		t.Errorf("segments mutated on death: %v", s.Segments)
	}
}

func TestAdvanceIntoBodyIsFatal(t *testing.T) {
	s := &Snake{
		Segments: []Position{{2, 2}, {2, 3}, {3, 3}, {3, 2}, {3, 1}, {2, 1}},
		Heading:  DirRight, // next head (3,2) is mid-body
		Food:     Position{7, 7},
		grid:     mustGrid(t, 10, 10),
		rng:      NewRand(1),
	}

	if s.Advance() {
		t.Fatal("moving into the body should be fatal")
	}
	if s.State != SnakeDead {
		t.Errorf("state = %v, want dead", s.State)
	}
}

func TestAdvanceTerminalSnakeIsInert(t *testing.T) {
	s := &Snake{
		Segments: []Position{{0, 0}},
		Heading:  DirUp,
		grid:     mustGrid(t, 10, 10),
		rng:      NewRand(1),
	}
	s.Advance() // dies

	s.ChangeDirection(DirDown)
	if s.Heading != DirUp {
		t.Error("dead snake accepted a direction change")
	}
	if s.Advance() {
		t.Error("dead snake advanced")
	}
	if len(s.Segments) != 1 || s.Segments[0] != (Position{0, 0}) {
		t.Errorf("dead snake mutated: %v", s.Segments)
	}
}

func TestAdvanceGrowth(t *testing.T) {
	s := NewSnake(mustGrid(t, 10, 10), NewRand(1))
	s.Food = Position{0, 3} // directly ahead

	if !s.Advance() {
		t.Fatal("growth move failed")
	}
	want := []Position{{0, 3}, {0, 2}, {0, 1}, {0, 0}}
	if !positionsEqual(s.Segments, want) {
		t.Errorf("segments after growth = %v, want %v (tail retained)", s.Segments, want)
	}
	if s.occupies(s.Food) {
		t.Errorf("respawned food %v lies on the body %v", s.Food, s.Segments)
	}
}

func TestFoodPlacementAvoidsBody(t *testing.T) {
	grid := mustGrid(t, 3, 3)
	s := &Snake{
		Segments: []Position{{1, 1}, {1, 0}, {0, 0}, {0, 1}},
		Heading:  DirDown,
		grid:     grid,
		rng:      NewRand(99),
	}

	// 5 free cells on a 3x3 board; over many placements every pick must
	// miss the body.
	for i := 0; i < 500; i++ {
		if !s.placeFood() {
			t.Fatal("placeFood found no candidates on a half-empty board")
		}
		if s.occupies(s.Food) {
			t.Fatalf("trial %d: food %v on body %v", i, s.Food, s.Segments)
		}
		if !grid.InBound(s.Food) {
			t.Fatalf("trial %d: food %v off the board", i, s.Food)
		}
	}
}

func TestAdvanceWinsWhenBoardFull(t *testing.T) {
	// 2x2 board, three segments, food in the last free cell. Eating it
	// leaves nowhere to respawn: the game is won.
	s := &Snake{
		Segments: []Position{{0, 1}, {0, 0}, {1, 0}},
		Heading:  DirRight,
		Food:     Position{1, 1},
		grid:     mustGrid(t, 2, 2),
		rng:      NewRand(1),
	}

	if !s.Advance() {
		t.Fatal("the winning growth move should succeed")
	}
	if s.State != SnakeWon {
		t.Errorf("state = %v, want won", s.State)
	}
	if len(s.Segments) != 4 {
		t.Errorf("length = %d, want 4", len(s.Segments))
	}

	// Terminal: no further movement.
	if s.Advance() {
		t.Error("won snake advanced")
	}
}
