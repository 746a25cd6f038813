package game

// SnakeState tracks whether the snake is still playable. Dead and Won are
// terminal: a finished snake is never advanced or mutated again.
type SnakeState int

const (
	SnakeAlive SnakeState = iota
	SnakeDead             // hit a wall or itself
	SnakeWon              // body fills the board, nowhere left for food
)

// Snake owns the body segments, the current heading and the food tile.
// Segments are head-first; while alive they are distinct, on the board,
// and never overlap the food.
type Snake struct {
	Segments []Position
	Heading  Direction
	Food     Position
	State    SnakeState

	grid Grid
	rng  *Rand
}

// NewSnake places the starting three-segment body in the top-left corner,
// heading down, and spawns the first food. The RNG is injected so food
// placement is deterministic under test.
func NewSnake(grid Grid, rng *Rand) *Snake {
	s := &Snake{
		Segments: []Position{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		Heading:  DirDown,
		grid:     grid,
		rng:      rng,
	}
	s.placeFood()
	return s
}

// Head returns the leading segment.
func (s *Snake) Head() Position {
	return s.Segments[0]
}

// ChangeDirection sets the heading unless the request would reverse the
// snake into its own neck; reversals are silently ignored. Requests are
// not queued: between two advances, only the last accepted one matters.
func (s *Snake) ChangeDirection(d Direction) {
	if s.State != SnakeAlive {
		return
	}
	if d != s.Heading.Opposite() {
		s.Heading = d
	}
}

// Advance moves the snake one tile along its heading. It returns false,
// without mutating anything, when the move leaves the board or lands on
// the pre-move body. The vacating tail still counts as occupied, so
// turning into the current tail tile is fatal.
//
// Landing on food grows the body by one (tail kept) and respawns the
// food; any other move drops the tail so the length is preserved.
func (s *Snake) Advance() bool {
	if s.State != SnakeAlive {
		return false
	}

	next := s.Head().Step(s.Heading)

	if !s.grid.InBound(next) || s.occupies(next) {
		s.State = SnakeDead
		return false
	}

	if next == s.Food {
		s.Segments = append([]Position{next}, s.Segments...)
		if !s.placeFood() {
			s.State = SnakeWon
		}
		return true
	}

	// Shift: reuse the slice, moving every segment back one slot.
	copy(s.Segments[1:], s.Segments)
	s.Segments[0] = next
	return true
}

func (s *Snake) occupies(p Position) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood picks a food tile uniformly among all unoccupied tiles.
// It reports false when the body covers the whole board.
func (s *Snake) placeFood() bool {
	empty := make([]Position, 0, s.grid.Width*s.grid.Height-len(s.Segments))
	for x := 0; x < s.grid.Width; x++ {
		for y := 0; y < s.grid.Height; y++ {
			p := Position{X: x, Y: y}
			if !s.occupies(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		return false
	}
	s.Food = empty[s.rng.Intn(len(empty))]
	return true
}
