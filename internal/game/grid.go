package game

import "fmt"

// Position is a tile coordinate on the board.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position one tile in d.
// It does not bounds-check; callers test the result against the grid.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the fixed board extent. Immutable after construction and cheap
// enough to pass by value.
type Grid struct {
	Width  int
	Height int
}

func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// InBound reports whether p lies on the board.
func (g Grid) InBound(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}
