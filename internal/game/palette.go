package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	Dark      RGB
	Light     RGB
	Apple     RGB
	SnakeHead RGB
	SnakeTail RGB
}{
	Dark:      RGB{R: 19, G: 23, B: 21},
	Light:     RGB{R: 21, G: 30, B: 28},
	Apple:     RGB{R: 155, G: 23, B: 23},
	SnakeHead: RGB{R: 23, G: 130, B: 23},
	SnakeTail: RGB{R: 19, G: 108, B: 19},
}
