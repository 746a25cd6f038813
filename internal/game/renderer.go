package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the board as flat-colour tiles on a single quad program.
type Renderer struct {
	tileProg uint32
	tileVAO  uint32
	tileVBO  uint32

	uOrigin     int32
	uSize       int32
	uResolution int32
	uColor      int32
}

func NewRenderer() (*Renderer, error) {
	tileProg, err := linkProgram(tileVertSrc, tileFragSrc)
	if err != nil {
		return nil, fmt.Errorf("tile program: %w", err)
	}

	r := &Renderer{tileProg: tileProg}

	// Tile VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.tileVAO = vao
	r.tileVBO = vbo

	gl.UseProgram(tileProg)
	r.uOrigin = gl.GetUniformLocation(tileProg, gl.Str("uOrigin\x00"))
	r.uSize = gl.GetUniformLocation(tileProg, gl.Str("uSize\x00"))
	r.uResolution = gl.GetUniformLocation(tileProg, gl.Str("uResolution\x00"))
	r.uColor = gl.GetUniformLocation(tileProg, gl.Str("uColor\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.tileVBO != 0 {
		gl.DeleteBuffers(1, &r.tileVBO)
	}
	if r.tileVAO != 0 {
		gl.DeleteVertexArrays(1, &r.tileVAO)
	}
	if r.tileProg != 0 {
		gl.DeleteProgram(r.tileProg)
	}
}

// BeginFrame clears to the dark background and binds the tile program.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(Palette.Dark.R)/255.0,
		float32(Palette.Dark.G)/255.0,
		float32(Palette.Dark.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.tileProg)
	gl.BindVertexArray(r.tileVAO)
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
}

// DrawTile fills one grid cell. The canvas is subdivided into
// grid.Width x grid.Height equal tiles; tile size follows the framebuffer
// width, matching the fixed square window.
func (r *Renderer) DrawTile(grid Grid, p Position, c RGB, fbW int) {
	tile := float32(fbW) / float32(grid.Width)
	gl.Uniform2f(r.uOrigin, float32(p.X)*tile, float32(p.Y)*tile)
	gl.Uniform2f(r.uSize, tile, tile)
	gl.Uniform3f(r.uColor,
		float32(c.R)/255.0,
		float32(c.G)/255.0,
		float32(c.B)/255.0,
	)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawBoard renders one frame: checkerboard, snake body, head, food.
// Segments are head-first, so index 0 gets the head colour.
func (r *Renderer) DrawBoard(grid Grid, snake *Snake, fbW int) {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if (x+y)%2 == 0 {
				r.DrawTile(grid, Position{X: x, Y: y}, Palette.Light, fbW)
			}
		}
	}

	for i := len(snake.Segments) - 1; i >= 1; i-- {
		r.DrawTile(grid, snake.Segments[i], Palette.SnakeTail, fbW)
	}
	r.DrawTile(grid, snake.Head(), Palette.SnakeHead, fbW)
	r.DrawTile(grid, snake.Food, Palette.Apple, fbW)
}
