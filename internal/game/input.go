package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input tracks per-key previous state for edge-triggered presses, so a
// held key produces one turn event instead of one per frame.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) justPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// turnKeys maps arrows and WASD to headings.
var turnKeys = []struct {
	key glfw.Key
	dir Direction
}{
	{glfw.KeyUp, DirUp},
	{glfw.KeyDown, DirDown},
	{glfw.KeyLeft, DirLeft},
	{glfw.KeyRight, DirRight},
	{glfw.KeyW, DirUp},
	{glfw.KeyS, DirDown},
	{glfw.KeyA, DirLeft},
	{glfw.KeyD, DirRight},
}

// Collect polls the window and pushes this frame's events onto q.
func (in *Input) Collect(window *glfw.Window, q *EventQueue) {
	for _, tk := range turnKeys {
		if in.justPressed(window, tk.key) {
			q.Push(Event{Type: EventTurn, Dir: tk.dir})
		}
	}
	if in.justPressed(window, glfw.KeyEscape) || window.ShouldClose() {
		q.Push(Event{Type: EventQuit})
	}
}
