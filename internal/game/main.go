package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	grid, err := NewGrid(GridWidth, GridHeight)
	if err != nil {
		panic(err)
	}
	snake := NewSnake(grid, NewRand(seed))
	loop := NewLoop(snake, AdvanceInterval)
	input := NewInput()
	var queue EventQueue

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	last := glfw.GetTime()
	for loop.Running {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		input.Collect(window, &queue)
		loop.HandleEvents(queue.Drain())
		loop.Update(dt)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.BeginFrame(fbW, fbH)
		rend.DrawBoard(grid, snake, fbW)
		window.SwapBuffers()
	}
}
