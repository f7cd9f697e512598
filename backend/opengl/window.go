package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// NewWindow creates a GLFW window with an OpenGL 3.3 core profile context,
// makes the context current, and initializes the GL bindings. The caller
// must have called glfw.Init and must run on the locked main thread.
//
// Window creation fails on hardware that cannot provide a 3.3 context;
// that error is fatal and returned to the caller.
func NewWindow(width, height int, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window (OpenGL 3.3 required): %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return window, nil
}

// Run drives the frame loop until the window reports a close request.
// Each iteration clears color and depth to a fixed gray, invokes draw (one
// frame's draw calls), presents the frame, and processes pending events.
// There is no frame pacing beyond the swap interval and no resize handling.
func Run(window *glfw.Window, draw func()) {
	for !window.ShouldClose() {
		gl.ClearColor(0.5, 0.5, 0.5, 0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		draw()

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
