// Example renders a fullscreen textured quad from a raw RGB image.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./cmd/rgbconv -in some.png -out example/texture.rgb
//	cd example && go run .
//
// The example reads texture.vert, texture.frag, and texture.rgb from the
// working directory, compiles the shader program, uploads the quad geometry
// and the texture, and loops until the window is closed.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/texquad"
	"github.com/go-theft-auto/texquad/backend/opengl"
)

const (
	windowSize  = 512 // window and texture are both 512x512
	windowTitle = "texquad example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(windowSize, windowSize, windowTitle)
	if err != nil {
		return err
	}
	glfw.SwapInterval(1) // vsync

	// Load and link the shaders. A missing source file is logged and
	// compilation proceeds with empty source; a compile or link failure
	// is logged by LinkProgram itself. Rendering then shows whatever the
	// invalid program produces, matching the demo's log-and-continue policy.
	vertexSrc := loadSource("texture.vert")
	fragmentSrc := loadSource("texture.frag")
	program, _ := opengl.LinkProgram(vertexSrc, fragmentSrc)
	defer opengl.DeleteProgram(program)
	gl.UseProgram(program)

	// Upload the fullscreen quad geometry.
	quad := opengl.UploadQuad(program)
	defer quad.Delete()

	// Load and bind the texture. A missing or short file leaves the
	// remaining pixels zero (black) rather than aborting.
	pixels, _, err := texquad.ReadRawRGB("texture.rgb", windowSize, windowSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	tex := opengl.UploadTexture(pixels, windowSize, windowSize)
	defer opengl.DeleteTexture(tex)
	opengl.BindTextureUnit0(program, tex)

	// Main loop: clear, draw the quad, present.
	opengl.Run(window, quad.Draw)

	return nil
}

// loadSource reads a shader file, logging and returning empty source when
// the file is missing so startup continues.
func loadSource(path string) string {
	src, err := texquad.ReadShaderSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return src
}
