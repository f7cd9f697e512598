/*
Package texquad provides the building blocks for rendering a textured
fullscreen quad with an OpenGL 3.3 core profile pipeline: shader source
loading, compile/link diagnostics, raw RGB pixel loading, and the canonical
quad geometry.

The root package is deliberately free of OpenGL calls so its logic can be
tested without a live GL context. Everything that talks to the driver lives
in backend/opengl.

# Quick Start

	// Setup (after glfw.Init)
	window, _ := opengl.NewWindow(512, 512, "texquad")

	vsrc, _ := texquad.ReadShaderSource("texture.vert")
	fsrc, _ := texquad.ReadShaderSource("texture.frag")
	program, _ := opengl.LinkProgram(vsrc, fsrc)
	gl.UseProgram(program)

	quad := opengl.UploadQuad(program)
	pixels, _, _ := texquad.ReadRawRGB("texture.rgb", 512, 512)
	tex := opengl.UploadTexture(pixels, 512, 512)
	opengl.BindTextureUnit0(program, tex)

	opengl.Run(window, quad.Draw)

# Error policy

Initialization failures (no display backend, no 3.3-capable context) are
fatal and returned as errors. Shader compile and link failures are not:
the diagnostics are written to stderr and execution continues with an
invalid program handle, reproducing the behavior of the original demo this
package is modeled on. See Diagnostics for inspecting the logs directly.
*/
package texquad
