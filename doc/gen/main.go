// Command gen renders the textured quad offscreen with a procedurally
// generated test texture and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
//
// It doubles as a smoke test for the whole pipeline: it fails when the
// shaders do not compile or when the rendered frame is indistinguishable
// from the clear color.
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/texquad"
	"github.com/go-theft-auto/texquad/backend/opengl"
)

const size = 512

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	// Hidden window; we only need the context and framebuffer.
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := opengl.NewWindow(size, size, "screenshot-gen")
	if err != nil {
		return err
	}

	vertexSrc, err := texquad.ReadShaderSource(filepath.Join("example", "texture.vert"))
	if err != nil {
		return err
	}
	fragmentSrc, err := texquad.ReadShaderSource(filepath.Join("example", "texture.frag"))
	if err != nil {
		return err
	}

	program, diag := opengl.LinkProgram(vertexSrc, fragmentSrc)
	if !diag.OK() {
		return fmt.Errorf("shader pipeline broken:\n%s", diag)
	}
	defer opengl.DeleteProgram(program)
	gl.UseProgram(program)

	quad := opengl.UploadQuad(program)
	defer quad.Delete()

	tex := opengl.UploadTexture(testTexture(size, size), size, size)
	defer opengl.DeleteTexture(tex)
	opengl.BindTextureUnit0(program, tex)

	// A couple of frames so the driver settles before the readback.
	for i := 0; i < 2; i++ {
		gl.Viewport(0, 0, size, size)
		gl.ClearColor(0.5, 0.5, 0.5, 0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		quad.Draw()
		window.SwapBuffers()
	}

	img, err := readFrame(size, size)
	if err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	path := filepath.Join(outDir, "quad.jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	fmt.Printf("wrote %s (%dx%d)\n", path, size, size)
	return nil
}

// testTexture generates a raw RGB gradient with distinct corner colors so
// orientation mistakes show up immediately in the screenshot.
func testTexture(width, height int) []byte {
	pixels := make([]byte, width*height*texquad.BytesPerPixel)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * texquad.BytesPerPixel
			pixels[i] = byte(255 * x / (width - 1))    // red grows rightward
			pixels[i+1] = byte(255 * y / (height - 1)) // green grows downward
			pixels[i+2] = 64
		}
	}
	return pixels
}

// readFrame reads back the framebuffer and verifies the quad actually drew
// something other than the clear color.
func readFrame(width, height int) (*image.RGBA, error) {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left).
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	// Gray clear is (128, 128, 128); the gradient corners are nowhere near it.
	r, g, b := pixels[0], pixels[1], pixels[2]
	if r == 128 && g == 128 && b == 128 {
		return nil, fmt.Errorf("frame corner still shows the clear color, quad did not render")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return img, nil
}
