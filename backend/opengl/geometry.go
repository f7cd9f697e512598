package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/texquad"
)

// Attribute names the vertex shader is expected to declare. A shader that
// omits one simply leaves that attribute unbound; GetAttribLocation returns
// the -1 sentinel and the binding is skipped silently.
const (
	positionAttrib = "Position\x00"
	texCoordAttrib = "TexCoord\x00"
)

// Quad holds the GPU-side geometry of the fullscreen quad: one vertex
// array object and two static attribute buffers (positions, texture
// coordinates).
type Quad struct {
	vao       uint32
	positions uint32
	texCoords uint32
}

// UploadQuad uploads the canonical fullscreen quad and binds its two
// attribute buffers to the program's "Position" and "TexCoord" inputs.
// The buffers are immutable (STATIC_DRAW) and sized for exactly
// texquad.QuadVertexCount vertices.
func UploadQuad(program uint32) *Quad {
	q := &Quad{}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	q.positions = uploadAttrib(program, positionAttrib, texquad.QuadPositions())
	q.texCoords = uploadAttrib(program, texCoordAttrib, texquad.QuadTexCoords())

	gl.BindVertexArray(0)
	return q
}

// uploadAttrib creates one STATIC_DRAW buffer for the given float data and
// wires it to the named vertex shader input, two components per vertex.
func uploadAttrib(program uint32, name string, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	loc := gl.GetAttribLocation(program, gl.Str(name))
	if loc >= 0 {
		gl.VertexAttribPointerWithOffset(uint32(loc), texquad.QuadComponents, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(uint32(loc))
	}
	return vbo
}

// Draw issues one triangle-strip draw call over the quad's 4 vertices.
// The program and texture bindings are expected to be set up already.
func (q *Quad) Draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, texquad.QuadVertexCount)
}

// Delete releases the quad's GPU resources.
func (q *Quad) Delete() {
	if q.texCoords != 0 {
		gl.DeleteBuffers(1, &q.texCoords)
	}
	if q.positions != 0 {
		gl.DeleteBuffers(1, &q.positions)
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
}
