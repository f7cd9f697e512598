package texquad

// QuadVertexCount is the number of vertices in the fullscreen quad.
// The quad is drawn as a triangle strip, so 4 vertices yield 2 triangles.
const QuadVertexCount = 4

// QuadComponents is the number of float32 components per vertex attribute
// (x,y for positions, u,v for texture coordinates).
const QuadComponents = 2

// QuadPositions returns the clip-space XY corners of the fullscreen quad in
// triangle-strip order. The corners are always (±1, ±1) so the quad covers
// the whole viewport regardless of texture size.
func QuadPositions() []float32 {
	return []float32{
		1, 1,
		-1, 1,
		1, -1,
		-1, -1,
	}
}

// QuadTexCoords returns the UV coordinates matching QuadPositions, one
// (u, v) pair per vertex. V grows downward so the texture's first row in
// the raw file maps to the top of the window.
func QuadTexCoords() []float32 {
	return []float32{
		1, 0,
		0, 0,
		1, 1,
		0, 1,
	}
}
