package texquad_test

import (
	"testing"

	"github.com/go-theft-auto/texquad"
)

func TestQuadPositionsCoverViewport(t *testing.T) {
	pos := texquad.QuadPositions()

	if got, want := len(pos), texquad.QuadVertexCount*texquad.QuadComponents; got != want {
		t.Fatalf("expected %d position components, got %d", want, got)
	}

	// Every corner must sit on the NDC extremes so the strip always covers
	// the full viewport, no matter the texture size.
	for i, v := range pos {
		if v != 1 && v != -1 {
			t.Errorf("position component %d is %v, want ±1", i, v)
		}
	}

	// Triangle-strip order: consecutive vertices must differ in exactly one
	// coordinate, otherwise the strip degenerates.
	for v := 1; v < texquad.QuadVertexCount; v++ {
		prevX, prevY := pos[(v-1)*2], pos[(v-1)*2+1]
		x, y := pos[v*2], pos[v*2+1]
		if x == prevX && y == prevY {
			t.Errorf("vertices %d and %d coincide at (%v, %v)", v-1, v, x, y)
		}
	}
}

func TestQuadTexCoordsMatchPositions(t *testing.T) {
	pos := texquad.QuadPositions()
	uv := texquad.QuadTexCoords()

	if len(uv) != len(pos) {
		t.Fatalf("texcoord count %d does not match position count %d", len(uv), len(pos))
	}

	// UV corners are the unit square with V flipped relative to clip-space
	// Y: x=+1 maps to u=1, y=+1 maps to v=0.
	for v := 0; v < texquad.QuadVertexCount; v++ {
		x, y := pos[v*2], pos[v*2+1]
		u, vv := uv[v*2], uv[v*2+1]

		wantU := float32(0)
		if x == 1 {
			wantU = 1
		}
		if u != wantU {
			t.Errorf("vertex %d: x=%v but u=%v, want %v", v, x, u, wantU)
		}

		wantV := float32(1)
		if y == 1 {
			wantV = 0
		}
		if vv != wantV {
			t.Errorf("vertex %d: y=%v but v=%v, want %v", v, y, vv, wantV)
		}
	}
}

func TestQuadDataIsFresh(t *testing.T) {
	// Callers get independent slices; mutating one must not corrupt the
	// canonical geometry.
	first := texquad.QuadPositions()
	first[0] = 42

	second := texquad.QuadPositions()
	if second[0] != 1 {
		t.Errorf("QuadPositions shares backing storage: got %v after mutation", second[0])
	}
}
