package texquad

import (
	"fmt"
	"os"
)

// ReadShaderSource reads a GLSL source file into a null-terminated string
// suitable for gl.Strs. Paths are resolved relative to the working
// directory, matching how the demo locates its shader files.
func ReadShaderSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %q: %w", path, err)
	}
	// Ensure null termination for the GL bindings.
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
