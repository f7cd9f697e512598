package texquad_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/texquad"
)

func TestReadShaderSourceAppendsNul(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.vert")
	const body = "#version 330\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := texquad.ReadShaderSource(path)
	if err != nil {
		t.Fatalf("ReadShaderSource returned error: %v", err)
	}
	if !strings.HasPrefix(src, body) {
		t.Errorf("source does not start with file contents")
	}
	if src[len(src)-1] != 0 {
		t.Error("source is not null-terminated")
	}
	if strings.Count(src, "\x00") != 1 {
		t.Errorf("expected exactly one NUL, got %d", strings.Count(src, "\x00"))
	}
}

func TestReadShaderSourceKeepsExistingNul(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.frag")
	if err := os.WriteFile(path, []byte("void main() {}\x00"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := texquad.ReadShaderSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(src, "\x00") != 1 {
		t.Errorf("expected exactly one NUL, got %d", strings.Count(src, "\x00"))
	}
}

func TestReadShaderSourceMissingFile(t *testing.T) {
	_, err := texquad.ReadShaderSource(filepath.Join(t.TempDir(), "nope.vert"))
	if err == nil {
		t.Fatal("expected error for missing shader file")
	}
	if !strings.Contains(err.Error(), "nope.vert") {
		t.Errorf("error %q does not name the file", err)
	}
}
