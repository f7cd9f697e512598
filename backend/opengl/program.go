// Package opengl provides the OpenGL 3.3 core profile backend for texquad.
// Every gl.* and glfw.* call in the module lives here; the root package
// stays testable without a live context.
package opengl

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/texquad"
)

// DiagnosticsOutput receives shader compile progress and failure logs.
// It defaults to stderr.
var DiagnosticsOutput io.Writer = os.Stderr

// LinkProgram compiles the vertex and fragment sources and links them into
// a single program. The fragment output "FragmentColor" is bound to color
// number 0 before linking.
//
// Compile and link failures are intentionally non-fatal: the driver's info
// log is written to DiagnosticsOutput and the (invalid) program handle is
// returned anyway, together with the per-stage Diagnostics. Callers that
// want to hard-fail can check Diagnostics.OK.
func LinkProgram(vertexSrc, fragmentSrc string) (uint32, texquad.Diagnostics) {
	var diag texquad.Diagnostics

	fmt.Fprintln(DiagnosticsOutput, "compiling vertex shader ...")
	vertex, vlog, vok := compileStage(gl.VERTEX_SHADER, vertexSrc)
	diag.VertexOK, diag.VertexLog = vok, vlog

	fmt.Fprintln(DiagnosticsOutput, "compiling fragment shader ...")
	fragment, flog, fok := compileStage(gl.FRAGMENT_SHADER, fragmentSrc)
	diag.FragmentOK, diag.FragmentLog = fok, flog

	fmt.Fprintln(DiagnosticsOutput, "linking shader program ...")
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.BindFragDataLocation(program, 0, gl.Str("FragmentColor\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	diag.LinkOK = status != gl.FALSE
	if !diag.LinkOK {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		diag.LinkLog = string(log[:logLength])
	}

	// The stages are owned by the program once linked.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	if !diag.OK() {
		fmt.Fprint(DiagnosticsOutput, diag.String())
	}
	return program, diag
}

// compileStage compiles a single shader stage and returns its handle, the
// info log (empty on success), and whether compilation succeeded.
func compileStage(stage uint32, source string) (uint32, string, bool) {
	shader := gl.CreateShader(stage)

	csource, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return shader, string(log[:logLength]), false
	}
	return shader, "", true
}

// terminate appends the NUL byte gl.Strs requires, unless already present.
func terminate(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0 {
		return s
	}
	return s + "\x00"
}

// DeleteProgram releases a linked program.
func DeleteProgram(program uint32) {
	if program != 0 {
		gl.DeleteProgram(program)
	}
}
