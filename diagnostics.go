package texquad

import "strings"

// Diagnostics records the outcome of compiling and linking a shader
// program. Each stage keeps its driver info log; a stage that compiled
// (or linked) cleanly has an empty log and its OK flag set.
//
// The type carries no GL handles so diagnostic formatting can be tested
// without a live context.
type Diagnostics struct {
	VertexOK  bool
	VertexLog string

	FragmentOK  bool
	FragmentLog string

	LinkOK  bool
	LinkLog string
}

// OK reports whether both stages compiled and the program linked.
func (d Diagnostics) OK() bool {
	return d.VertexOK && d.FragmentOK && d.LinkOK
}

// String returns the failed stages' logs, each prefixed with the stage
// name. It returns the empty string when everything succeeded.
func (d Diagnostics) String() string {
	var sb strings.Builder
	if !d.VertexOK {
		writeStage(&sb, "vertex shader", d.VertexLog)
	}
	if !d.FragmentOK {
		writeStage(&sb, "fragment shader", d.FragmentLog)
	}
	if !d.LinkOK {
		writeStage(&sb, "program link", d.LinkLog)
	}
	return sb.String()
}

func writeStage(sb *strings.Builder, stage, log string) {
	sb.WriteString(stage)
	sb.WriteString(": ")
	log = strings.TrimRight(log, "\x00\n ")
	if log == "" {
		log = "(no info log)"
	}
	sb.WriteString(log)
	sb.WriteByte('\n')
}
