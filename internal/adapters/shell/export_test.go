package shell

import "io"

// Exported for testing.
var (
	ResolveEnvironment = resolveEnvironment
	LookPath           = lookPath
)

// SetStdin replaces the reader handed to commands that read stdin.
func (e *Executor) SetStdin(r io.Reader) {
	e.stdin = r
}
