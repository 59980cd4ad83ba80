// Package detector inspects the terminal runner is attached to.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Environment describes where runner's output goes.
type Environment struct {
	// TTY is set when stdout is a terminal.
	TTY bool
	// CI is set when a CI system is detected.
	CI bool
}

// Interactive reports whether programs should be attached to a pseudo terminal.
func (e Environment) Interactive() bool {
	return e.TTY && !e.CI
}

// DetectEnvironment inspects stdout and the CI variable of the current process.
func DetectEnvironment() Environment {
	return detect(os.Getenv, term.IsTerminal(int(os.Stdout.Fd())))
}

func detect(getenv func(string) string, isTTY bool) Environment {
	ci := getenv("CI")
	return Environment{
		TTY: isTTY,
		CI:  ci == "true" || ci == "1",
	}
}
