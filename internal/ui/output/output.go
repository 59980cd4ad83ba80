// Package output builds termenv outputs that honour NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for the current process.
// NO_COLOR always wins. CI logs get plain ANSI since their viewers rarely render truecolor.
func Profile(ci bool) termenv.Profile {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return termenv.Ascii
	case ci:
		return termenv.ANSI
	default:
		return termenv.EnvColorProfile()
	}
}

// New returns an output for w using the interactive profile.
// A nil writer means stderr.
func New(w io.Writer) *termenv.Output {
	return NewFor(w, false)
}

// NewFor returns an output for w, using the CI profile when ci is set.
func NewFor(w io.Writer, ci bool) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(ci)),
		termenv.WithTTY(true),
	)
}
