package commands

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/google/shlex"
	"github.com/spf13/pflag"
	"go.trai.ch/runner/internal/app"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/engine/snippet"
	"go.trai.ch/zerr"
)

// envPreludePath is ./env.rs, whose //: comment applies to every run in the directory.
func envPreludePath() string {
	return domain.EnvPreludeFileName
}

// applySourceFlags sets the flags of the //: comment in path that are still unset in flags.
// A missing file is not an error; the run reports it when reading the program.
func applySourceFlags(flags *pflag.FlagSet, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is the program named by the user
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProgramReadFailed.Error()), "path", path)
	}

	line, ok := snippet.ArgComment(string(data))
	if !ok || line == "" {
		return nil
	}

	words, err := shlex.Split(line)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidArgComment.Error()), "path", path)
	}

	var scratch app.RunOptions
	parsed := pflag.NewFlagSet(path, pflag.ContinueOnError)
	parsed.SetOutput(io.Discard)
	runFlags(parsed, &scratch)
	if err := parsed.Parse(words); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArgComment, err.Error()), "path", path)
	}
	if parsed.NArg() > 0 {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidArgComment, "only flags are allowed"), "path", path), "args", parsed.Args())
	}

	var setErr error
	parsed.Visit(func(f *pflag.Flag) {
		target := flags.Lookup(f.Name)
		if setErr != nil || target == nil || target.Changed {
			return
		}
		setErr = copyFlag(flags, f)
	})
	if setErr != nil {
		return zerr.With(zerr.Wrap(setErr, domain.ErrInvalidArgComment.Error()), "path", path)
	}
	return nil
}

// copyFlag sets the value of src on the flag of the same name in dst.
func copyFlag(dst *pflag.FlagSet, src *pflag.Flag) error {
	sv, ok := src.Value.(pflag.SliceValue)
	if !ok {
		return dst.Set(src.Name, src.Value.String())
	}
	target, ok := dst.Lookup(src.Name).Value.(pflag.SliceValue)
	if !ok {
		return dst.Set(src.Name, src.Value.String())
	}
	if err := target.Replace(sv.GetSlice()); err != nil {
		return err
	}
	dst.Lookup(src.Name).Changed = true
	return nil
}
