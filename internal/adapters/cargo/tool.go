// Package cargo drives the build tool of the static cache project and reads crate manifests.
package cargo

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxMessageSize bounds a single line of build tool output.
const maxMessageSize = 16 << 20

var _ ports.BuildTool = (*Tool)(nil)

// Tool implements ports.BuildTool by running cargo inside the static cache.
type Tool struct {
	binary   string
	layout   domain.Layout
	executor ports.Executor
	logger   ports.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// NewTool returns a Tool running binary. Human readable output goes to stderr.
func NewTool(binary string, layout domain.Layout, executor ports.Executor, logger ports.Logger) *Tool {
	if binary == "" {
		binary = "cargo"
	}
	return &Tool{
		binary:   binary,
		layout:   layout,
		executor: executor,
		logger:   logger,
		stdout:   os.Stderr,
		stderr:   os.Stderr,
	}
}

// SetOutput redirects the human readable output of the build tool.
func (t *Tool) SetOutput(stdout, stderr io.Writer) {
	t.stdout = stdout
	t.stderr = stderr
}

// Init creates the static cache project below the runner root.
func (t *Tool) Init(ctx context.Context) error {
	return t.run(ctx, t.layout.Root, "new", "--bin", domain.StaticDirName)
}

// Build compiles the static cache for profile, streaming JSON messages to messages.
// stdout and stderr are pumped concurrently until the build tool exits.
func (t *Tool) Build(ctx context.Context, profile domain.Profile, messages io.Writer) error {
	args := []string{"build"}
	if profile == domain.Release {
		args = append(args, "--release")
	}
	args = append(args, "--message-format", "json")

	t.logger.Debug("running " + t.binary + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, t.binary, args...) //nolint:gosec // build tool binary comes from configuration
	cmd.Dir = t.layout.StaticDir()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return t.failure(err, "build")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return t.failure(err, "build")
	}
	if err := cmd.Start(); err != nil {
		return t.failure(err, "build")
	}

	var g errgroup.Group
	g.Go(func() error { return pump(stdout, messages) })
	g.Go(func() error { return pump(stderr, t.stderr) })

	pumpErr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return zerr.With(t.failure(err, "build"), "profile", profile.String())
	}
	if pumpErr != nil {
		return zerr.Wrap(pumpErr, "failed to read build output")
	}
	return nil
}

// Doc generates documentation for every dependency of the static cache.
func (t *Tool) Doc(ctx context.Context) error {
	return t.run(ctx, t.layout.StaticDir(), "doc")
}

// Update refreshes the lock file, for a single package when pkg is set.
func (t *Tool) Update(ctx context.Context, pkg string) error {
	if pkg != "" {
		return t.run(ctx, t.layout.StaticDir(), "update", "--package", pkg)
	}
	return t.run(ctx, t.layout.StaticDir(), "update")
}

// Clean removes the build output of the static cache.
func (t *Tool) Clean(ctx context.Context) error {
	return t.run(ctx, t.layout.StaticDir(), "clean")
}

func (t *Tool) run(ctx context.Context, dir string, args ...string) error {
	t.logger.Debug("running " + t.binary + " " + strings.Join(args, " "))

	err := t.executor.Execute(ctx, &domain.Command{
		Args: append([]string{t.binary}, args...),
		Dir:  dir,
	}, t.stdout, t.stderr)
	if err != nil {
		return t.failure(err, args[0])
	}
	return nil
}

func (t *Tool) failure(err error, subcommand string) error {
	code := -1
	var exitErr *domain.ExitError
	var execErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		code = exitErr.Code
	case errors.As(err, &execErr):
		code = execErr.ExitCode()
	}

	wrapped := zerr.Wrap(domain.ErrBuildToolFailed, t.binary+" "+subcommand+" failed")
	wrapped = zerr.With(wrapped, "exit_code", code)
	if code == -1 {
		wrapped = zerr.With(wrapped, "error", err.Error())
	}
	return wrapped
}

// pump copies r to w one line at a time.
func pump(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	var line []byte
	for scanner.Scan() {
		line = append(append(line[:0], scanner.Bytes()...), '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
