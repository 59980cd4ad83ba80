// Package shell runs external commands: the compiler, the build tool and compiled programs.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/creack/pty"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec, attaching commands that do not read
// stdin to a pseudo terminal when runner itself runs in one.
type Executor struct {
	logger ports.Logger
	usePTY bool
	stdin  io.Reader
}

// NewExecutor creates an Executor. usePTY enables pseudo terminals for commands without stdin.
func NewExecutor(logger ports.Logger, usePTY bool) *Executor {
	return &Executor{
		logger: logger,
		usePTY: usePTY,
		stdin:  os.Stdin,
	}
}

// Execute runs the command and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, command *domain.Command, stdout, stderr io.Writer) error {
	if len(command.Args) == 0 {
		return nil
	}

	name := command.Name()
	env := resolveEnvironment(os.Environ(), command.Env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args[1:]...) //nolint:gosec // compiler and program paths are built by runner
	cmd.Args[0] = name
	cmd.Dir = command.Dir
	cmd.Env = env

	e.logger.Debug("exec " + name)

	var err error
	if e.usePTY && !command.Stdin {
		err = runPTY(cmd, stdout)
	} else {
		err = e.run(cmd, command.Stdin, stdout, stderr)
	}
	return exitError(name, err)
}

func (e *Executor) run(cmd *exec.Cmd, stdin bool, stdout, stderr io.Writer) error {
	if stdin {
		cmd.Stdin = e.stdin
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runPTY merges stdout and stderr through the pseudo terminal into stdout.
func runPTY(cmd *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master fails with EIO once the child has exited and the slave is closed.
		_, _ = io.Copy(stdout, ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return waitErr
}

func exitError(name string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ExitError{Program: name, Code: exitErr.ExitCode()}
	}
	return zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
}
