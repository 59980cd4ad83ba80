package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/runner/internal/engine/linker"
	"go.trai.ch/runner/internal/engine/snippet"
	"go.trai.ch/zerr"
)

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Program is a source file, or the code itself for expression modes.
	Program string
	// Args are passed to the compiled program.
	Args []string

	Static   bool
	Dynamic  bool
	Optimize bool

	Expression bool
	Iterator   bool
	Lines      bool
	Stdin      bool

	Externs   []string
	Wildcards []string
	Macros    []string
	Prepend   string
	NoPrelude bool

	CompileOnly bool
	Output      string
	RunOnly     bool

	Edition  string
	Link     []string
	Cfg      []string
	Features []string

	Watch bool
}

// validate rejects option combinations that cannot be honoured.
func (o RunOptions) validate() error {
	if o.RunOnly && o.CompileOnly {
		return zerr.Wrap(domain.ErrConflictingFlags, "--run and --compile-only make no sense together")
	}
	if o.Lines && o.Stdin {
		return zerr.Wrap(domain.ErrConflictingFlags, "--lines already reads standard input, drop --stdin")
	}
	if o.Watch && (o.Stdin || o.Expression || o.Iterator || o.Lines) {
		return zerr.Wrap(domain.ErrConflictingFlags, "--watch needs a program file")
	}
	if o.Program == "" && !o.Stdin {
		return domain.ErrNoProgram
	}
	return nil
}

// inline reports whether Program holds code rather than a path.
func (o RunOptions) inline() bool {
	return o.Expression || o.Iterator || o.Lines
}

// name is the stem used for the generated source and the executable.
func (o RunOptions) name() string {
	switch {
	case o.Stdin:
		return "stdin"
	case o.inline():
		return "tmp"
	default:
		return strings.TrimSuffix(filepath.Base(o.Program), filepath.Ext(o.Program))
	}
}

// invocation is one resolved run request.
type invocation struct {
	opts    RunOptions
	mode    domain.Mode
	edition string
	source  string
	exe     string
}

// Run compiles and runs a program, snippet or expression.
// A non-zero exit of the program is returned as *domain.ExitError.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if err := a.Cache.EnsureLayout(); err != nil {
		return err
	}

	err := a.runOnce(ctx, opts)
	if !opts.Watch {
		return err
	}
	if err != nil {
		a.report(err)
	}
	return a.watch(ctx, opts)
}

func (a *App) runOnce(ctx context.Context, opts RunOptions) error {
	static := (opts.Static || a.Settings.Static) && !opts.Dynamic
	edition := opts.Edition
	if edition == "" {
		edition = a.Settings.Edition
	}

	layout := a.layout()
	inv := &invocation{
		opts:    opts,
		mode:    domain.SelectMode(static, opts.Optimize, false),
		edition: edition,
		source:  filepath.Join(layout.BinDir(), opts.name()+".rs"),
		exe:     filepath.Join(layout.BinDir(), domain.ExeName(opts.name())),
	}

	if opts.RunOnly {
		ok, err := a.Verifier.Exists(inv.exe)
		if err != nil {
			return err
		}
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrNoProgram, "program was never compiled, run it without --run first"), "path", inv.exe)
		}
	} else {
		var externs []string
		err := a.phase(ctx, "transform", func(context.Context) error {
			var err error
			externs, err = a.writeProgram(inv)
			return err
		})
		if err != nil {
			return err
		}

		if err := a.phase(ctx, "compile", func(ctx context.Context) error {
			return a.compile(ctx, inv, externs)
		}); err != nil {
			return err
		}
	}

	if opts.CompileOnly {
		return a.install(inv.exe, opts.Output)
	}

	return a.phase(ctx, "run", func(ctx context.Context) error {
		return a.execute(ctx, inv)
	})
}

// writeProgram turns the request into a complete program in the bin directory.
func (a *App) writeProgram(inv *invocation) ([]string, error) {
	opts := inv.opts

	code, err := a.readSource(opts)
	if err != nil {
		return nil, err
	}

	switch {
	case opts.Expression && !snippet.IsProgram(code):
		code = snippet.Expression(code)
	case opts.Iterator:
		code = snippet.Iterate(code)
	case opts.Lines:
		code = snippet.Lines(code)
	}

	var program string
	var externs []string
	if !opts.Iterator && !opts.Lines && snippet.IsProgram(code) {
		program = code
		externs = snippet.ProgramExterns(code)
	} else {
		req := snippet.Request{
			Source:    code,
			Externs:   opts.Externs,
			Wildcards: opts.Wildcards,
			Macros:    opts.Macros,
			Prepend:   opts.Prepend,
		}
		if !opts.NoPrelude {
			if req.Prelude, err = a.prelude(); err != nil {
				return nil, err
			}
		}
		if req.Aliases, err = a.Aliases.Load(); err != nil {
			return nil, err
		}

		res := snippet.Transform(req)
		program = res.Program
		externs = res.Externs
	}

	if err := os.WriteFile(inv.source, []byte(program), domain.FilePerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProgramReadFailed.Error()), "path", inv.source)
	}
	a.Logger.Debug(fmt.Sprintf("wrote %s", inv.source))

	return externs, nil
}

func (a *App) readSource(opts RunOptions) (string, error) {
	switch {
	case opts.Stdin:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrProgramReadFailed.Error()), "path", "stdin")
		}
		return string(data), nil
	case opts.inline():
		return opts.Program, nil
	default:
		data, err := os.ReadFile(opts.Program)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrProgramReadFailed.Error()), "path", opts.Program)
		}
		return string(data), nil
	}
}

// prelude returns the runner prelude, preceded by ./env.rs when present.
func (a *App) prelude() (string, error) {
	text, err := a.Cache.Prelude()
	if err != nil {
		return "", err
	}

	envPath := filepath.Join(a.workDir, domain.EnvPreludeFileName)
	env, err := os.ReadFile(envPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return text, nil
	case err != nil:
		return "", zerr.With(zerr.Wrap(err, domain.ErrPreludeReadFailed.Error()), "path", envPath)
	}

	a.Logger.Debug(fmt.Sprintf("using %s", envPath))
	return string(env) + "\n" + text, nil
}

// compile runs the compiler unless the recorded build of the same input is still present.
func (a *App) compile(ctx context.Context, inv *invocation, externs []string) error {
	var res linker.Resolver
	if inv.mode.Static() {
		cache, err := a.Metadata.Load()
		if err != nil {
			return err
		}
		res = cache
	}

	argv, err := linker.New(a.Settings.Compiler, a.layout()).BuildCommand(linker.Request{
		Mode:        inv.mode,
		Kind:        domain.Executable,
		Program:     inv.source,
		Externs:     externs,
		SearchPaths: inv.opts.Link,
		CfgVars:     inv.opts.Cfg,
		Features:    inv.opts.Features,
		Output:      inv.exe,
		Edition:     inv.edition,
	}, res)
	if err != nil {
		return err
	}

	return a.build(ctx, argv, []string{inv.source}, inv.exe, inv.mode)
}

// build runs the compiler argv unless output was recorded for the same argv and inputs.
// inputs are files or directories; the first one names the failure.
func (a *App) build(ctx context.Context, argv, inputs []string, output string, mode domain.Mode) error {
	var hash string
	err := a.phase(ctx, "hash", func(context.Context) error {
		var err error
		hash, err = a.Hasher.ComputeInputHash(argv, inputs)
		return err
	}, ports.WithQuiet())
	if err != nil {
		return err
	}

	fresh, err := a.upToDate(output, hash)
	if err != nil {
		return err
	}
	if fresh {
		a.Logger.Debug(fmt.Sprintf("%s is up to date", output))
		return nil
	}

	a.Logger.Debug(strings.Join(argv, " "))
	if err := a.Executor.Execute(ctx, &domain.Command{Args: argv}, a.stderr, a.stderr); err != nil {
		return compileFailure(err, inputs[0])
	}

	return a.Builds.Put(domain.BuildInfo{
		Program:   output,
		InputHash: hash,
		Mode:      mode.String(),
		Timestamp: time.Now(),
	})
}

// upToDate treats an unreadable build record as stale.
func (a *App) upToDate(output, hash string) (bool, error) {
	info, err := a.Builds.Get(output)
	if err != nil {
		a.Logger.Warn(fmt.Sprintf("ignoring build record of %s: %v", output, err))
		return false, nil
	}
	if info == nil || info.InputHash != hash {
		return false, nil
	}
	return a.Verifier.Exists(output)
}

// compileFailure keeps a compiler exit apart from a program exit.
func compileFailure(err error, source string) error {
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCompileFailed, domain.ErrCompileFailed.Error()),
			"program", source), "exit_code", exitErr.Code)
	}
	return zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "program", source)
}

// execute runs the compiled program with the loader paths of its mode.
func (a *App) execute(ctx context.Context, inv *invocation) error {
	var sysroot string
	if !inv.mode.Static() {
		sysroot = a.sysrootLib(ctx)
	}

	cmd := &domain.Command{
		Args:  append([]string{inv.exe}, inv.opts.Args...),
		Env:   linker.RuntimeEnv(inv.mode, a.layout(), sysroot, a.getenv),
		Stdin: true,
	}
	a.Logger.Debug(fmt.Sprintf("running %s (%s)", inv.exe, inv.mode))

	return a.Executor.Execute(ctx, cmd, a.stdout, a.stderr)
}

// sysrootLib returns the toolchain library directory holding the standard library dylib.
// It is best effort: the program may still run when the loader finds it elsewhere.
func (a *App) sysrootLib(ctx context.Context) string {
	var out bytes.Buffer
	cmd := &domain.Command{Args: []string{a.Settings.Compiler, "--print", "sysroot"}}
	if err := a.Executor.Execute(ctx, cmd, &out, io.Discard); err != nil {
		a.Logger.Warn(fmt.Sprintf("cannot locate the %s sysroot: %v", a.Settings.Compiler, err))
		return ""
	}
	sysroot := strings.TrimSpace(out.String())
	if sysroot == "" {
		return ""
	}
	return filepath.Join(sysroot, "lib")
}

// install copies the executable into dir, by default the cargo bin directory.
func (a *App) install(exe, dir string) error {
	if dir == "" {
		dir = filepath.Join(filepath.Dir(domain.DefaultRoot(a.getenv("CARGO_HOME"))), "bin")
	}
	dst := filepath.Join(dir, filepath.Base(exe))

	if err := copyFile(exe, dst); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "from", exe), "to", dst)
	}
	a.Logger.Info(fmt.Sprintf("installed %s", dst))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src is an executable in the runner bin directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.ExecPerm) //nolint:gosec // dst is chosen by the user
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// report logs a failed run in watch mode without ending the session.
func (a *App) report(err error) {
	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		a.Logger.Warn(exitErr.Error())
		return
	}
	a.Logger.Error(err)
}

// watch reruns the program on every change of its source file until ctx is done.
func (a *App) watch(ctx context.Context, opts RunOptions) error {
	paths := []string{opts.Program}
	if ok, _ := a.Verifier.Exists(filepath.Join(a.workDir, domain.EnvPreludeFileName)); ok {
		paths = append(paths, filepath.Join(a.workDir, domain.EnvPreludeFileName))
	}

	if err := a.Watcher.Start(ctx, paths...); err != nil {
		return err
	}
	defer func() { _ = a.Watcher.Stop() }()

	a.Logger.Info(fmt.Sprintf("watching %s", strings.Join(paths, ", ")))
	for event := range a.Watcher.Events() {
		if event.Operation == ports.OpRemove {
			continue
		}
		a.Logger.Info(fmt.Sprintf("%s changed, rerunning", filepath.Base(event.Path)))
		if err := a.runOnce(ctx, opts); err != nil {
			a.report(err)
		}
	}

	return nil
}
