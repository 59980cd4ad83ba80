// Package app implements the application layer for runner.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the ports the application orchestrates.
type Deps struct {
	Settings  domain.Settings
	Logger    ports.Logger
	Executor  ports.Executor
	BuildTool ports.BuildTool
	Manifests ports.ManifestEditor
	Inspector ports.CrateInspector
	Builds    ports.BuildInfoStore
	Metadata  ports.MetadataStore
	Aliases   ports.AliasStore
	Cache     ports.CacheManager
	Hasher    ports.Hasher
	Verifier  ports.Verifier
	Tracer    ports.Tracer
	Watcher   ports.Watcher
}

// App represents the main application logic.
type App struct {
	Deps

	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	getenv  func(string) string
	workDir string
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		Deps:    deps,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		getenv:  os.Getenv,
		workDir: ".",
	}
}

// WithOutput redirects listings and compiler output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithInput sets the reader used for --stdin programs.
func (a *App) WithInput(r io.Reader) *App {
	a.stdin = r
	return a
}

// WithEnv replaces the environment lookup.
func (a *App) WithEnv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// WithWorkDir sets the directory searched for env.rs.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// SetVerbose switches debug output on loggers that support it.
func (a *App) SetVerbose(enable bool) {
	if v, ok := a.Logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(enable)
	}
}

// CachePath returns the runner root directory.
func (a *App) CachePath() string {
	return a.layout().Root
}

func (a *App) layout() domain.Layout {
	return a.Cache.Layout()
}

// requireStaticCache fails when the static cache project has not been created.
func (a *App) requireStaticCache() error {
	manifest := a.layout().ManifestPath()
	ok, err := a.Verifier.Exists(manifest)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrStaticCacheMissing, "static cache missing"), "path", manifest)
	}
	return nil
}

// phase runs fn inside a span, recording its error.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context) error, opts ...ports.SpanOption) error {
	ctx, span := a.Tracer.Start(ctx, name, opts...)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
