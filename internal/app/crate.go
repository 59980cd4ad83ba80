package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/engine/linker"
	"go.trai.ch/zerr"
)

// CompileOptions configuration for the CompileCrate method.
type CompileOptions struct {
	Edition  string
	Link     []string
	Cfg      []string
	Features []string
}

// crateSource is a library to build into the dynamic cache.
// root is hashed to decide whether the library needs rebuilding.
type crateSource struct {
	name     string
	lib      string
	root     string
	edition  string
	features []string
}

// CompileCrate builds a dynamic library into the dynamic cache.
// target is a static cache crate, a crate directory, or a single .rs file.
func (a *App) CompileCrate(ctx context.Context, target string, opts CompileOptions) error {
	if err := a.Cache.EnsureLayout(); err != nil {
		return err
	}

	src, err := a.resolveCrate(target)
	if err != nil {
		return err
	}
	if opts.Edition != "" {
		src.edition = opts.Edition
	}
	features := slices.Concat(src.features, opts.Features)

	a.Logger.Info(fmt.Sprintf("compiling crate '%s' with features [%s] at %s",
		src.name, strings.Join(features, " "), src.lib))

	layout := a.layout()
	argv, err := linker.New(a.Settings.Compiler, layout).BuildCommand(linker.Request{
		Mode:        domain.DynamicLinked,
		Kind:        domain.Library,
		Program:     src.lib,
		CrateName:   src.name,
		SearchPaths: opts.Link,
		CfgVars:     opts.Cfg,
		Features:    features,
		Output:      layout.DynamicDir(),
		Edition:     src.edition,
	}, nil)
	if err != nil {
		return err
	}

	output := filepath.Join(layout.DynamicDir(), domain.DylibFileName(src.name))
	return a.phase(ctx, "compile", func(ctx context.Context) error {
		return a.build(ctx, argv, []string{src.root}, output, domain.DynamicLinked)
	})
}

func (a *App) resolveCrate(target string) (crateSource, error) {
	info, statErr := os.Stat(target)

	switch {
	case statErr == nil && info.IsDir():
		m, err := a.Inspector.Inspect(target)
		if err != nil {
			return crateSource{}, err
		}
		return crateSource{name: m.Name, lib: m.LibPath, root: target, edition: m.Edition}, nil

	case statErr == nil && filepath.Ext(target) == ".rs":
		return crateSource{
			name:    strings.TrimSuffix(filepath.Base(target), ".rs"),
			lib:     target,
			root:    target,
			edition: a.Settings.Edition,
		}, nil

	case strings.ContainsAny(target, `/\.`):
		return crateSource{}, zerr.With(zerr.Wrap(domain.ErrInvalidCrateSpec,
			"expecting a static cache crate, a directory containing Cargo.toml or a Rust source file"), "crate", target)
	}

	cache, err := a.Metadata.Load()
	if err != nil {
		return crateSource{}, err
	}
	rec, ok := cache.Lookup(target)
	if !ok {
		return crateSource{}, zerr.With(zerr.Wrap(domain.ErrCrateNotFound, "unknown crate"), "crate", target)
	}
	if rec.SourcePath == "" {
		return crateSource{}, zerr.With(zerr.Wrap(domain.ErrMetadataMissing, "no source recorded, rebuild with `runner cache build`"), "crate", target)
	}

	m, err := a.Inspector.Inspect(rec.SourcePath)
	if err != nil {
		return crateSource{}, err
	}
	return crateSource{
		name:     rec.Name,
		lib:      m.LibPath,
		root:     rec.SourcePath,
		edition:  m.Edition,
		features: rec.Features,
	}, nil
}
