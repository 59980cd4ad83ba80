package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/engine/metadata"
	"go.trai.ch/runner/internal/ui/output"
	"go.trai.ch/zerr"
)

// AddCrates adds crates to the static cache and rebuilds it.
// Each argument is a crate name, name=version, a local crate directory or kitchen-sink.
// The manifest is restored when the rebuild fails.
func (a *App) AddCrates(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return zerr.Wrap(domain.ErrInvalidCrateSpec, "no crates given")
	}
	if err := a.Cache.EnsureLayout(); err != nil {
		return err
	}

	specs, err := a.parseCrates(args)
	if err != nil {
		return err
	}

	manifest := a.layout().ManifestPath()
	exists, err := a.Verifier.Exists(manifest)
	if err != nil {
		return err
	}

	var present []string
	if exists {
		if present, err = a.Manifests.Dependencies(manifest); err != nil {
			return err
		}
	} else if err := a.phase(ctx, "cache.init", a.BuildTool.Init); err != nil {
		return err
	}

	lines := make([]string, 0, len(specs))
	for _, spec := range specs {
		if slices.Contains(present, spec.Name) {
			a.Logger.Debug(fmt.Sprintf("%s is already in the static cache", spec.Name))
			continue
		}
		present = append(present, spec.Name)
		lines = append(lines, spec.ManifestLine())
	}
	if len(lines) == 0 {
		a.Logger.Info("nothing to add, every crate is already in the static cache")
		return nil
	}

	restore, err := a.Manifests.Append(manifest, lines)
	if err != nil {
		return err
	}

	if err := a.Rebuild(ctx); err != nil {
		a.Logger.Warn("build failed, restoring Cargo.toml")
		if rerr := restore(); rerr != nil {
			return errors.Join(err, zerr.With(zerr.Wrap(rerr, domain.ErrManifestRestoreFailed.Error()), "path", manifest))
		}
		return err
	}

	a.Logger.Info(fmt.Sprintf("added %s", strings.Join(lines, ", ")))
	return nil
}

func (a *App) parseCrates(args []string) ([]domain.CrateSpec, error) {
	var expanded []string
	for _, arg := range args {
		if arg == domain.KitchenSinkName {
			expanded = append(expanded, a.Settings.KitchenSink...)
			continue
		}
		expanded = append(expanded, arg)
	}

	specs := make([]domain.CrateSpec, 0, len(expanded))
	for _, arg := range expanded {
		spec, err := a.parseCrate(arg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (a *App) parseCrate(arg string) (domain.CrateSpec, error) {
	arg = strings.TrimSpace(arg)

	if name, version, ok := strings.Cut(arg, "="); ok {
		name, version = strings.TrimSpace(name), strings.TrimSpace(version)
		if name == "" || version == "" {
			return domain.CrateSpec{}, zerr.With(zerr.Wrap(domain.ErrInvalidCrateSpec, "expected name=version"), "crate", arg)
		}
		return domain.CrateSpec{Name: name, Version: version}, nil
	}

	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		m, err := a.Inspector.Inspect(arg)
		if err != nil {
			return domain.CrateSpec{}, err
		}
		dir, err := filepath.Abs(m.Dir)
		if err != nil {
			return domain.CrateSpec{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidCrateSpec.Error()), "crate", arg)
		}
		return domain.CrateSpec{Name: m.Name, Path: dir}, nil
	}

	if arg == "" || strings.ContainsAny(arg, `/\ "`) {
		return domain.CrateSpec{}, zerr.With(zerr.Wrap(domain.ErrInvalidCrateSpec, "not a crate name or crate directory"), "crate", arg)
	}
	return domain.CrateSpec{Name: arg}, nil
}

// Rebuild builds the static cache in both profiles and replaces the metadata cache.
// Documentation is generated afterwards when enabled; its failure is only reported.
func (a *App) Rebuild(ctx context.Context) error {
	if err := a.requireStaticCache(); err != nil {
		return err
	}

	cache := domain.NewMetadataCache()
	for _, profile := range domain.Profiles {
		err := a.phase(ctx, "cache.build."+profile.String(), func(ctx context.Context) error {
			rec := metadata.NewRecorder(cache, profile, a.stderr)
			err := a.BuildTool.Build(ctx, profile, rec)
			if cerr := rec.Close(); err == nil {
				err = cerr
			}
			return err
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to rebuild static cache"), "profile", profile.String())
		}
	}

	if err := a.Metadata.Save(cache); err != nil {
		return err
	}
	a.Logger.Info(fmt.Sprintf("static cache built, %d crates recorded", cache.Len()))

	if a.Settings.BuildDocs {
		if err := a.phase(ctx, "cache.doc", a.BuildTool.Doc); err != nil {
			a.Logger.Warn(fmt.Sprintf("documentation not generated: %v", err))
		}
	}
	return nil
}

// Update updates the locked versions of the static cache, or of one package.
func (a *App) Update(ctx context.Context, pkg string) error {
	if err := a.requireStaticCache(); err != nil {
		return err
	}
	return a.phase(ctx, "cache.update", func(ctx context.Context) error {
		return a.BuildTool.Update(ctx, pkg)
	})
}

// Cleanup removes the build artifacts of the static cache.
func (a *App) Cleanup(ctx context.Context) error {
	if err := a.requireStaticCache(); err != nil {
		return err
	}
	return a.phase(ctx, "cache.clean", a.BuildTool.Clean)
}

// Crates writes a table of the static cache crates, optionally limited to names.
func (a *App) Crates(names []string, verbose bool) error {
	cache, err := a.Metadata.Load()
	if err != nil {
		return err
	}

	records := cache.Records()
	if len(names) > 0 {
		records = make([]domain.DependencyRecord, 0, len(names))
		for _, name := range names {
			rec, ok := cache.Lookup(name)
			if !ok {
				return zerr.With(zerr.Wrap(domain.ErrCrateNotFound, "unknown crate"), "crate", name)
			}
			records = append(records, rec)
		}
	}

	_, err = io.WriteString(a.stdout, output.CrateTable(records, verbose)+"\n")
	return err
}

// DocPath returns the documentation index of a crate, or of the static cache itself.
func (a *App) DocPath(crate string) (string, error) {
	if err := a.requireStaticCache(); err != nil {
		return "", err
	}
	if crate == "" {
		crate = domain.StaticDirName
	}

	index := filepath.Join(a.layout().DocDir(), domain.CrateName(crate), "index.html")
	ok, err := a.Verifier.Exists(index)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrDocNotFound, "documentation missing"), "crate", crate), "path", index)
	}
	return index, nil
}

// CratePath returns the source directory of a static cache crate.
func (a *App) CratePath(crate string) (string, error) {
	cache, err := a.Metadata.Load()
	if err != nil {
		return "", err
	}
	rec, ok := cache.Lookup(crate)
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrCrateNotFound, "unknown crate"), "crate", crate)
	}
	if rec.SourcePath == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrMetadataMissing, "no source recorded, rebuild with `runner cache build`"), "crate", crate)
	}
	return rec.SourcePath, nil
}

// AddAliases appends alias=crate entries to the alias table.
func (a *App) AddAliases(entries []string) error {
	if err := a.Cache.EnsureLayout(); err != nil {
		return err
	}
	if err := a.Aliases.Append(entries); err != nil {
		return err
	}
	a.Logger.Info(fmt.Sprintf("added %d alias(es)", len(entries)))
	return nil
}
