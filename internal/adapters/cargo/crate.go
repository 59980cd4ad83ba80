package cargo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	manifestName = "Cargo.toml"
	// defaultEdition is what cargo assumes for a package without an edition key.
	defaultEdition = "2015"
)

var _ ports.CrateInspector = (*Inspector)(nil)

// Inspector implements ports.CrateInspector.
type Inspector struct{}

// NewInspector creates an Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

type crateFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Edition string `toml:"edition"`
	} `toml:"package"`
	Lib struct {
		Path string `toml:"path"`
	} `toml:"lib"`
}

// Inspect finds the Cargo.toml owning path and reads its package section.
func (i *Inspector) Inspect(path string) (domain.CrateManifest, error) {
	manifest, err := findManifest(path)
	if err != nil {
		return domain.CrateManifest{}, err
	}

	var file crateFile
	if _, err := toml.DecodeFile(manifest, &file); err != nil {
		return domain.CrateManifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", manifest)
	}
	if file.Package.Name == "" {
		return domain.CrateManifest{}, zerr.With(
			zerr.Wrap(domain.ErrManifestParseFailed, "manifest has no package name"), "path", manifest)
	}

	dir := filepath.Dir(manifest)
	crate := domain.CrateManifest{
		Name:    file.Package.Name,
		Version: file.Package.Version,
		Edition: file.Package.Edition,
		Dir:     dir,
		LibPath: filepath.Join(dir, "src", "lib.rs"),
	}
	if crate.Edition == "" {
		crate.Edition = defaultEdition
	}
	if file.Lib.Path != "" {
		crate.LibPath = filepath.Join(dir, filepath.FromSlash(file.Lib.Path))
	}
	return crate, nil
}

// findManifest walks up from path to the nearest directory holding a Cargo.toml.
func findManifest(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrNoCrateManifest.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrNoCrateManifest.Error()), "path", abs)
	}
	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrNoCrateManifest.Error()), "path", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.Wrap(domain.ErrNoCrateManifest, "no manifest above path"), "path", abs)
		}
		dir = parent
	}
}
