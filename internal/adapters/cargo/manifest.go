package cargo

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestEditor = (*ManifestEditor)(nil)

// ManifestEditor implements ports.ManifestEditor on Cargo.toml files.
type ManifestEditor struct{}

// NewManifestEditor creates a ManifestEditor.
func NewManifestEditor() *ManifestEditor {
	return &ManifestEditor{}
}

type dependencyTable struct {
	Dependencies map[string]toml.Primitive `toml:"dependencies"`
}

// Dependencies returns the sorted names of the [dependencies] table.
func (e *ManifestEditor) Dependencies(path string) ([]string, error) {
	var table dependencyTable
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	names := make([]string, 0, len(table.Dependencies))
	for name := range table.Dependencies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Append adds lines to the end of the manifest, which cargo new leaves in its [dependencies] table.
func (e *ManifestEditor) Append(path string, lines []string) (func() error, error) {
	//nolint:gosec // Manifest path is below the runner root
	original, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestBackupFailed.Error()), "path", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestBackupFailed.Error()), "path", path)
	}
	perm := info.Mode().Perm()

	restore := func() error {
		if err := replaceFile(path, original, perm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrManifestRestoreFailed.Error()), "path", path)
		}
		return nil
	}

	var buf bytes.Buffer
	buf.Write(original)
	if len(original) > 0 && !bytes.HasSuffix(original, []byte("\n")) {
		buf.WriteByte('\n')
	}
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	// The manifest is untouched when the replace fails; restore is still handed out.
	if err := replaceFile(path, buf.Bytes(), perm); err != nil {
		return restore, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return restore, nil
}

// replaceFile swaps data in through a temporary file next to path.
func replaceFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
