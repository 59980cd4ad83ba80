// Package cachedir owns the runner directory layout.
package cachedir

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/zerr"
)

// Manager implements ports.CacheManager on the local filesystem.
type Manager struct {
	layout domain.Layout
}

// New returns a manager for layout. Nothing is created until EnsureLayout.
func New(layout domain.Layout) *Manager {
	return &Manager{layout: layout}
}

// Layout returns the resolved paths.
func (m *Manager) Layout() domain.Layout {
	return m.layout
}

// EnsureLayout creates the root, the default prelude and the output and dynamic cache directories
// when they are missing. Existing content is left untouched.
func (m *Manager) EnsureLayout() error {
	for _, dir := range []string{m.layout.Root, m.layout.DynamicDir(), m.layout.BinDir()} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLayoutCreateFailed.Error()), "path", dir)
		}
	}

	path := m.layout.PreludePath()
	// O_EXCL never overwrites an edited prelude.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	switch {
	case errors.Is(err, fs.ErrExist):
		return nil
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrLayoutCreateFailed.Error()), "path", path)
	}

	if _, err := f.WriteString(DefaultPrelude); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrLayoutCreateFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLayoutCreateFailed.Error()), "path", path)
	}
	return nil
}

// Prelude returns the prelude text.
func (m *Manager) Prelude() (string, error) {
	path := m.layout.PreludePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPreludeReadFailed.Error()), "path", path)
	}
	return string(data), nil
}
