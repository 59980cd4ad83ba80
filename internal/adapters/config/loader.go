// Package config resolves the runner root and loads its optional configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvHome overrides the runner root.
	EnvHome = "RUNNER_HOME"
	// EnvCargoHome is the cargo home the default root lives in.
	EnvCargoHome = "CARGO_HOME"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithEnv(logger, os.Getenv)
}

// NewLoaderWithEnv creates a Loader resolving variables through getenv.
func NewLoaderWithEnv(logger ports.Logger, getenv func(string) string) *Loader {
	return &Loader{Logger: logger, getenv: getenv}
}

// Root returns the runner root directory.
func (l *Loader) Root() string {
	if root := l.getenv(EnvHome); root != "" {
		return root
	}
	return domain.DefaultRoot(l.getenv(EnvCargoHome))
}

// Load reads <root>/config.yaml. A missing file yields the defaults.
func (l *Loader) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings(l.Root())
	path := settings.Layout.ConfigPath()

	// #nosec G304 -- path is below the runner root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	file.apply(&settings)
	l.Logger.Debug("loaded configuration from " + path)

	return settings, nil
}
