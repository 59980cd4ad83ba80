package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/runner/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	root := filepath.Join("home", ".cargo", ".runner")
	l := domain.NewLayout(root)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "PreludePath", got: l.PreludePath(), expected: filepath.Join(root, "prelude")},
		{name: "AliasPath", got: l.AliasPath(), expected: filepath.Join(root, "alias")},
		{name: "BinDir", got: l.BinDir(), expected: filepath.Join(root, "bin")},
		{name: "DynamicDir", got: l.DynamicDir(), expected: filepath.Join(root, "dy-cache")},
		{name: "StaticDir", got: l.StaticDir(), expected: filepath.Join(root, "static-cache")},
		{name: "ManifestPath", got: l.ManifestPath(), expected: filepath.Join(root, "static-cache", "Cargo.toml")},
		{name: "MetadataPath", got: l.MetadataPath(), expected: filepath.Join(root, "static-cache", "meta.json")},
		{
			name:     "DepsDir debug",
			got:      l.DepsDir(domain.Debug),
			expected: filepath.Join(root, "static-cache", "target", "debug", "deps"),
		},
		{
			name:     "DepsDir release",
			got:      l.DepsDir(domain.Release),
			expected: filepath.Join(root, "static-cache", "target", "release", "deps"),
		},
		{name: "DocDir", got: l.DocDir(), expected: filepath.Join(root, "static-cache", "target", "doc")},
		{name: "ConfigPath", got: l.ConfigPath(), expected: filepath.Join(root, "config.yaml")},
		{name: "BuildInfoDir", got: l.BuildInfoDir(), expected: filepath.Join(root, "builds")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestDefaultRoot(t *testing.T) {
	assert.Equal(t, filepath.Join("/opt/cargo", ".runner"), domain.DefaultRoot("/opt/cargo"))

	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join("/home/someone", ".cargo", ".runner"), domain.DefaultRoot(""))
}
