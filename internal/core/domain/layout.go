package domain

import (
	"os"
	"path/filepath"
)

const (
	// RunnerDirName is the name of the runner directory inside the cargo home.
	RunnerDirName = ".runner"

	// PreludeFileName is the name of the prelude file prepended to every snippet.
	PreludeFileName = "prelude"

	// AliasFileName is the name of the persisted alias table.
	AliasFileName = "alias"

	// BinDirName is the name of the directory holding compiled programs.
	BinDirName = "bin"

	// DynamicDirName is the name of the directory holding dynamic library artifacts.
	DynamicDirName = "dy-cache"

	// StaticDirName is the name of the cargo project used as the static cache.
	StaticDirName = "static-cache"

	// MetadataFileName is the name of the persisted metadata cache.
	MetadataFileName = "meta.json"

	// ManifestFileName is the name of a cargo manifest.
	ManifestFileName = "Cargo.toml"

	// ConfigFileName is the name of the optional runner configuration file.
	ConfigFileName = "config.yaml"

	// BuildInfoDirName is the name of the directory holding program build records.
	BuildInfoDirName = "builds"

	// EnvPreludeFileName is the name of a per-directory prelude extension.
	EnvPreludeFileName = "env.rs"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for copied executables (rwxr-xr-x).
	ExecPerm = 0o755
)

// Layout resolves every path below the runner root.
type Layout struct {
	Root string
}

// NewLayout returns a layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// DefaultRoot returns the runner root for a cargo home directory.
// When cargoHome is empty it falls back to ~/.cargo.
func DefaultRoot(cargoHome string) string {
	if cargoHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cargoHome = filepath.Join(home, ".cargo")
	}
	return filepath.Join(cargoHome, RunnerDirName)
}

// PreludePath returns the path of the prelude file.
func (l Layout) PreludePath() string {
	return filepath.Join(l.Root, PreludeFileName)
}

// AliasPath returns the path of the alias table.
func (l Layout) AliasPath() string {
	return filepath.Join(l.Root, AliasFileName)
}

// BinDir returns the directory holding compiled programs.
func (l Layout) BinDir() string {
	return filepath.Join(l.Root, BinDirName)
}

// DynamicDir returns the dynamic artifact directory.
func (l Layout) DynamicDir() string {
	return filepath.Join(l.Root, DynamicDirName)
}

// StaticDir returns the static cache cargo project directory.
func (l Layout) StaticDir() string {
	return filepath.Join(l.Root, StaticDirName)
}

// ManifestPath returns the static cache Cargo.toml path.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.StaticDir(), ManifestFileName)
}

// MetadataPath returns the path of the persisted metadata cache.
func (l Layout) MetadataPath() string {
	return filepath.Join(l.StaticDir(), MetadataFileName)
}

// DepsDir returns the directory holding compiled static dependencies for a profile.
func (l Layout) DepsDir(p Profile) string {
	return filepath.Join(l.StaticDir(), "target", p.String(), "deps")
}

// DocDir returns the generated documentation directory of the static cache.
func (l Layout) DocDir() string {
	return filepath.Join(l.StaticDir(), "target", "doc")
}

// ConfigPath returns the path of the configuration file.
func (l Layout) ConfigPath() string {
	return filepath.Join(l.Root, ConfigFileName)
}

// BuildInfoDir returns the directory holding program build records.
func (l Layout) BuildInfoDir() string {
	return filepath.Join(l.Root, BuildInfoDirName)
}
