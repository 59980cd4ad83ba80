package ports

import (
	"context"
	"io"

	"go.trai.ch/runner/internal/core/domain"
)

// BuildTool drives the build tool of the static cache project.
//
//go:generate mockgen -source=build_tool.go -destination=mocks/mock_build_tool.go -package=mocks
type BuildTool interface {
	// Init creates the static cache project.
	Init(ctx context.Context) error

	// Build compiles every dependency for the profile.
	// Machine-readable messages are streamed line by line to messages while the build runs.
	Build(ctx context.Context, profile domain.Profile, messages io.Writer) error

	// Doc generates documentation for the dependencies.
	Doc(ctx context.Context) error

	// Update refreshes the lock file, optionally for a single package.
	Update(ctx context.Context, pkg string) error

	// Clean removes the build output of the static cache.
	Clean(ctx context.Context) error
}

// ManifestEditor edits the static cache manifest.
type ManifestEditor interface {
	// Dependencies returns the names of the declared dependencies.
	Dependencies(path string) ([]string, error)

	// Append adds dependency lines to the manifest.
	// The returned restore func puts back the exact bytes present before the edit,
	// and is returned alongside a write error too.
	Append(path string, lines []string) (restore func() error, err error)
}

// CrateInspector reads the manifest of a local crate.
type CrateInspector interface {
	// Inspect finds the manifest owning path by walking up the directory tree.
	Inspect(path string) (domain.CrateManifest, error)
}
