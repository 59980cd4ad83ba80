package cargo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/adapters/cargo"
	"go.trai.ch/runner/internal/core/domain"
)

func writeCrate(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "nested"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("pub fn f() {}"), domain.FilePerm))
	return dir
}

func TestInspector_Inspect(t *testing.T) {
	t.Parallel()

	dir := writeCrate(t, `[package]
name = "my-lib"
version = "0.3.0"
edition = "2021"
`)

	got, err := cargo.NewInspector().Inspect(filepath.Join(dir, "src", "nested"))
	require.NoError(t, err)

	assert.Equal(t, domain.CrateManifest{
		Name:    "my-lib",
		Version: "0.3.0",
		Edition: "2021",
		Dir:     dir,
		LibPath: filepath.Join(dir, "src", "lib.rs"),
	}, got)
}

func TestInspector_Inspect_FromFile(t *testing.T) {
	t.Parallel()

	dir := writeCrate(t, `[package]
name = "old"
version = "0.1.0"

[lib]
path = "src/core.rs"
`)

	got, err := cargo.NewInspector().Inspect(filepath.Join(dir, "src", "lib.rs"))
	require.NoError(t, err)

	assert.Equal(t, "2015", got.Edition)
	assert.Equal(t, filepath.Join(dir, "src", "core.rs"), got.LibPath)
}

func TestInspector_Inspect_Errors(t *testing.T) {
	t.Parallel()

	inspector := cargo.NewInspector()

	_, err := inspector.Inspect(filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, domain.ErrNoCrateManifest.Error())

	_, err = inspector.Inspect(t.TempDir())
	require.ErrorIs(t, err, domain.ErrNoCrateManifest)

	_, err = inspector.Inspect(writeCrate(t, "[workspace]\nmembers = []\n"))
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)
}
