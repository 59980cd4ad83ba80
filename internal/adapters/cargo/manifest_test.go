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

const freshManifest = `[package]
name = "static-cache"
version = "0.1.0"
edition = "2021"

[dependencies]
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestManifestEditor_AppendAndDependencies(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, freshManifest)
	editor := cargo.NewManifestEditor()

	_, err := editor.Append(path, []string{
		domain.CrateSpec{Name: "regex"}.ManifestLine(),
		domain.CrateSpec{Name: "serde_json", Version: "1.0"}.ManifestLine(),
		domain.CrateSpec{Name: "my-lib", Path: "/src/my-lib"}.ManifestLine(),
	})
	require.NoError(t, err)

	deps, err := editor.Dependencies(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-lib", "regex", "serde_json"}, deps)
}

func TestManifestEditor_RestoreExactBytes(t *testing.T) {
	t.Parallel()

	original := freshManifest + "chrono = \"0.4\"   # pinned\n"
	path := writeManifest(t, original)
	editor := cargo.NewManifestEditor()

	restore, err := editor.Append(path, []string{`regex="*"`})
	require.NoError(t, err)

	edited, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original+"regex=\"*\"\n", string(edited))

	require.NoError(t, restore())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(got))
}

func TestManifestEditor_AppendAddsMissingNewline(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "[dependencies]")
	_, err := cargo.NewManifestEditor().Append(path, []string{`regex="*"`})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[dependencies]\nregex=\"*\"\n", string(got))
}

func TestManifestEditor_Errors(t *testing.T) {
	t.Parallel()

	editor := cargo.NewManifestEditor()
	missing := filepath.Join(t.TempDir(), "Cargo.toml")

	_, err := editor.Append(missing, []string{`regex="*"`})
	assert.ErrorContains(t, err, domain.ErrManifestBackupFailed.Error())

	_, err = editor.Dependencies(writeManifest(t, "[dependencies\n"))
	assert.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())
}

func TestManifestEditor_AppendFailureKeepsManifest(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	path := writeManifest(t, freshManifest)
	dir := filepath.Dir(path)
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, domain.DirPerm) })

	restore, err := cargo.NewManifestEditor().Append(path, []string{`regex="*"`})
	require.ErrorContains(t, err, domain.ErrManifestWriteFailed.Error())
	require.NotNil(t, restore)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, freshManifest, string(got))
}
