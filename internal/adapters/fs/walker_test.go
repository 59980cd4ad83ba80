package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/adapters/fs"
)

func collect(w *fs.Walker, root string, ignores []string) []string {
	return slices.Collect(w.WalkFiles(root, ignores))
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src", "bin"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Cargo.toml"), []byte("[package]"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "lib.rs"), []byte("pub fn f() {}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "bin", "main.rs"), []byte("fn main() {}"), 0o600))

	files := collect(fs.NewWalker(), tmpDir, nil)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "Cargo.toml"),
		filepath.Join(tmpDir, "src", "bin", "main.rs"),
		filepath.Join(tmpDir, "src", "lib.rs"),
	}, files)
}

func TestWalker_WalkFiles_SkipsVCSAndTarget(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{".git", ".jj", "target/debug", "src"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0o750))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".git", "config"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".jj", "store"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "target", "debug", "libfoo.rlib"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "lib.rs"), []byte("x"), 0o600))

	files := collect(fs.NewWalker(), tmpDir, nil)

	assert.Equal(t, []string{filepath.Join(tmpDir, "src", "lib.rs")}, files)
}

func TestWalker_WalkFiles_WithIgnores(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "benches"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "lib.rs"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "lib.rs.orig"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "benches", "b.rs"), []byte("x"), 0o600))

	files := collect(fs.NewWalker(), tmpDir, []string{"*.orig", "benches"})

	assert.Equal(t, []string{filepath.Join(tmpDir, "lib.rs")}, files)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a.rs", "b.rs", "c.rs"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o600))
	}

	var seen []string
	for file := range fs.NewWalker().WalkFiles(tmpDir, nil) {
		seen = append(seen, file)
		break
	}
	assert.Len(t, seen, 1)
}

func TestWalker_WalkFiles_EmptyDirectory(t *testing.T) {
	assert.Empty(t, collect(fs.NewWalker(), t.TempDir(), nil))
}
