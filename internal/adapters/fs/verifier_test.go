package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/adapters/fs"
)

func TestVerifier_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	exe := filepath.Join(tmpDir, "demo")
	require.NoError(t, os.WriteFile(exe, []byte("elf"), 0o600))

	ok, err := verifier.Exists(exe)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifier.Exists(exe, filepath.Join(tmpDir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = verifier.Exists()
	require.NoError(t, err)
	assert.True(t, ok)
}
