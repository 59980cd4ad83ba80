package shell_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/adapters/shell"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		sysEnv    []string
		overrides []string
		expected  []string
	}{
		{
			name:     "inherited only",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"HOME=/home/test", "PATH=/bin", "USER=test"},
		},
		{
			name:      "override replaces",
			sysEnv:    []string{"LD_LIBRARY_PATH=/usr/lib", "PATH=/bin"},
			overrides: []string{"LD_LIBRARY_PATH=/r/dy-cache:/usr/lib"},
			expected:  []string{"LD_LIBRARY_PATH=/r/dy-cache:/usr/lib", "PATH=/bin"},
		},
		{
			name:      "override adds",
			sysEnv:    []string{"PATH=/bin"},
			overrides: []string{"DYLD_FALLBACK_LIBRARY_PATH=/r/dy-cache"},
			expected:  []string{"DYLD_FALLBACK_LIBRARY_PATH=/r/dy-cache", "PATH=/bin"},
		},
		{
			name:     "malformed entries dropped",
			sysEnv:   []string{"PATH=/bin", "garbage", "=nokey"},
			expected: []string{"PATH=/bin"},
		},
		{
			name:     "values keep equals signs",
			sysEnv:   []string{"RUSTFLAGS=-C target-cpu=native"},
			expected: []string{"RUSTFLAGS=-C target-cpu=native"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shell.ResolveEnvironment(tt.sysEnv, tt.overrides))
		})
	}
}

func TestLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not used on windows")
	}

	dir := t.TempDir()
	tool := filepath.Join(dir, "rustc")
	//nolint:gosec // Test requires an executable file
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes"), []byte("x"), 0o600))

	got, err := shell.LookPath("rustc", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, tool, got)

	_, err = shell.LookPath("notes", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = shell.LookPath("rustc", nil)
	require.Error(t, err)
}
