package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/adapters/cas"
	"go.trai.ch/runner/internal/core/domain"
)

func TestMetadataFile_LoadMissing(t *testing.T) {
	t.Parallel()

	store := cas.NewMetadataFile(filepath.Join(t.TempDir(), "meta.json"))

	_, err := store.Load()
	require.ErrorIs(t, err, domain.ErrMetadataMissing)
}

func TestMetadataFile_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "static-cache", "meta.json")
	store := cas.NewMetadataFile(path)

	cache := domain.NewMetadataCache()
	cache.Record(domain.Debug, domain.Artifact{Name: "regex", Version: "1.10.2", Filename: "libregex-1.rlib"})
	cache.Record(domain.Release, domain.Artifact{Name: "regex", Filename: "libregex-2.rlib"})
	cache.Record(domain.Debug, domain.Artifact{Name: "serde-json", Version: "1.0.0", Filename: "libserde_json-3.rlib"})
	require.NoError(t, store.Save(cache))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	release, err := got.ResolveArtifact("regex", domain.Release)
	require.NoError(t, err)
	assert.Equal(t, "libregex-2.rlib", release)

	debug, err := got.ResolveArtifact("serde_json", domain.Debug)
	require.NoError(t, err)
	assert.Equal(t, "libserde_json-3.rlib", debug)
}

func TestMetadataFile_SaveNil(t *testing.T) {
	t.Parallel()

	store := cas.NewMetadataFile(filepath.Join(t.TempDir(), "meta.json"))
	require.NoError(t, store.Save(nil))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestMetadataFile_LoadCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "meta.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := cas.NewMetadataFile(path).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}
