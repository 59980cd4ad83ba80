package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/zerr"
)

// MetadataFile implements ports.MetadataStore on a single JSON document.
type MetadataFile struct {
	path string
}

// NewMetadataFile returns a store reading and writing path.
func NewMetadataFile(path string) *MetadataFile {
	return &MetadataFile{path: path}
}

// Load reads the metadata cache. A missing file is domain.ErrMetadataMissing.
func (m *MetadataFile) Load() (*domain.MetadataCache, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrMetadataMissing, "no metadata recorded"), "path", m.path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", m.path)
	}

	cache := domain.NewMetadataCache()
	if err := json.Unmarshal(data, cache); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", m.path)
	}
	return cache, nil
}

// Save writes the cache, replacing the previous document in one rename.
func (m *MetadataFile) Save(cache *domain.MetadataCache) error {
	if cache == nil {
		cache = domain.NewMetadataCache()
	}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	return writeAtomic(m.path, data)
}
