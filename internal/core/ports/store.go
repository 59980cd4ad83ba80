package ports

import "go.trai.ch/runner/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving program build records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a program.
	// Returns nil, nil if not found.
	Get(program string) (*domain.BuildInfo, error)

	// Put stores the build info.
	Put(info domain.BuildInfo) error
}

// MetadataStore persists the metadata cache of the static cache.
type MetadataStore interface {
	// Load reads the persisted cache. It returns domain.ErrMetadataMissing when none exists.
	Load() (*domain.MetadataCache, error)

	// Save replaces the persisted cache atomically.
	Save(cache *domain.MetadataCache) error
}

// AliasStore persists the alias table.
type AliasStore interface {
	// Load returns the alias table. A missing table is empty.
	Load() (map[string]string, error)

	// Append adds alias=target entries to the table.
	Append(entries []string) error
}
