package ports

import "go.trai.ch/runner/internal/core/domain"

// CacheManager owns the runner directory layout.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheManager interface {
	// EnsureLayout creates any missing part of the layout. It never deletes.
	EnsureLayout() error

	// Prelude returns the text prepended to every snippet.
	Prelude() (string, error)

	// Layout returns the resolved paths.
	Layout() domain.Layout
}
