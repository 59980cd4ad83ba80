package cachedir

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runner/internal/adapters/config"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
)

// NodeID is the unique identifier for the cache manager Graft node.
const NodeID graft.ID = "adapter.cache_manager"

func init() {
	graft.Register(graft.Node[ports.CacheManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.CacheManager, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.Layout), nil
		},
	})
}
