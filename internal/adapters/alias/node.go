package alias

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runner/internal/adapters/cachedir"
	"go.trai.ch/runner/internal/core/ports"
)

// NodeID is the unique identifier for the alias store Graft node.
const NodeID graft.ID = "adapter.alias_store"

func init() {
	graft.Register(graft.Node[ports.AliasStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cachedir.NodeID},
		Run: func(ctx context.Context) (ports.AliasStore, error) {
			cache, err := graft.Dep[ports.CacheManager](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cache.Layout().AliasPath()), nil
		},
	})
}
