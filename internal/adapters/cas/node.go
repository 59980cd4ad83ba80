package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runner/internal/adapters/cachedir"
	"go.trai.ch/runner/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the build info store Graft node.
	NodeID graft.ID = "adapter.build_info_store"

	// MetadataNodeID is the unique identifier for the metadata store Graft node.
	MetadataNodeID graft.ID = "adapter.metadata_store"
)

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cachedir.NodeID},
		Run: func(ctx context.Context) (ports.BuildInfoStore, error) {
			cache, err := graft.Dep[ports.CacheManager](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cache.Layout().BuildInfoDir()), nil
		},
	})

	graft.Register(graft.Node[ports.MetadataStore]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cachedir.NodeID},
		Run: func(ctx context.Context) (ports.MetadataStore, error) {
			cache, err := graft.Dep[ports.CacheManager](ctx)
			if err != nil {
				return nil, err
			}
			return NewMetadataFile(cache.Layout().MetadataPath()), nil
		},
	})
}
