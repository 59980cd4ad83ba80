package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runner/internal/adapters/config"
	"go.trai.ch/runner/internal/adapters/logger"
	"go.trai.ch/runner/internal/adapters/shell"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the build tool Graft node.
	NodeID graft.ID = "adapter.build_tool"
	// ManifestNodeID is the unique identifier for the manifest editor Graft node.
	ManifestNodeID graft.ID = "adapter.manifest_editor"
	// InspectorNodeID is the unique identifier for the crate inspector Graft node.
	InspectorNodeID graft.ID = "adapter.crate_inspector"
)

func init() {
	graft.Register(graft.Node[ports.BuildTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTool(settings.BuildTool, settings.Layout, executor, log), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestEditor]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestEditor, error) {
			return NewManifestEditor(), nil
		},
	})

	graft.Register(graft.Node[ports.CrateInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CrateInspector, error) {
			return NewInspector(), nil
		},
	})
}
