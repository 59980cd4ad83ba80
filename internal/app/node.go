package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runner/internal/adapters/alias"     //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/cachedir"  //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/cargo"     //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			logger.NodeID,
			shell.NodeID,
			cargo.NodeID,
			cargo.ManifestNodeID,
			cargo.InspectorNodeID,
			cas.NodeID,
			cas.MetadataNodeID,
			alias.NodeID,
			cachedir.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

//nolint:cyclop // one lookup per port
func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)

	if deps.Settings, err = graft.Dep[domain.Settings](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Executor, err = graft.Dep[ports.Executor](ctx); err != nil {
		return nil, err
	}
	if deps.BuildTool, err = graft.Dep[ports.BuildTool](ctx); err != nil {
		return nil, err
	}
	if deps.Manifests, err = graft.Dep[ports.ManifestEditor](ctx); err != nil {
		return nil, err
	}
	if deps.Inspector, err = graft.Dep[ports.CrateInspector](ctx); err != nil {
		return nil, err
	}
	if deps.Builds, err = graft.Dep[ports.BuildInfoStore](ctx); err != nil {
		return nil, err
	}
	if deps.Metadata, err = graft.Dep[ports.MetadataStore](ctx); err != nil {
		return nil, err
	}
	if deps.Aliases, err = graft.Dep[ports.AliasStore](ctx); err != nil {
		return nil, err
	}
	if deps.Cache, err = graft.Dep[ports.CacheManager](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if deps.Verifier, err = graft.Dep[ports.Verifier](ctx); err != nil {
		return nil, err
	}
	if deps.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
		return nil, err
	}
	if deps.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}
