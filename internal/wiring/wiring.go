// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/runner/internal/adapters/alias"
	_ "go.trai.ch/runner/internal/adapters/cachedir"
	_ "go.trai.ch/runner/internal/adapters/cargo"
	_ "go.trai.ch/runner/internal/adapters/cas"
	_ "go.trai.ch/runner/internal/adapters/config"
	_ "go.trai.ch/runner/internal/adapters/detector"
	_ "go.trai.ch/runner/internal/adapters/fs"
	_ "go.trai.ch/runner/internal/adapters/linear"
	_ "go.trai.ch/runner/internal/adapters/logger"
	_ "go.trai.ch/runner/internal/adapters/shell"
	_ "go.trai.ch/runner/internal/adapters/telemetry"
	_ "go.trai.ch/runner/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/runner/internal/app"
)
