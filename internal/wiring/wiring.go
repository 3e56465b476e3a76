// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stylecache/internal/adapters/config"
	_ "go.trai.ch/stylecache/internal/adapters/fs"
	_ "go.trai.ch/stylecache/internal/adapters/logger"
	_ "go.trai.ch/stylecache/internal/adapters/minify"
	_ "go.trai.ch/stylecache/internal/adapters/telemetry"
	_ "go.trai.ch/stylecache/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/stylecache/internal/app"
)
