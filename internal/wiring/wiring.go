// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fontpack/internal/adapters/cas"
	_ "go.trai.ch/fontpack/internal/adapters/codepoints"
	_ "go.trai.ch/fontpack/internal/adapters/compiler"
	_ "go.trai.ch/fontpack/internal/adapters/config"
	_ "go.trai.ch/fontpack/internal/adapters/fs"
	_ "go.trai.ch/fontpack/internal/adapters/logger"
	_ "go.trai.ch/fontpack/internal/adapters/stylesheet"
	// Register app and engine nodes.
	_ "go.trai.ch/fontpack/internal/app"
	_ "go.trai.ch/fontpack/internal/engine/transform"
)
