// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/swap/internal/adapters/config"
	_ "go.trai.ch/swap/internal/adapters/logger"
	_ "go.trai.ch/swap/internal/adapters/pool"
	_ "go.trai.ch/swap/internal/adapters/registry"
	_ "go.trai.ch/swap/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/swap/internal/app"
	_ "go.trai.ch/swap/internal/engine/resolver"
	_ "go.trai.ch/swap/internal/engine/wirer"
)
