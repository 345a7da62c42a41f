// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rosbrew/internal/adapters/cache"
	_ "go.trai.ch/rosbrew/internal/adapters/catkin"
	_ "go.trai.ch/rosbrew/internal/adapters/config"
	_ "go.trai.ch/rosbrew/internal/adapters/fs"
	_ "go.trai.ch/rosbrew/internal/adapters/installer"
	_ "go.trai.ch/rosbrew/internal/adapters/logger"
	_ "go.trai.ch/rosbrew/internal/adapters/prompt"
	_ "go.trai.ch/rosbrew/internal/adapters/rosdep"
	_ "go.trai.ch/rosbrew/internal/adapters/rosdistro"
	_ "go.trai.ch/rosbrew/internal/adapters/template"
	// Register app and engine nodes.
	_ "go.trai.ch/rosbrew/internal/app"
	_ "go.trai.ch/rosbrew/internal/engine/formula"
	_ "go.trai.ch/rosbrew/internal/engine/resolver"
)
