package main

import (
	"runtime"

	"glcube/internal/config"
	"glcube/internal/game"
	"glcube/internal/graphics/renderables/cube"

	log "github.com/sirupsen/logrus"
	"github.com/xlab/closer"
)

func init() {
	// GL and glfw calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	if err := game.ConfigureLogging(cfg.LogLevel); err != nil {
		log.WithError(err).Warn("keeping default log level")
	}

	if err := game.RunDemo(cfg, cube.NewCube(cfg)); err != nil {
		log.WithError(err).Error("glcube failed")
		closer.Exit(1)
	}
	closer.Close()
}
