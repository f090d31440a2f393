package main

import (
	"runtime"

	"glcube/internal/config"
	"glcube/internal/game"
	"glcube/internal/graphics/renderables/triangle"

	log "github.com/sirupsen/logrus"
	"github.com/xlab/closer"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	cfg.Width = windowWidth
	cfg.Height = windowHeight
	cfg.Title = "glcube - triangle"
	if err := game.ConfigureLogging(cfg.LogLevel); err != nil {
		log.WithError(err).Warn("keeping default log level")
	}

	if err := game.RunDemo(cfg, triangle.NewTriangle(cfg)); err != nil {
		log.WithError(err).Error("triangle failed")
		closer.Exit(1)
	}
	closer.Close()
}
