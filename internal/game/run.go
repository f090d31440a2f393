package game

import (
	"fmt"

	"glcube/internal/config"
	renderer "glcube/internal/graphics/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
	"github.com/xlab/closer"
)

// ConfigureLogging installs the text formatter and the configured level.
func ConfigureLogging(level string) error {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	return nil
}

// RunDemo opens the window, runs the loop over rs and tears everything down.
// It must be called from the main, OS-locked thread. Interrupt signals are
// routed through closer into a regular quit so GL objects are still released
// on the context thread.
func RunDemo(cfg config.Settings, rs ...renderer.Renderable) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := SetupWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := NewApp(window, cfg, rs...)
	if err != nil {
		return err
	}
	closer.Bind(app.Shutdown)

	app.Run()
	return nil
}
