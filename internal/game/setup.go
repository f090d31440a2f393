package game

import (
	"fmt"

	"glcube/internal/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// SetupWindow creates the window and a current core-profile GL context with
// depth testing and back-face culling enabled. glfw must already be
// initialised on the calling (locked) thread.
func SetupWindow(cfg config.Settings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	log.WithFields(log.Fields{
		"gl_version": gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer":   gl.GoStr(gl.GetString(gl.RENDERER)),
		"width":      cfg.Width,
		"height":     cfg.Height,
	}).Info("OpenGL context created")

	// framebuffer can be larger than the window on high-dpi screens
	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	// Disable V-Sync; the FPS limiter paces frames
	glfw.SwapInterval(0)

	return window, nil
}
