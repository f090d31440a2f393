package renderer

import (
	"time"

	"glcube/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext is the per-frame state handed to every renderable
type RenderContext struct {
	Camera  *camera.Camera
	DT      time.Duration
	Elapsed time.Duration // wall-clock time since the app started
	View    mgl32.Mat4
	Proj    mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features.
// Dispose must be safe to call more than once, and Render after Dispose
// must draw nothing.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
