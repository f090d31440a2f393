package renderer

import (
	"fmt"
	"time"

	"glcube/internal/camera"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *camera.Camera
	clearColor  mgl32.Vec3
}

// NewRenderer initialises the given renderables in order. If one fails, the
// ones already initialised are disposed before the error is returned.
func NewRenderer(cam *camera.Camera, clearColor mgl32.Vec3, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		camera:     cam,
		clearColor: clearColor,
	}

	for i, renderable := range rs {
		if err := renderable.Init(); err != nil {
			renderable.Dispose()
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, renderable, err)
		}
	}
	r.renderables = rs

	return r, nil
}

// Render clears the framebuffer and draws every renderable
func (r *Renderer) Render(dt, elapsed time.Duration) {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := r.Context(dt, elapsed)
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Context builds the render context for the current camera state
func (r *Renderer) Context(dt, elapsed time.Duration) RenderContext {
	return RenderContext{
		Camera:  r.camera,
		DT:      dt,
		Elapsed: elapsed,
		View:    r.camera.ViewMatrix(),
		Proj:    r.camera.ProjectionMatrix(),
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *camera.Camera {
	return r.camera
}
