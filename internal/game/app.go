package game

import (
	"sync"
	"sync/atomic"
	"time"

	"glcube/internal/camera"
	"glcube/internal/config"
	renderer "glcube/internal/graphics/renderer"
	"glcube/internal/input"
	"glcube/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// App owns everything the main loop touches. It replaces the global engine
// object: subsystems receive what they need explicitly.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	camera       *camera.Camera
	renderer     *renderer.Renderer
	fpsLimiter   *FPSLimiter
	profiler     *profiling.Profiler
	log          *log.Entry

	start time.Time
	dt    time.Duration // previous frame's duration

	frames           int
	lastFPSCheckTime time.Time

	quit     atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// NewApp wires the window, input and camera to the given renderables and
// initialises them. The window's context must be current.
func NewApp(window *glfw.Window, cfg config.Settings, rs ...renderer.Renderable) (*App, error) {
	cam := camera.New(cfg)
	r, err := renderer.NewRenderer(cam, cfg.ClearColor, rs...)
	if err != nil {
		return nil, err
	}

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	now := time.Now()
	return &App{
		window:           window,
		inputManager:     im,
		camera:           cam,
		renderer:         r,
		fpsLimiter:       NewFPSLimiter(cfg.FPS),
		profiler:         profiling.New(),
		log:              log.WithField("component", "app"),
		start:            now,
		lastFPSCheckTime: now,
		done:             make(chan struct{}),
	}, nil
}

// Run drives the loop until the window closes, Escape is pressed or
// RequestQuit is called, then disposes the renderables.
func (a *App) Run() {
	defer a.finish()
	defer a.renderer.Dispose()

	a.log.WithField("fps_limit", a.fpsLimiter.Target()).Info("main loop started")
	for a.running() {
		a.tick()
	}
	a.log.Info("main loop stopped")
}

// RequestQuit asks the loop to stop after the current frame. Safe to call
// from any goroutine; the loop polls rather than waits, so no wakeup is needed.
func (a *App) RequestQuit() {
	a.quit.Store(true)
}

// Done is closed once Run has released every GL resource.
func (a *App) Done() <-chan struct{} {
	return a.done
}

// Shutdown requests a quit and waits for the loop to tear down.
func (a *App) Shutdown() {
	a.RequestQuit()
	<-a.done
}

// Quitting reports whether a quit was requested.
func (a *App) Quitting() bool {
	return a.quit.Load()
}

// Camera returns the app's camera
func (a *App) Camera() *camera.Camera {
	return a.camera
}

func (a *App) finish() {
	a.doneOnce.Do(func() { close(a.done) })
}

func (a *App) running() bool {
	return !a.quit.Load() && !a.window.ShouldClose()
}

func (a *App) tick() {
	a.profiler.Reset()
	now := time.Now()

	func() { defer a.profiler.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.handleQuit() {
		return
	}

	a.update(a.dt)

	func() {
		defer a.profiler.Track("renderer.Render")()
		a.renderer.Render(a.dt, now.Sub(a.start))
	}()

	func() { defer a.profiler.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.inputManager.PostUpdate()
	a.reportFrame(now)

	a.dt = a.fpsLimiter.Tick()
}

// handleQuit reports whether the loop must stop. Escape closes the window.
func (a *App) handleQuit() bool {
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	return !a.running()
}

// update advances the simulation by dt. It touches no GL state.
func (a *App) update(dt time.Duration) {
	defer a.profiler.Track("camera.Update")()
	a.camera.Update(a.inputManager, dt)
}

func (a *App) reportFrame(frameStart time.Time) {
	a.frames++

	if budget := a.fpsLimiter.Target(); budget > 0 {
		if took := time.Since(frameStart); took > budget {
			a.log.WithFields(log.Fields{
				"frame_ms":  float64(took.Microseconds()) / 1000.0,
				"budget_ms": float64(budget.Microseconds()) / 1000.0,
				"top":       a.profiler.TopN(3),
			}).Warn("slow frame")
		}
	}

	if time.Since(a.lastFPSCheckTime) >= time.Second {
		a.log.WithFields(log.Fields{
			"fps":      a.frames,
			"position": a.camera.Position,
			"top":      a.profiler.TopN(3),
		}).Info("frame stats")
		a.frames = 0
		a.lastFPSCheckTime = time.Now()
	}
}
