package game

import (
	"testing"
	"time"

	"glcube/internal/camera"
	"glcube/internal/config"
	"glcube/internal/input"
	"glcube/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

// newHeadlessApp builds the parts of App that update touches; no window or
// GL context is needed for simulation steps.
func newHeadlessApp(cfg config.Settings) *App {
	return &App{
		inputManager: input.NewInputManager(),
		camera:       camera.New(cfg),
		profiler:     profiling.New(),
		done:         make(chan struct{}),
	}
}

func TestHoldingForwardMovesCamera(t *testing.T) {
	cfg := config.Default()
	a := newHeadlessApp(cfg)
	start := a.Camera().Position

	a.inputManager.HandleKeyEvent(glfw.KeyW, glfw.Press)
	dt := 40 * time.Millisecond
	a.update(dt)

	want := start.Add(a.Camera().Forward.Mul(cfg.Speed * 40))
	for i := range want {
		assert.InDelta(t, want[i], a.Camera().Position[i], 1e-5)
	}
	assert.Contains(t, a.profiler.Snapshot(), "camera.Update")
}

func TestReleasedKeyStopsMovement(t *testing.T) {
	a := newHeadlessApp(config.Default())

	a.inputManager.HandleKeyEvent(glfw.KeyD, glfw.Press)
	a.update(10 * time.Millisecond)
	a.inputManager.HandleKeyEvent(glfw.KeyD, glfw.Release)
	moved := a.Camera().Position

	a.update(10 * time.Millisecond)
	assert.Equal(t, moved, a.Camera().Position)
}

func TestFinishClosesDoneOnce(t *testing.T) {
	a := newHeadlessApp(config.Default())
	a.finish()
	a.finish()

	select {
	case <-a.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownAfterFinishReturns(t *testing.T) {
	a := newHeadlessApp(config.Default())
	a.finish()

	a.Shutdown()
	assert.True(t, a.Quitting())
}

func TestShutdownWaitsForLoop(t *testing.T) {
	a := newHeadlessApp(config.Default())

	returned := make(chan struct{})
	go func() {
		a.Shutdown()
		close(returned)
	}()

	assert.Eventually(t, a.Quitting, time.Second, time.Millisecond)
	select {
	case <-returned:
		t.Fatal("Shutdown returned before teardown")
	default:
	}

	a.finish()
	assert.Eventually(t, func() bool {
		select {
		case <-returned:
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}
