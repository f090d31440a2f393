package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopN(t *testing.T) {
	p := New()
	p.Add("renderer.Render", 4200*time.Microsecond)
	p.Add("camera.Update", 100*time.Microsecond)
	p.Add("glfw.SwapBuffers", 2*time.Millisecond)
	p.Add("camera.Update", 100*time.Microsecond)

	assert.Equal(t, "renderer.Render:4.2ms, glfw.SwapBuffers:2.0ms", p.TopN(2))
	assert.Equal(t, "renderer.Render:4.2ms, glfw.SwapBuffers:2.0ms, camera.Update:0.2ms", p.TopN(10))
	assert.Equal(t, "", p.TopN(0))
}

func TestTrackAndReset(t *testing.T) {
	p := New()
	stop := p.Track("work")
	time.Sleep(time.Millisecond)
	stop()

	snap := p.Snapshot()
	assert.GreaterOrEqual(t, snap["work"], time.Millisecond)

	p.Reset()
	assert.Empty(t, p.Snapshot())
	assert.Contains(t, snap, "work", "snapshot is a copy")
}
