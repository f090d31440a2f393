package cube

import (
	"math"
	"testing"
	"time"

	"glcube/internal/config"
	renderer "glcube/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestModelMatrixAtTime(t *testing.T) {
	elapsed := 3 * time.Second
	got := ModelMatrix(mgl32.Ident4(), elapsed, 0.5)
	want := mgl32.HomogRotate3D(1.5, mgl32.Vec3{0, 1, 0})
	assert.True(t, want.ApproxEqual(got))
}

func TestModelMatrixIsNotCumulative(t *testing.T) {
	base := mgl32.Ident4()
	_ = ModelMatrix(base, time.Second, 0.5)
	second := ModelMatrix(base, 2*time.Second, 0.5)

	want := mgl32.HomogRotate3D(1.0, mgl32.Vec3{0, 1, 0})
	assert.True(t, want.ApproxEqual(second))
	assert.Equal(t, mgl32.Ident4(), base)
}

func TestModelMatrixKeepsYAxis(t *testing.T) {
	m := ModelMatrix(mgl32.Ident4(), 1234*time.Millisecond, 0.5)
	up := m.Mul4x1(mgl32.Vec4{0, 1, 0, 0})
	assert.InDelta(t, 1.0, up[1], 1e-6)

	x := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	angle := 1.234 * 0.5
	assert.InDelta(t, math.Cos(angle), x[0], 1e-5)
	assert.InDelta(t, -math.Sin(angle), x[2], 1e-5)
}

func TestRenderBeforeInitIsNoop(t *testing.T) {
	c := NewCube(config.Default())
	// no program yet, so no GL call is issued
	c.Render(renderer.RenderContext{})
}

func TestDisposeWithoutResources(t *testing.T) {
	c := NewCube(config.Default())
	c.Dispose()
	c.Dispose()
	assert.True(t, c.Resources().Released())
	c.Render(renderer.RenderContext{})
}
