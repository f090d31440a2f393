package meshing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTexturedLayout(t *testing.T) {
	assert.Equal(t, 5, TexturedLayout.Floats())
	assert.Equal(t, int32(20), TexturedLayout.Stride())
	assert.Equal(t, []uintptr{0, 8}, TexturedLayout.Offsets())
}

func TestPositionLayout(t *testing.T) {
	assert.Equal(t, int32(12), PositionLayout.Stride())
	assert.Equal(t, []uintptr{0}, PositionLayout.Offsets())
}

func TestEmptyLayout(t *testing.T) {
	var l Layout
	assert.Equal(t, int32(0), l.Stride())
	assert.Equal(t, int32(0), l.VertexCount([]float32{1, 2, 3}))
}
