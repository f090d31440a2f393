package assets

import (
	"testing"

	"glcube/internal/meshing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shippedDir = "../../assets"

func TestShippedShadersDeclareLayoutInputs(t *testing.T) {
	cases := map[string]meshing.Layout{
		"default":  meshing.TexturedLayout,
		"triangle": meshing.PositionLayout,
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			src, err := LoadShaderSource(shippedDir+"/shaders", name)
			require.NoError(t, err)
			for _, attr := range layout {
				assert.Contains(t, src.Vertex, "in "+vecType(attr.Size)+" "+attr.Name+";")
			}
			assert.Contains(t, src.Vertex, "uniform mat4 m_proj;")
			assert.Contains(t, src.Vertex, "uniform mat4 m_view;")
		})
	}
}

func TestShippedTexture(t *testing.T) {
	img, err := LoadImageRGB(shippedDir + "/textures/crate.png")
	require.NoError(t, err)
	assert.Equal(t, 64, img.Width)
	assert.Equal(t, 64, img.Height)
	assert.Len(t, img.Pix, 64*64*3)
}

func vecType(size int32) string {
	if size == 1 {
		return "float"
	}
	return "vec" + string(rune('0'+size))
}
