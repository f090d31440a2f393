package graphics

import (
	"glcube/internal/assets"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// LoadTexture loads an image file as a 2D RGB texture, flipped so that the
// first row uploaded is the bottom of the image.
func LoadTexture(path string) (uint32, error) {
	img, err := assets.LoadImageRGB(path)
	if err != nil {
		return 0, err
	}
	return NewTextureRGB(img), nil
}

// NewTextureRGB uploads packed RGB pixels.
func NewTextureRGB(img *assets.RGBImage) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for odd widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
