package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// RGBImage is tightly packed 8-bit RGB, bottom row first, as GL expects
// for TexImage2D.
type RGBImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// LoadImageRGB decodes the image at path into a flipped RGB buffer.
func LoadImageRGB(path string) (*RGBImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, err := DecodeRGB(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// DecodeRGB decodes any registered image format (png, jpeg, bmp, tiff),
// drops alpha and flips rows vertically.
func DecodeRGB(r io.Reader) (*RGBImage, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(rgba, image.Point{}, src, b, xdraw.Src, nil)

	return flipRGB(rgba), nil
}

func flipRGB(src *image.NRGBA) *RGBImage {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := &RGBImage{Width: w, Height: h, Pix: make([]uint8, w*h*3)}

	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dst := out.Pix[(h-1-y)*w*3:]
		for x := 0; x < w; x++ {
			dst[x*3+0] = srcRow[x*4+0]
			dst[x*3+1] = srcRow[x*4+1]
			dst[x*3+2] = srcRow[x*4+2]
		}
	}
	return out
}
