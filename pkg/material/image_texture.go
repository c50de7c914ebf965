package material

import "github.com/kjmray/photon-forge/pkg/core"

// ImageTexture samples color from a decoded raster image. Decoding from disk
// (sRGB-to-linear conversion, format sniffing) is a driver-level concern
// handled by internal/texture; this type only owns the decoded pixel buffer.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // row-major, linear light: Pixels[y*Width+x]
}

// NewImageTexture wraps an already-decoded linear-light pixel buffer.
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// Sample nearest-neighbor samples the texture at (u,v), clamping both to
// [0,1] and flipping v so that v=1 maps to the top row of the source image.
func (t *ImageTexture) Sample(u, v float64, _ core.Point3) core.Color {
	if len(t.Pixels) == 0 || t.Width == 0 || t.Height == 0 {
		return core.NewVec3(0, 1, 1) // cyan: visible placeholder for a missing texture
	}

	u = clamp01(u)
	v = clamp01(v)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}
