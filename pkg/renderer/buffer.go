package renderer

import (
	"github.com/kjmray/photon-forge/pkg/core"
)

// Buffer accumulates linear radiance per pixel and encodes it to an 8-bit
// gamma-corrected raster on demand.
type Buffer struct {
	Width, Height int
	pixels        []core.Color // row-major, linear light
}

// NewBuffer creates a buffer of the given dimensions, initialized to black.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, pixels: make([]core.Color, width*height)}
}

// Set stores the accumulated (already-averaged) linear radiance for pixel (x, y).
func (b *Buffer) Set(x, y int, color core.Color) {
	b.pixels[y*b.Width+x] = color
}

// At returns the linear radiance stored for pixel (x, y).
func (b *Buffer) At(x, y int) core.Color {
	return b.pixels[y*b.Width+x]
}

const displayGamma = 2.2

// EncodeRGB8 gamma-corrects and quantizes the buffer to 8-bit sRGB bytes,
// row-major, three bytes per pixel. Each channel is clamped to [0, 0.999]
// before scaling by 256, matching the reference tone-mapping convention.
func (b *Buffer) EncodeRGB8() []byte {
	out := make([]byte, 0, b.Width*b.Height*3)
	for _, c := range b.pixels {
		corrected := c.GammaCorrect(displayGamma).Clamp(0, 0.999)
		out = append(out,
			byte(256*corrected.X),
			byte(256*corrected.Y),
			byte(256*corrected.Z),
		)
	}
	return out
}
