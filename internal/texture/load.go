// Package texture decodes image files into material.ImageTexture values,
// converting from encoded sRGB to the linear light the render core expects.
package texture

import (
	"fmt"
	stdimage "image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Load decodes the image file at path (PNG, JPEG, BMP or TIFF, selected by
// content rather than extension) into an ImageTexture with linear-light pixels.
func Load(path string) (*material.ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				srgbToLinear(float64(r)/0xffff),
				srgbToLinear(float64(g)/0xffff),
				srgbToLinear(float64(b)/0xffff),
			)
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}

// srgbToLinear applies the standard sRGB electro-optical transfer function,
// used instead of a flat gamma-2.2 approximation since encoded textures are
// typically sRGB, not pure power-law.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
