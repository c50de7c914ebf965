package material

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
)

// CheckerTexture toggles between two sub-textures based on the integer
// parity of the UV coordinates scaled by 1/scale, producing a checkerboard.
type CheckerTexture struct {
	invScale float64
	even     Texture
	odd      Texture
}

// NewCheckerTexture builds a checker texture from two solid colors.
func NewCheckerTexture(scale float64, even, odd core.Color) *CheckerTexture {
	return NewCheckerTextureFromTextures(scale, NewSolidColor(even), NewSolidColor(odd))
}

// NewCheckerTextureFromTextures builds a checker texture from two arbitrary
// sub-textures, letting e.g. an image texture be checkered against a solid.
func NewCheckerTextureFromTextures(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, even: even, odd: odd}
}

func (c *CheckerTexture) Sample(u, v float64, p core.Point3) core.Color {
	iu := int(math.Floor(c.invScale * u))
	iv := int(math.Floor(c.invScale * v))
	if (iu+iv)&1 == 0 {
		return c.even.Sample(u, v, p)
	}
	return c.odd.Sample(u, v, p)
}
