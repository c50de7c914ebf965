package material

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
)

// Isotropic scatters uniformly in every direction, modeling the scattering
// event inside a participating medium (ConstantMedium).
type Isotropic struct {
	base
	Tex Texture
}

// NewIsotropic creates an isotropic material from a solid albedo.
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Tex: NewSolidColor(albedo)}
}

// NewIsotropicTexture creates an isotropic material from an arbitrary texture.
func NewIsotropicTexture(tex Texture) *Isotropic {
	return &Isotropic{Tex: tex}
}

func (i *Isotropic) Scatter(rIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Color, core.Ray, bool) {
	scattered := core.NewRayAtTime(hit.Point, core.RandomUnitVector(sampler), rIn.Time)
	attenuation := i.Tex.Sample(hit.UV.X, hit.UV.Y, hit.Point)
	return attenuation, scattered, true
}

func (i *Isotropic) ScatterPDF(_, _ core.Ray, _ HitRecord) float64 {
	return 1.0 / (4.0 * math.Pi)
}
