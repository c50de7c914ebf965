package material

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
)

// Dielectric is a refractive material (glass, water): it either reflects or
// refracts the incident ray, chosen stochastically via the Schlick
// approximation of the Fresnel reflectance. A negative Radius on the
// Sphere wrapping this material flips the surface normal, producing a
// hollow shell when nested inside another dielectric of the opposite sign.
// It is a delta distribution: ScatterPDF always returns 1.
type Dielectric struct {
	base
	RefractionIndex float64
	Tex             Texture
}

// NewDielectric creates a dielectric material with a white attenuation.
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Tex: NewSolidColor(core.NewVec3(1, 1, 1))}
}

// NewDielectricTexture creates a dielectric material with a tinted attenuation.
func NewDielectricTexture(refractionIndex float64, tex Texture) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Tex: tex}
}

func (d *Dielectric) Scatter(rIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Color, core.Ray, bool) {
	eta := d.RefractionIndex
	if hit.FrontFace {
		eta = 1.0 / d.RefractionIndex
	}

	unitDirection := rIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, d.RefractionIndex) > sampler.Get1D() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, eta)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rIn.Time)
	attenuation := d.Tex.Sample(hit.UV.X, hit.UV.Y, hit.Point)
	return attenuation, scattered, true
}

func (d *Dielectric) ScatterPDF(_, _ core.Ray, _ HitRecord) float64 { return 1 }

// reflectance is the Schlick approximation of the Fresnel reflectance.
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
