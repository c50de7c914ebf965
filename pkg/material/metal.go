package material

import "github.com/kjmray/photon-forge/pkg/core"

// Metal is a reflective material with an optional fuzz factor that perturbs
// the reflected ray, producing a blurred mirror. It is a delta
// distribution: ScatterPDF always returns 1 so the renderer bypasses the
// cosine-weighted pdf factor for it.
type Metal struct {
	base
	Tex  Texture
	Fuzz float64
}

// NewMetal creates a metal material from a solid albedo and fuzz in [0,1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	return &Metal{Tex: NewSolidColor(albedo), Fuzz: clamp01(fuzz)}
}

// NewMetalTexture creates a metal material from an arbitrary texture.
func NewMetalTexture(tex Texture, fuzz float64) *Metal {
	return &Metal{Tex: tex, Fuzz: clamp01(fuzz)}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (m *Metal) Scatter(rIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Color, core.Ray, bool) {
	reflected := rIn.Direction.Reflect(hit.Normal).Normalize()
	reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))

	if reflected.Dot(hit.Normal) <= 0 {
		return core.Color{}, core.Ray{}, false
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rIn.Time)
	attenuation := m.Tex.Sample(hit.UV.X, hit.UV.Y, hit.Point)
	return attenuation, scattered, true
}

func (m *Metal) ScatterPDF(_, _ core.Ray, _ HitRecord) float64 { return 1 }
