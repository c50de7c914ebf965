// Package material implements the scattering models (Lambertian, Metal,
// Dielectric, Isotropic, Light) and the textures that feed them.
package material

import "github.com/kjmray/photon-forge/pkg/core"

// HitRecord is the bundle of quantities produced by a successful ray/shape
// intersection: hit point, path parameter, oriented normal, UV coordinates
// and the material bound to the surface.
type HitRecord struct {
	Point     core.Point3
	Normal    core.Vec3
	T         float64
	FrontFace bool
	UV        core.Vec2
	Material  Material
}

// SetFaceNormal orients Normal against the incident ray and records which
// side (front or back) was struck. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Material is the scattering model bound to a surface. Scatter returns the
// secondary ray and its attenuation, or ok=false if the material absorbs
// (e.g. a pure light). Emit returns emitted radiance (black for non-emissive
// materials). ScatterPDF evaluates the probability density of the direction
// a Scatter call actually produced, used by the renderer's pdf/trace/pdf
// identity; delta materials (Metal, Dielectric) return 1 to signal that the
// renderer should bypass the cosine weighting entirely.
type Material interface {
	Scatter(rIn core.Ray, hit HitRecord, sampler core.Sampler) (attenuation core.Color, scattered core.Ray, ok bool)
	Emit(u, v float64, p core.Point3) core.Color
	ScatterPDF(rIn, rOut core.Ray, hit HitRecord) float64
}

// base supplies the shared defaults (no scatter, black emission, uniform
// hemisphere pdf) that every concrete material embeds and overrides as
// needed, avoiding repetition of the same three stub methods five times.
type base struct{}

func (base) Scatter(core.Ray, HitRecord, core.Sampler) (core.Color, core.Ray, bool) {
	return core.Color{}, core.Ray{}, false
}

func (base) Emit(_, _ float64, _ core.Point3) core.Color { return core.Color{} }

func (base) ScatterPDF(_, _ core.Ray, _ HitRecord) float64 {
	const uniformHemispherePDF = 1.0 / (2.0 * 3.141592653589793)
	return uniformHemispherePDF
}
