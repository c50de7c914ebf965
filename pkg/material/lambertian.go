package material

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
)

// Lambertian is a perfectly diffuse material: it scatters cosine-weighted
// over the hemisphere above the hit normal.
type Lambertian struct {
	base
	Tex Texture
}

// NewLambertian creates a lambertian material from a solid albedo.
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Tex: NewSolidColor(albedo)}
}

// NewLambertianTexture creates a lambertian material from an arbitrary texture.
func NewLambertianTexture(tex Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

func (l *Lambertian) Scatter(rIn core.Ray, hit HitRecord, sampler core.Sampler) (core.Color, core.Ray, bool) {
	onb := core.NewONB(hit.Normal)
	direction := onb.Transform(core.RandomCosineDirection(sampler))
	if direction.NearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rIn.Time)
	attenuation := l.Tex.Sample(hit.UV.X, hit.UV.Y, hit.Normal)
	return attenuation, scattered, true
}

func (l *Lambertian) ScatterPDF(_, rOut core.Ray, hit HitRecord) float64 {
	cosTheta := hit.Normal.Dot(rOut.Direction.Normalize())
	return math.Max(0, cosTheta) / math.Pi
}
