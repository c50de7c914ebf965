package material

import "github.com/kjmray/photon-forge/pkg/core"

// Light is a purely emissive material: it never scatters, only emits.
type Light struct {
	base
	Tex Texture
}

// NewLight creates a light material emitting a solid color.
func NewLight(emission core.Color) *Light {
	return &Light{Tex: NewSolidColor(emission)}
}

// NewLightTexture creates a light material emitting a texture's sample.
func NewLightTexture(tex Texture) *Light {
	return &Light{Tex: tex}
}

func (l *Light) Emit(u, v float64, p core.Point3) core.Color {
	return l.Tex.Sample(u, v, p)
}
