package material

import "github.com/kjmray/photon-forge/pkg/core"

// Texture maps a surface location (u,v,p) to a color.
type Texture interface {
	Sample(u, v float64, p core.Point3) core.Color
}

// SolidColor is a texture that returns the same color everywhere.
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a solid-color texture.
func NewSolidColor(color core.Color) *SolidColor { return &SolidColor{Color: color} }

func (s *SolidColor) Sample(_, _ float64, _ core.Point3) core.Color { return s.Color }
