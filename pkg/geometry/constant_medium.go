package geometry

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// ConstantMedium is an isotropic participating medium (fog, smoke) filling
// the interior of a bounding shape, with scattering distance distributed
// exponentially per the given density.
type ConstantMedium struct {
	Boundary      Shape
	NegInvDensity float64
	Material      material.Material
	sampler       core.Sampler
}

// NewConstantMedium creates a constant medium of the given density bounded
// by boundary, scattering incoming light according to phaseMaterial
// (typically an Isotropic material). sampler supplies the random free path.
func NewConstantMedium(boundary Shape, density float64, phaseMaterial material.Material, sampler core.Sampler) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		Material:      phaseMaterial,
		sampler:       sampler,
	}
}

func (m *ConstantMedium) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	rec1, ok1 := m.Boundary.Hit(ray, core.UniverseInterval)
	if !ok1 {
		return material.HitRecord{}, false
	}
	rec2, ok2 := m.Boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)))
	if !ok2 {
		return material.HitRecord{}, false
	}

	t1 := math.Max(rec1.T, tRange.Min)
	t2 := math.Min(rec2.T, tRange.Max)
	if t1 >= t2 {
		return material.HitRecord{}, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.NegInvDensity * math.Log(m.sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	hit := material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.Material,
	}
	return hit, true
}

func (m *ConstantMedium) BoundingBox() core.AABB { return m.Boundary.BoundingBox() }
