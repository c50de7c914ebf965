package geometry

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Sphere is a (possibly moving) sphere. Radius may be negative; intersection
// still uses its absolute value for bounding and the geometric solve, but
// the outward normal is divided by the signed radius, flipping it inward —
// the mechanism that turns a sphere into a hollow shell when nested inside
// another dielectric sphere of the opposite sign.
type Sphere struct {
	// Center is stored as a ray (origin=center at t=0, direction=center(1)-center(0))
	// evaluated at the query ray's shutter time. A static sphere has a
	// zero direction.
	Center   core.Ray
	Radius   float64
	Material material.Material
}

// NewSphere creates a static sphere.
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: core.NewRay(center, core.Vec3{}), Radius: radius, Material: mat}
}

// NewMovingSphere creates a sphere whose center moves linearly from centerAt0
// to centerAt1 over the shutter interval [0,1].
func NewMovingSphere(centerAt0, centerAt1 core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(centerAt0, centerAt1.Subtract(centerAt0)),
		Radius:   radius,
		Material: mat,
	}
}

func (s *Sphere) centerAt(time float64) core.Point3 { return s.Center.At(time) }

func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tRange.Surrounds(root) {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	hit := material.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
		UV:       sphereUV(outwardNormal),
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// sphereUV maps a point on the unit sphere to UV coordinates: phi is the
// angle around the equator from -X through +Z, theta the angle from the -Y
// pole to the +Y pole.
func sphereUV(p core.Vec3) core.Vec2 {
	n := p.Normalize()
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	theta := math.Acos(-n.Y)
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

func (s *Sphere) BoundingBox() core.AABB {
	radiusVec := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	if s.Center.Direction.IsZero() {
		center := s.Center.Origin
		return core.NewAABBFromPoints(center.Subtract(radiusVec), center.Add(radiusVec))
	}
	center0 := s.centerAt(0)
	center1 := s.centerAt(1)
	box0 := core.NewAABBFromPoints(center0.Subtract(radiusVec), center0.Add(radiusVec))
	box1 := core.NewAABBFromPoints(center1.Subtract(radiusVec), center1.Add(radiusVec))
	return core.SurroundingBox(box0, box1)
}
