package geometry

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Cube is a true axis-aligned box (not six composed quads): a single slab
// test that also infers which face was struck to produce the normal.
type Cube struct {
	Min, Max core.Point3
	Material material.Material
}

// NewCube creates a cube from two opposite corners, reordered componentwise
// so Min <= Max on every axis.
func NewCube(p0, p1 core.Point3, mat material.Material) *Cube {
	return &Cube{Min: core.Min(p0, p1), Max: core.Max(p0, p1), Material: mat}
}

const cubeFaceEpsilon = 1e-4

func (c *Cube) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	tMin, tMax := tRange.Min, tRange.Max

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (c.Min.Axis(axis) - ray.Origin.Axis(axis)) * invD
		t1 := (c.Max.Axis(axis) - ray.Origin.Axis(axis)) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return material.HitRecord{}, false
		}
	}

	t := tMin
	if t < tRange.Min {
		t = tMax
	}
	if !tRange.Contains(t) {
		return material.HitRecord{}, false
	}

	point := ray.At(t)
	hit := material.HitRecord{T: t, Point: point, Material: c.Material}
	hit.SetFaceNormal(ray, c.faceNormal(point))
	return hit, true
}

// faceNormal infers which of the six faces the point lies on by comparing
// each axis against the box's extents within cubeFaceEpsilon, checking X
// then Y then Z and defaulting to +Z if nothing matches (a ray grazing an
// edge or corner).
func (c *Cube) faceNormal(p core.Point3) core.Vec3 {
	if math.Abs(p.X-c.Min.X) < cubeFaceEpsilon {
		return core.NewVec3(-1, 0, 0)
	}
	if math.Abs(p.X-c.Max.X) < cubeFaceEpsilon {
		return core.NewVec3(1, 0, 0)
	}
	if math.Abs(p.Y-c.Min.Y) < cubeFaceEpsilon {
		return core.NewVec3(0, -1, 0)
	}
	if math.Abs(p.Y-c.Max.Y) < cubeFaceEpsilon {
		return core.NewVec3(0, 1, 0)
	}
	if math.Abs(p.Z-c.Min.Z) < cubeFaceEpsilon {
		return core.NewVec3(0, 0, -1)
	}
	return core.NewVec3(0, 0, 1)
}

func (c *Cube) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(c.Min, c.Max)
}
