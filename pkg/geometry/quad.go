package geometry

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Quad is a planar parallelogram {origin + a*u + b*v : (a,b) in [0,1]^2}.
type Quad struct {
	Origin   core.Point3
	U, V     core.Vec3
	Normal   core.Vec3
	D        float64
	W        core.Vec3
	Material material.Material
}

// NewQuad creates a quad from a corner point and two edge vectors.
func NewQuad(origin, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	d := normal.Dot(origin)
	w := n.Multiply(1.0 / n.Dot(n))

	return &Quad{Origin: origin, U: u, V: v, Normal: normal, D: d, W: w, Material: mat}
}

func (q *Quad) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	denom := q.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return material.HitRecord{}, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denom
	if !tRange.Contains(t) {
		return material.HitRecord{}, false
	}

	hitPoint := ray.At(t)
	p := hitPoint.Subtract(q.Origin)
	alpha := q.W.Dot(p.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(p))

	if !isInterior(alpha, beta) {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		UV:       core.NewVec2(alpha, beta),
	}
	hit.SetFaceNormal(ray, q.Normal)
	return hit, true
}

func isInterior(alpha, beta float64) bool {
	unit := core.NewInterval(0, 1)
	return unit.Contains(alpha) && unit.Contains(beta)
}

func (q *Quad) BoundingBox() core.AABB {
	diag1 := core.NewAABBFromPoints(q.Origin, q.Origin.Add(q.U).Add(q.V))
	diag2 := core.NewAABBFromPoints(q.Origin.Add(q.U), q.Origin.Add(q.V))
	return core.SurroundingBox(diag1, diag2).PaddingToMinimal()
}
