package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Transformed wraps any Shape with a 4x4 affine transform, letting the same
// primitive be translated, rotated and scaled without each shape
// implementing its own transform support.
type Transformed struct {
	Inner     Shape
	transform mgl64.Mat4
	inverse   mgl64.Mat4
	normal    mgl64.Mat3 // inverse-transpose of the 3x3 linear part, for normals
}

// NewTransformed wraps inner with the affine transform T.
func NewTransformed(inner Shape, transform mgl64.Mat4) *Transformed {
	inverse := transform.Inv()
	normal := inverse.Mat3().Transpose()
	return &Transformed{Inner: inner, transform: transform, inverse: inverse, normal: normal}
}

// Translate returns a transform translating by d.
func Translate(d core.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(d.X, d.Y, d.Z)
}

// ScaleBy returns a transform scaling each axis independently.
func ScaleBy(s core.Vec3) mgl64.Mat4 {
	return mgl64.Scale3D(s.X, s.Y, s.Z)
}

// RotateY returns a transform rotating by angleDeg degrees about the Y axis.
func RotateY(angleDeg float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(mgl64.DegToRad(angleDeg))
}

func transformPoint(m mgl64.Mat4, p core.Point3) core.Point3 {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(v[0], v[1], v[2])
}

func transformDirection(m mgl64.Mat4, d core.Vec3) core.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return core.NewVec3(v[0], v[1], v[2])
}

func transformNormal(m mgl64.Mat3, n core.Vec3) core.Vec3 {
	v := m.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
	return core.NewVec3(v[0], v[1], v[2])
}

func (t *Transformed) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	localRay := core.NewRayAtTime(
		transformPoint(t.inverse, ray.Origin),
		transformDirection(t.inverse, ray.Direction),
		ray.Time,
	)

	hit, ok := t.Inner.Hit(localRay, tRange)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = transformPoint(t.transform, hit.Point)
	// hit.Normal holds the inner shape's normal oriented against the local
	// ray; undo that orientation to get the local outward normal, then
	// re-orient in world space against the original (untransformed) ray.
	localOutward := hit.Normal
	if !hit.FrontFace {
		localOutward = localOutward.Negate()
	}
	outwardNormal := transformNormal(t.normal, localOutward).Normalize()
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

func (t *Transformed) BoundingBox() core.AABB {
	inner := t.Inner.BoundingBox()
	corners := [8]core.Point3{
		core.NewVec3(inner.X.Min, inner.Y.Min, inner.Z.Min),
		core.NewVec3(inner.X.Min, inner.Y.Min, inner.Z.Max),
		core.NewVec3(inner.X.Min, inner.Y.Max, inner.Z.Min),
		core.NewVec3(inner.X.Min, inner.Y.Max, inner.Z.Max),
		core.NewVec3(inner.X.Max, inner.Y.Min, inner.Z.Min),
		core.NewVec3(inner.X.Max, inner.Y.Min, inner.Z.Max),
		core.NewVec3(inner.X.Max, inner.Y.Max, inner.Z.Min),
		core.NewVec3(inner.X.Max, inner.Y.Max, inner.Z.Max),
	}

	transformed := make([]core.Point3, 8)
	for i, c := range corners {
		transformed[i] = transformPoint(t.transform, c)
	}
	return core.NewAABBFromPoints(transformed[0], transformed[1], transformed[2:]...)
}
