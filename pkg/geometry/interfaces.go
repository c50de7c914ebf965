// Package geometry implements the analytic shapes (sphere, quad, cube,
// constant medium), the affine Transformed wrapper and the BVH that
// accelerates scene intersection.
package geometry

import (
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Shape is the capability every intersectable geometric primitive
// implements: closed-form ray intersection and a conservative bounding box.
type Shape interface {
	Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool)
	BoundingBox() core.AABB
}
