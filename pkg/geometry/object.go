package geometry

import (
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Object bundles a Shape with the scene's ownership model: shapes and their
// materials are constructed together (materials live on the shape value
// itself, e.g. Sphere.Material) and an Object is what the Scene and BVH
// actually hold. Keeping this as a thin, explicit wrapper — rather than
// using Shape directly as the BVH's element type — mirrors the separate
// Object type the rendering pipeline is specified around, while avoiding a
// redundant second material handle alongside the one every shape already
// carries.
type Object struct {
	Shape Shape
}

// NewObject bundles a shape (with its material already attached) into an Object.
func NewObject(shape Shape) Object { return Object{Shape: shape} }

func (o Object) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	return o.Shape.Hit(ray, tRange)
}

func (o Object) BoundingBox() core.AABB { return o.Shape.BoundingBox() }
