// Package scene assembles shapes into a renderable Scene and provides a
// catalogue of named scene constructors selectable from the CLI.
package scene

import (
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Scene holds the objects to render and the background seen by rays that
// escape the scene entirely.
type Scene struct {
	Objects    []geometry.Object
	BVH        *geometry.BVH
	Background core.Color
	Camera     CameraParams
}

// CameraParams is a catalogue scene's suggested framing: everything
// NewCamera needs except vfov/aperture, which come from render config so a
// user can dial depth of field independent of the chosen scene.
type CameraParams struct {
	LookFrom, LookAt, VUp core.Point3
	FocusDistance         float64
}

// NewScene creates an empty scene with the given background color.
func NewScene(background core.Color) *Scene {
	return &Scene{Background: background}
}

// Add appends a single object to the scene.
func (s *Scene) Add(object geometry.Object) {
	s.Objects = append(s.Objects, object)
}

// AddShape wraps shape in an Object and appends it.
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Add(geometry.NewObject(shape))
}

// AddList appends every object in objects.
func (s *Scene) AddList(objects []geometry.Object) {
	s.Objects = append(s.Objects, objects...)
}

// BuildBVH constructs the acceleration structure over the current objects.
// An empty scene leaves BVH nil; Hit falls back to a linear scan in that case.
func (s *Scene) BuildBVH() {
	bounded := make([]geometry.Bounded, len(s.Objects))
	for i := range s.Objects {
		bounded[i] = s.Objects[i]
	}
	s.BVH = geometry.NewBVH(bounded)
}

// Hit finds the closest intersection in tRange, using the BVH when present
// and otherwise scanning every object linearly.
func (s *Scene) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	if s.BVH != nil {
		return s.BVH.Hit(ray, tRange)
	}

	hitAny := false
	var best material.HitRecord
	closest := tRange.Max

	for _, obj := range s.Objects {
		if hit, ok := obj.Hit(ray, core.NewInterval(tRange.Min, closest)); ok {
			hitAny = true
			closest = hit.T
			best = hit
		}
	}
	return best, hitAny
}
