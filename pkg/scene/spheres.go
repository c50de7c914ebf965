package scene

import (
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
)

// buildSpheres is the canonical three-sphere-on-a-ground-sphere scene: a
// Lambertian ground, a diffuse sphere, a hollow glass sphere (an index-1.5
// outer sphere around a smaller index-1/1.5 sphere that models the air gap),
// and a polished metal sphere.
func buildSpheres(seed int64) *Scene {
	sc := NewScene(core.NewVec3(0.5, 0.7, 1.0))

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	sc.AddShape(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center))
	sc.AddShape(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left))
	sc.AddShape(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble))
	sc.AddShape(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right))

	sc.BuildBVH()
	sc.Camera = CameraParams{
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		FocusDistance: 3.4,
	}
	return sc
}
