package scene

import (
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
)

// buildQuadLight drops a horizontal quad light above a diffuse ground quad
// and a centered sphere, giving the quad-light solid-angle falloff property
// something to measure against.
func buildQuadLight(seed int64) *Scene {
	sc := NewScene(core.NewVec3(0, 0, 0))

	ground := material.NewLambertian(core.NewVec3(0.2, 0.2, 0.2))
	sphereMat := material.NewLambertian(core.NewVec3(0.6, 0.2, 0.2))
	light := material.NewLight(core.NewVec3(12, 12, 12))

	sc.AddShape(NewGroundQuad(core.NewVec3(0, 0, 0), 10, ground))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, sphereMat))
	sc.AddShape(geometry.NewQuad(
		core.NewVec3(-1, 4, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		light,
	))

	sc.BuildBVH()
	sc.Camera = CameraParams{
		LookFrom:      core.NewVec3(0, 3, 9),
		LookAt:        core.NewVec3(0, 1, 0),
		VUp:           core.NewVec3(0, 1, 0),
		FocusDistance: 9,
	}
	return sc
}

// NewGroundQuad builds a large horizontal quad centered at center, replacing
// an infinite ground plane with a finite one the BVH can bound.
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, size)
	return geometry.NewQuad(corner, u, v, mat)
}
