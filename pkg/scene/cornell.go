package scene

import (
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
)

// buildCornell assembles the classic Cornell box: five quad walls (green
// left, red right as seen from the camera, white back/floor/ceiling), a quad
// ceiling light, and
// two rotated-and-translated cubes, all exercising Transformed, Cube and
// Quad together.
func buildCornell(seed int64) *Scene {
	sc := NewScene(core.NewVec3(0, 0, 0))

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewLight(core.NewVec3(15, 15, 15))

	const size = 555.0

	sc.AddShape(geometry.NewQuad(core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), green))
	sc.AddShape(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), red))
	sc.AddShape(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))
	sc.AddShape(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), white))
	sc.AddShape(geometry.NewQuad(core.NewVec3(size, size, size), core.NewVec3(-size, 0, 0), core.NewVec3(0, 0, -size), white))
	sc.AddShape(geometry.NewQuad(core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), white))

	tallBox := geometry.NewTransformed(
		geometry.NewCube(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
		geometry.Translate(core.NewVec3(265, 0, 295)).Mul4(geometry.RotateY(15)),
	)
	shortBox := geometry.NewTransformed(
		geometry.NewCube(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
		geometry.Translate(core.NewVec3(130, 0, 65)).Mul4(geometry.RotateY(-18)),
	)
	sc.AddShape(tallBox)
	sc.AddShape(shortBox)

	sc.BuildBVH()
	sc.Camera = CameraParams{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		FocusDistance: 800,
	}
	return sc
}
