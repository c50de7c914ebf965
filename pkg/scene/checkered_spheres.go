package scene

import (
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
)

// buildCheckeredSpheres stacks two large spheres sharing a checker texture,
// exercising CheckerTexture.Sample across a curved UV parameterization.
func buildCheckeredSpheres(seed int64) *Scene {
	sc := NewScene(core.NewVec3(0.5, 0.7, 1.0))

	checker := material.NewCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	mat := material.NewLambertianTexture(checker)

	sc.AddShape(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, mat))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, mat))

	sc.BuildBVH()
	sc.Camera = CameraParams{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}
	return sc
}
