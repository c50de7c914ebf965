package scene

import (
	"math/rand"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
)

// buildRandomScene procedurally generates a 22x22 grid of small spheres
// with randomly chosen Lambertian/Metal/Dielectric materials around three
// large feature spheres, deterministic for a given seed. Small spheres
// occasionally get a touch of vertical motion, exercising NewMovingSphere.
func buildRandomScene(seed int64) *Scene {
	rnd := rand.New(rand.NewSource(seed))
	sc := NewScene(core.NewVec3(0.5, 0.7, 1.0))

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rnd.Float64()
			center := core.NewVec3(float64(a)+0.9*rnd.Float64(), 0.2, float64(b)+0.9*rnd.Float64())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(rnd).MultiplyVec(randomColor(rnd))
				mat = material.NewLambertian(albedo)
				if rnd.Float64() < 0.5 {
					endCenter := center.Add(core.NewVec3(0, rnd.Float64()*0.5, 0))
					sc.AddShape(geometry.NewMovingSphere(center, endCenter, 0.2, mat))
					continue
				}
			case chooseMat < 0.95:
				albedo := randomColorInRange(rnd, 0.5, 1.0)
				fuzz := rnd.Float64() * 0.5
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}
			sc.AddShape(geometry.NewSphere(center, 0.2, mat))
		}
	}

	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	sc.AddShape(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	sc.AddShape(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	sc.BuildBVH()
	sc.Camera = CameraParams{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}
	return sc
}

func randomColor(rnd *rand.Rand) core.Color {
	return core.NewVec3(rnd.Float64(), rnd.Float64(), rnd.Float64())
}

func randomColorInRange(rnd *rand.Rand, min, max float64) core.Color {
	span := max - min
	return core.NewVec3(min+span*rnd.Float64(), min+span*rnd.Float64(), min+span*rnd.Float64())
}
