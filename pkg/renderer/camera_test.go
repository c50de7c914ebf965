package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjmray/photon-forge/pkg/core"
)

func TestCameraGetRayPointsTowardLookAt(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 1.0, 0, 1.0,
	)
	sampler := core.NewRandSampler(1)

	ray := cam.GetRay(0.5, 0.5, sampler)
	assert.InDelta(t, 0, ray.Origin.X, 1e-9)
	assert.InDelta(t, 0, ray.Origin.Y, 1e-9)
	assert.InDelta(t, 0, ray.Origin.Z, 1e-9)
	assert.Less(t, ray.Direction.Z, 0.0)
}

func TestCameraPinholeHasNoLensOffset(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		40, 16.0/9.0, 0, 5.0,
	)
	sampler := core.NewRandSampler(2)

	for i := 0; i < 20; i++ {
		ray := cam.GetRay(0.3, 0.7, sampler)
		assert.Equal(t, cam.origin, ray.Origin)
	}
}

func TestCameraAperturePerturbsOrigin(t *testing.T) {
	cam := NewCamera(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		40, 1.0, 2.0, 5.0,
	)
	sampler := core.NewRandSampler(3)

	sawOffset := false
	for i := 0; i < 50; i++ {
		ray := cam.GetRay(0.5, 0.5, sampler)
		if !ray.Origin.Equals(cam.origin, 1e-12) {
			sawOffset = true
			break
		}
	}
	assert.True(t, sawOffset, "expected at least one sample to offset across the lens")
}
