package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// fixedSampler returns the same value from every draw, letting a test pin
// down exactly where ConstantMedium's free-path sample lands.
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64                   { return f.value }
func (f fixedSampler) Get2D() (float64, float64)        { return f.value, f.value }
func (f fixedSampler) Get3D() (float64, float64, float64) { return f.value, f.value, f.value }

func TestConstantMediumMissesWhenBoundaryMissed(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	fog := NewConstantMedium(boundary, 1.0, material.NewIsotropic(core.NewVec3(1, 1, 1)), fixedSampler{value: 0.5})

	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, 1, 0))
	_, ok := fog.Hit(ray, core.UniverseInterval)
	assert.False(t, ok, "a ray that never crosses the boundary sphere must not scatter")
}

func TestConstantMediumScattersInsideDenseFog(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	// A sampler value near 1 makes -log(xi) small, so the sampled free path
	// is short and must land well inside the two-unit boundary chord.
	fog := NewConstantMedium(boundary, 100.0, material.NewIsotropic(core.NewVec3(1, 1, 1)), fixedSampler{value: 0.9})

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := fog.Hit(ray, core.UniverseInterval)
	require.True(t, ok, "a dense medium with a short sampled free path must scatter inside the boundary")
	assert.Greater(t, hit.T, 4.0, "scatter point should be just past the entry wall at z=-1")
	assert.Less(t, hit.T, 6.0, "scatter point should stay well before the exit wall at z=1")
}

func TestConstantMediumPassesThroughWhenFreePathExceedsChord(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	// A sampler value near 0 makes -log(xi) large, so the free path always
	// exceeds the chord length and the medium must not report a hit.
	fog := NewConstantMedium(boundary, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1)), fixedSampler{value: 0.000001})

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	_, ok := fog.Hit(ray, core.UniverseInterval)
	assert.False(t, ok, "a free path longer than the boundary chord must not register a scatter")
}

func TestConstantMediumBoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(1, 2, 3), 2, material.NewLambertian(core.NewVec3(1, 1, 1)))
	fog := NewConstantMedium(boundary, 1.0, material.NewIsotropic(core.NewVec3(1, 1, 1)), fixedSampler{value: 0.5})

	assert.Equal(t, boundary.BoundingBox(), fog.BoundingBox())
}
