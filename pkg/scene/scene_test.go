package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
)

func TestSceneHitFallsBackToLinearScanWithoutBVH(t *testing.T) {
	sc := NewScene(core.NewVec3(1, 1, 1))
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat))

	require.Nil(t, sc.BVH)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := sc.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.T, 1e-9)
}

func TestSceneBVHAndLinearScanAgree(t *testing.T) {
	linear := NewScene(core.Color{})
	bvhScene := NewScene(core.Color{})
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	rnd := deterministicRand(7)
	for i := 0; i < 100; i++ {
		center := core.NewVec3(rnd()*20-10, rnd()*20-10, rnd()*20-30)
		linear.AddShape(geometry.NewSphere(center, 0.3, mat))
		bvhScene.AddShape(geometry.NewSphere(center, 0.3, mat))
	}
	bvhScene.BuildBVH()
	require.NotNil(t, bvhScene.BVH)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	wantHit, wantOk := linear.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	gotHit, gotOk := bvhScene.Hit(ray, core.NewInterval(0.001, math.Inf(1)))

	assert.Equal(t, wantOk, gotOk)
	if wantOk {
		assert.InDelta(t, wantHit.T, gotHit.T, 1e-9)
	}
}

func TestBuildUnknownSceneReturnsError(t *testing.T) {
	_, err := Build("does-not-exist", 0)
	assert.Error(t, err)
}

func TestBuildEveryCatalogueEntry(t *testing.T) {
	for _, name := range Names() {
		sc, err := Build(name, 42)
		require.NoErrorf(t, err, "building %s", name)
		assert.NotEmptyf(t, sc.Objects, "%s has no objects", name)
	}
}

func TestRandomSceneDeterministicForFixedSeed(t *testing.T) {
	a, err := Build("random-scene", 99)
	require.NoError(t, err)
	b, err := Build("random-scene", 99)
	require.NoError(t, err)

	assert.Equal(t, len(a.Objects), len(b.Objects))
	assert.Equal(t, a.Objects[0].BoundingBox(), b.Objects[0].BoundingBox())
}

// deterministicRand returns a closure over a tiny linear congruential
// generator so the BVH-vs-linear-scan test doesn't depend on math/rand's
// algorithm remaining stable across Go versions.
func deterministicRand(seed uint64) func() float64 {
	state := seed
	return func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>11) / float64(1<<53)
	}
}
