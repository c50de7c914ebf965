package renderer

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/geometry"
	"github.com/kjmray/photon-forge/pkg/material"
	"github.com/kjmray/photon-forge/pkg/scene"
)

func flatCamera(aspect float64) *Camera {
	return NewCamera(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, aspect, 0, 1.0,
	)
}

func TestRenderBackgroundOnlySceneMatchesExactGammaFormula(t *testing.T) {
	sc := scene.NewScene(core.NewVec3(0.5, 0.5, 0.5))
	sc.BuildBVH()

	r := NewRenderer(flatCamera(1), sc).Width(1).Height(1).Samples(1).MaxDepth(1).Workers(1)
	buffer, err := r.Render(context.Background())
	require.NoError(t, err)

	want := byte(256 * math.Min(math.Pow(0.5, 1.0/2.2), 0.999))
	got := buffer.EncodeRGB8()
	assert.Equal(t, want, got[0])
	assert.Equal(t, want, got[1])
	assert.Equal(t, want, got[2])
}

func TestRenderSinglePixelRedSphereIsReddest(t *testing.T) {
	sc := scene.NewScene(core.NewVec3(0, 0, 0))
	red := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red))
	light := material.NewLight(core.NewVec3(1, 1, 1))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -5), 3, light))
	sc.BuildBVH()

	r := NewRenderer(flatCamera(1), sc).Width(1).Height(1).Samples(16).MaxDepth(4).Workers(1)
	buffer, err := r.Render(context.Background())
	require.NoError(t, err)

	c := buffer.At(0, 0)
	assert.Greater(t, c.X, c.Y)
	assert.Greater(t, c.X, c.Z)
}

func TestRenderHollowGlassGapReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.3, 0.3, 0.9)
	sc := scene.NewScene(background)
	glass := material.NewDielectric(1.5)
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass))
	sc.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1), -0.4, glass))
	sc.BuildBVH()

	cam := flatCamera(1)
	ray := cam.GetRay(0.5, 0.5, core.NewRandSampler(1))

	outerHit, ok := sc.Hit(ray, core.NewInterval(1e-3, math.Inf(1)))
	require.True(t, ok, "a ray through the lens center must hit the outer shell")

	innerTRange := core.NewInterval(outerHit.T+1e-6, math.Inf(1))
	_, innerOK := sc.Hit(ray, innerTRange)
	require.True(t, innerOK, "the ray must also reach the inner (reversed-normal) shell")

	r := NewRenderer(cam, sc).Width(1).Height(1).Samples(64).MaxDepth(8).Workers(1)
	buffer, err := r.Render(context.Background())
	require.NoError(t, err)

	c := buffer.At(0, 0)
	assert.InDelta(t, background.X, c.X, 0.3)
	assert.InDelta(t, background.Y, c.Y, 0.3)
	assert.InDelta(t, background.Z, c.Z, 0.3)
}

func TestRenderBVHAndLinearScanProduceIdenticalImage(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	makeScene := func(withBVH bool) *scene.Scene {
		sc := scene.NewScene(core.NewVec3(0.5, 0.7, 1.0))
		seed := uint64(3)
		for i := 0; i < 100; i++ {
			seed = seed*6364136223846793005 + 1442695040888963407
			x := float64(seed>>11)/float64(1<<53)*10 - 5
			seed = seed*6364136223846793005 + 1442695040888963407
			y := float64(seed>>11)/float64(1<<53)*10 - 5
			seed = seed*6364136223846793005 + 1442695040888963407
			z := float64(seed>>11)/float64(1<<53)*10 - 20
			sc.AddShape(geometry.NewSphere(core.NewVec3(x, y, z), 0.4, mat))
		}
		if withBVH {
			sc.BuildBVH()
		}
		return sc
	}

	cam := flatCamera(1)
	linear := NewRenderer(cam, makeScene(false)).Width(8).Height(8).Samples(1).MaxDepth(2).Workers(1)
	withBVH := NewRenderer(cam, makeScene(true)).Width(8).Height(8).Samples(1).MaxDepth(2).Workers(1)

	linear.newSampler = func(seed int64) core.Sampler { return core.NewRandSampler(42) }
	withBVH.newSampler = func(seed int64) core.Sampler { return core.NewRandSampler(42) }

	linearBuf, err := linear.Render(context.Background())
	require.NoError(t, err)
	bvhBuf, err := withBVH.Render(context.Background())
	require.NoError(t, err)

	assert.Equal(t, linearBuf.EncodeRGB8(), bvhBuf.EncodeRGB8())
}

func TestRenderMotionBlurSilhouetteWiderThanStatic(t *testing.T) {
	widthAt := func(moving bool) int {
		sc := scene.NewScene(core.NewVec3(1, 1, 1))
		mat := material.NewLambertian(core.NewVec3(0.1, 0.1, 0.1))
		if moving {
			sc.AddShape(geometry.NewMovingSphere(core.NewVec3(0, 0, -1), core.NewVec3(0.6, 0, -1), 0.3, mat))
		} else {
			sc.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.3, mat))
		}
		sc.BuildBVH()

		cam := flatCamera(1)
		r := NewRenderer(cam, sc).Width(40).Height(1).Samples(16).MaxDepth(1).Workers(1)
		buffer, err := r.Render(context.Background())
		require.NoError(t, err)

		hits := 0
		for x := 0; x < 40; x++ {
			if buffer.At(x, 0).X < 0.99 {
				hits++
			}
		}
		return hits
	}

	assert.Greater(t, widthAt(true), widthAt(false))
}
