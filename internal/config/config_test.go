package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDerivesHeightFromAspectRatio(t *testing.T) {
	ratio := 2.0
	raw := RawConfig{Image: RawImage{Width: 800, AspectRatio: &ratio}}
	cfg := Resolve(raw)

	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
	assert.Equal(t, 2.0, cfg.AspectRatio)
}

func TestResolveFallsBackToAspectWidthHeight(t *testing.T) {
	w, h := 4, 3
	raw := RawConfig{Image: RawImage{Width: 400, AspectWidth: &w, AspectHeight: &h}}
	cfg := Resolve(raw)

	assert.InDelta(t, 4.0/3.0, cfg.AspectRatio, 1e-9)
	assert.Equal(t, 300, cfg.Height)
}

func TestResolveDefaultsTo16x9WithoutAnyAspectHint(t *testing.T) {
	raw := RawConfig{Image: RawImage{Width: 400}}
	cfg := Resolve(raw)

	assert.InDelta(t, 16.0/9.0, cfg.AspectRatio, 1e-9)
	assert.Equal(t, 225, cfg.Height)
}

func TestResolveExplicitHeightWins(t *testing.T) {
	h := 50
	raw := RawConfig{Image: RawImage{Width: 400, Height: &h}}
	cfg := Resolve(raw)

	assert.Equal(t, 50, cfg.Height)
}

func TestResolveAppliesDefaults(t *testing.T) {
	cfg := Resolve(RawConfig{})

	assert.Equal(t, defaultWidth, cfg.Width)
	assert.Equal(t, defaultSamplesPerPixel, cfg.SamplesPerPixel)
	assert.Equal(t, defaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, defaultSceneName, cfg.SceneName)
	assert.Equal(t, defaultVFov, cfg.VFov)
}
