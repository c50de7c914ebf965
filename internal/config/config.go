// Package config loads and resolves the TOML render configuration.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultWidth           = 400
	defaultAspectRatio     = 16.0 / 9.0
	defaultSamplesPerPixel = 100
	defaultMaxDepth        = 50
	defaultVFov            = 20.0
	defaultSceneName       = "cornell"
	defaultOutputPath      = "output/image.png"
)

// RawImage mirrors the [image] table as written in the TOML file. The
// optional fields are pointers, left nil when unset, so Resolve can tell
// "absent" from "explicitly zero"; Width and OutputPath are plain values
// whose zero value Resolve treats as absent.
type RawImage struct {
	Width        int      `toml:"width"`
	Height       *int     `toml:"height"`
	AspectRatio  *float64 `toml:"aspect_ratio"`
	AspectWidth  *int     `toml:"aspect_width"`
	AspectHeight *int     `toml:"aspect_height"`
	OutputPath   string   `toml:"output_path"`
}

// RawRender mirrors the [render] table.
type RawRender struct {
	SamplesPerPixel int `toml:"samples_per_pixel"`
	MaxDepth        int `toml:"max_depth"`
	Workers         int `toml:"workers"`
}

// RawCamera mirrors the [camera] table.
type RawCamera struct {
	VFov     float64 `toml:"vfov"`
	Aperture float64 `toml:"aperture"`
}

// RawScene mirrors the [scene] table.
type RawScene struct {
	Name string `toml:"name"`
	Seed *int64 `toml:"seed"`
}

// RawConfig is the document shape read straight off disk.
type RawConfig struct {
	Image  RawImage  `toml:"image"`
	Render RawRender `toml:"render"`
	Camera RawCamera `toml:"camera"`
	Scene  RawScene  `toml:"scene"`
}

// Config is the fully resolved, render-ready configuration: every "or
// default" and "or derived from aspect ratio" decision has already been made.
type Config struct {
	Width, Height   int
	AspectRatio     float64
	OutputPath      string
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	VFov            float64
	Aperture        float64
	SceneName       string
	SceneSeed       int64
}

// Load reads and parses the TOML file at path without resolving it.
func Load(path string) (RawConfig, error) {
	var raw RawConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return raw, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return raw, nil
}

// Resolve turns a RawConfig into a Config, applying every default and the
// layered aspect-ratio fallback: aspect_ratio wins if present, otherwise
// aspect_width/aspect_height (both present, height nonzero) is used, and
// only then does the 16:9 default apply. Height, if absent, derives from
// width/aspect rounded to the nearest int.
func Resolve(raw RawConfig) Config {
	width := raw.Image.Width
	if width == 0 {
		width = defaultWidth
	}

	aspect := defaultAspectRatio
	switch {
	case raw.Image.AspectRatio != nil:
		aspect = *raw.Image.AspectRatio
	case raw.Image.AspectWidth != nil && raw.Image.AspectHeight != nil && *raw.Image.AspectHeight != 0:
		aspect = float64(*raw.Image.AspectWidth) / float64(*raw.Image.AspectHeight)
	}

	var height int
	if raw.Image.Height != nil {
		height = *raw.Image.Height
	} else {
		height = int(math.Round(float64(width) / aspect))
	}

	outputPath := raw.Image.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath
	}

	samples := raw.Render.SamplesPerPixel
	if samples == 0 {
		samples = defaultSamplesPerPixel
	}
	maxDepth := raw.Render.MaxDepth
	if maxDepth == 0 {
		maxDepth = defaultMaxDepth
	}

	vfov := raw.Camera.VFov
	if vfov == 0 {
		vfov = defaultVFov
	}

	sceneName := raw.Scene.Name
	if sceneName == "" {
		sceneName = defaultSceneName
	}
	var seed int64
	if raw.Scene.Seed != nil {
		seed = *raw.Scene.Seed
	}

	return Config{
		Width:           width,
		Height:          height,
		AspectRatio:     aspect,
		OutputPath:      outputPath,
		SamplesPerPixel: samples,
		MaxDepth:        maxDepth,
		Workers:         raw.Render.Workers,
		VFov:            vfov,
		Aperture:        raw.Camera.Aperture,
		SceneName:       sceneName,
		SceneSeed:       seed,
	}
}

// LoadResolved loads and resolves path in one step.
func LoadResolved(path string) (Config, error) {
	raw, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	return Resolve(raw), nil
}
