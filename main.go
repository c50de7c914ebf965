// Command photon-forge renders a scene from the built-in catalogue to a
// PNG or PPM image.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	fortiolog "fortio.org/log"
	"fortio.org/progressbar"
	pnm "github.com/jbuchbinder/gopnm"

	"github.com/kjmray/photon-forge/internal/config"
	"github.com/kjmray/photon-forge/internal/logging"
	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/renderer"
	"github.com/kjmray/photon-forge/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML render config (flags below override it)")
	sceneName := flag.String("scene", "", "catalogue scene name, overrides config/scene.name")
	width := flag.Int("width", 0, "image width in pixels, overrides config")
	samples := flag.Int("samples", 0, "samples per pixel, overrides config")
	workers := flag.Int("workers", 0, "parallel row workers, 0 = auto-detect")
	output := flag.String("output", "", "output file path (.png or .ppm), overrides config")
	fastRand := flag.Bool("fast-rand", false, "use the fortio.org/rand sampler instead of math/rand")
	listScenes := flag.Bool("list-scenes", false, "print the catalogue scene names and exit")
	flag.Parse()

	if *listScenes {
		for _, name := range scene.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg := config.Config{}
	if *configPath != "" {
		var err error
		cfg, err = config.LoadResolved(*configPath)
		if err != nil {
			fortiolog.Fatalf("loading config: %v", err)
		}
	} else {
		cfg = config.Resolve(config.RawConfig{})
	}

	if *sceneName != "" {
		cfg.SceneName = *sceneName
	}
	if *width != 0 {
		cfg.Width = *width
		cfg.Height = int(math.Round(float64(*width) / cfg.AspectRatio))
	}
	if *samples != 0 {
		cfg.SamplesPerPixel = *samples
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *output != "" {
		cfg.OutputPath = *output
	}

	sc, err := scene.Build(cfg.SceneName, cfg.SceneSeed)
	if err != nil {
		fortiolog.Fatalf("building scene %q: %v", cfg.SceneName, err)
	}

	cam := renderer.NewCamera(
		sc.Camera.LookFrom, sc.Camera.LookAt, sc.Camera.VUp,
		cfg.VFov, cfg.AspectRatio, cfg.Aperture, sc.Camera.FocusDistance,
	)

	bar := progressbar.NewBar()
	bar.Max = int64(cfg.Height)

	logger := logging.Fortio{}
	startedAt := time.Now()

	rend := renderer.NewRenderer(cam, sc).
		Width(cfg.Width).
		Height(cfg.Height).
		Samples(cfg.SamplesPerPixel).
		MaxDepth(cfg.MaxDepth).
		Workers(cfg.Workers).
		Progress(rowProgress{bar}).
		Logger(logger)

	if *fastRand {
		rend = rend.SamplerFactory(func(seed int64) core.Sampler { return core.NewFortioSampler(seed) })
	}

	buffer, err := rend.Render(context.Background())
	if err != nil {
		fortiolog.Fatalf("rendering: %v", err)
	}

	fortiolog.Infof("rendered %s in %v", cfg.SceneName, time.Since(startedAt))

	if err := writeImage(cfg.OutputPath, buffer); err != nil {
		fortiolog.Fatalf("writing %s: %v", cfg.OutputPath, err)
	}
	fortiolog.Infof("wrote %s", cfg.OutputPath)
}

// rowProgress adapts fortio.org/progressbar's Bar to renderer.ProgressReporter.
type rowProgress struct {
	bar *progressbar.Bar
}

func (p rowProgress) Add(delta int) {
	p.bar.Progress(float64(delta))
}

// writeImage encodes buffer and writes it to path, selecting PPM (via
// gopnm) or PNG (via the standard library) by file extension.
func writeImage(path string, buffer *renderer.Buffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		img := rgb8ToImage(buffer)
		return pnm.Encode(f, img, pnm.PPM)
	}

	img := rgb8ToImage(buffer)
	return png.Encode(f, img)
}

func rgb8ToImage(buffer *renderer.Buffer) *image.RGBA {
	rgb := buffer.EncodeRGB8()
	img := image.NewRGBA(image.Rect(0, 0, buffer.Width, buffer.Height))
	for i := 0; i < buffer.Width*buffer.Height; i++ {
		img.Pix[i*4+0] = rgb[i*3+0]
		img.Pix[i*4+1] = rgb[i*3+1]
		img.Pix[i*4+2] = rgb[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}
