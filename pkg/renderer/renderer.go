package renderer

import (
	"context"
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/scene"
)

// shadowEpsilon keeps the scene intersection test from re-hitting the
// surface a ray just left due to floating point error.
const shadowEpsilon = 1e-3

// ProgressReporter receives a callback each time a row finishes rendering.
// fortio.org/progressbar satisfies this via a small adapter in the CLI.
type ProgressReporter interface {
	Add(delta int)
}

// Renderer renders a Scene through a Camera into a Buffer, parallelizing
// across image rows. Configure it with the chained Width/Height/... setters
// before calling Render.
type Renderer struct {
	camera     *Camera
	scene      *scene.Scene
	width      int
	height     int
	samples    int
	maxDepth   int
	workers    int
	progress   ProgressReporter
	logger     core.Logger
	newSampler func(seed int64) core.Sampler
}

// NewRenderer creates a renderer with sane defaults (400x225, 64 samples,
// depth 10, one worker per CPU, a math/rand-backed sampler).
func NewRenderer(camera *Camera, sc *scene.Scene) *Renderer {
	return &Renderer{
		camera:     camera,
		scene:      sc,
		width:      400,
		height:     225,
		samples:    64,
		maxDepth:   10,
		workers:    0,
		newSampler: func(seed int64) core.Sampler { return core.NewRandSampler(seed) },
	}
}

func (r *Renderer) Width(w int) *Renderer                 { r.width = w; return r }
func (r *Renderer) Height(h int) *Renderer                { r.height = h; return r }
func (r *Renderer) Samples(n int) *Renderer               { r.samples = n; return r }
func (r *Renderer) MaxDepth(d int) *Renderer              { r.maxDepth = d; return r }
func (r *Renderer) Workers(n int) *Renderer               { r.workers = n; return r }
func (r *Renderer) Progress(p ProgressReporter) *Renderer { r.progress = p; return r }

// Logger attaches a logger used to report render start/completion; nil (the
// default) disables logging.
func (r *Renderer) Logger(l core.Logger) *Renderer { r.logger = l; return r }

// SamplerFactory overrides how each worker's per-row Sampler is constructed,
// letting callers swap in the fortio.org/rand-backed implementation.
func (r *Renderer) SamplerFactory(f func(seed int64) core.Sampler) *Renderer {
	r.newSampler = f
	return r
}

// Render renders the configured scene into a Buffer, parallelizing across
// rows through a worker pool. Returns early with whatever rows finished if
// ctx is canceled.
func (r *Renderer) Render(ctx context.Context) (*Buffer, error) {
	if r.logger != nil {
		r.logger.Printf("rendering %dx%d at %d samples/pixel, depth %d", r.width, r.height, r.samples, r.maxDepth)
	}
	buffer := NewBuffer(r.width, r.height)
	pool := newRowWorkerPool(r, buffer)
	err := pool.run(ctx)
	if r.logger != nil {
		if err != nil {
			r.logger.Printf("render canceled: %v", err)
		} else {
			r.logger.Printf("render complete")
		}
	}
	return buffer, err
}

// trace is the recursive radiance estimator: emitted radiance plus, for
// scattering materials, attenuation * pdf * trace(scattered) / pdf. Delta
// materials (mirrors, glass) return ScatterPDF=1 so the pdf factor cancels.
func trace(r core.Ray, depth int, sc *scene.Scene, sampler core.Sampler) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, ok := sc.Hit(r, core.NewInterval(shadowEpsilon, math.Inf(1)))
	if !ok {
		return sc.Background
	}

	emitted := hit.Material.Emit(hit.UV.X, hit.UV.Y, hit.Point)

	attenuation, scattered, scatters := hit.Material.Scatter(r, hit, sampler)
	if !scatters {
		return emitted
	}

	pdf := hit.Material.ScatterPDF(r, scattered, hit)
	if pdf <= 0 {
		return emitted
	}

	incoming := trace(scattered, depth-1, sc, sampler)
	return emitted.Add(attenuation.MultiplyVec(incoming).Multiply(pdf).Multiply(1.0 / pdf))
}

// renderPixel estimates radiance for pixel (col, row) with stratified
// sampling: an M x M grid of jittered sub-samples, M = floor(sqrt(samples)),
// with the accumulated radiance divided by samples (not M*M).
func (r *Renderer) renderPixel(col, row int, sampler core.Sampler) core.Color {
	m := int(math.Sqrt(float64(r.samples)))
	if m < 1 {
		m = 1
	}

	var sum core.Color
	for x := 0; x < m; x++ {
		for y := 0; y < m; y++ {
			xi1, xi2 := sampler.Get2D()
			s := (float64(col) + (float64(x)+xi1)/float64(m)) / float64(r.width)
			t := (float64(row) + (float64(y)+xi2)/float64(m)) / float64(r.height)

			ray := r.camera.GetRay(s, t, sampler)
			sum = sum.Add(trace(ray, r.maxDepth, r.scene, sampler))
		}
	}

	return sum.Multiply(1.0 / float64(r.samples))
}
