package core

import (
	"math"
	"math/rand"

	fortiorand "fortio.org/rand"
)

// Sampler abstracts the uniform [0,1) source the render core consumes plus
// a handful of derived distributions. Keeping it behind an interface (the
// way the upstream renderer separates RNG policy from consumption) lets the
// same tracing code run against either the standard library generator or an
// alternate one, per goroutine, without synchronization.
type Sampler interface {
	// Get1D returns a uniform sample in [0,1).
	Get1D() float64
	// Get2D returns two independent uniform samples in [0,1).
	Get2D() (float64, float64)
	// Get3D returns three independent uniform samples in [0,1).
	Get3D() (float64, float64, float64)
}

// RandSampler wraps a *math/rand.Rand, the default Sampler implementation.
type RandSampler struct {
	rnd *rand.Rand
}

// NewRandSampler creates a RandSampler seeded with seed. Each rendering
// goroutine owns its own instance; *rand.Rand is not safe for concurrent use.
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandSampler) Get1D() float64 { return s.rnd.Float64() }
func (s *RandSampler) Get2D() (float64, float64) {
	return s.rnd.Float64(), s.rnd.Float64()
}
func (s *RandSampler) Get3D() (float64, float64, float64) {
	return s.rnd.Float64(), s.rnd.Float64(), s.rnd.Float64()
}

// FortioSampler is an alternate Sampler backed by fortio.org/rand's
// allocation-free generator, demonstrating that the core's dependency on
// Sampler is a genuine seam and not hard-wired to math/rand.
type FortioSampler struct {
	rnd *fortiorand.Rand
}

// NewFortioSampler creates a FortioSampler seeded with seed.
func NewFortioSampler(seed int64) *FortioSampler {
	return &FortioSampler{rnd: fortiorand.NewRand(uint64(seed))}
}

func (s *FortioSampler) Get1D() float64 { return s.rnd.Float64() }
func (s *FortioSampler) Get2D() (float64, float64) {
	return s.rnd.Float64(), s.rnd.Float64()
}
func (s *FortioSampler) Get3D() (float64, float64, float64) {
	return s.rnd.Float64(), s.rnd.Float64(), s.rnd.Float64()
}

// RandomInUnitDisk returns a uniformly-distributed point in the unit disk
// (z=0), used for thin-lens aperture sampling.
func RandomInUnitDisk(s Sampler) Vec3 {
	for {
		x1, x2 := s.Get2D()
		p := NewVec3(2*x1-1, 2*x2-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly-distributed point on the unit sphere.
func RandomUnitVector(s Sampler) Vec3 {
	for {
		x1, x2, x3 := s.Get3D()
		p := NewVec3(2*x1-1, 2*x2-1, 2*x3-1)
		lenSq := p.LengthSquared()
		if lenSq > 1e-160 && lenSq <= 1 {
			return p.Multiply(1 / math.Sqrt(lenSq))
		}
	}
}

// RandomCosineDirection draws a direction in the local z-up frame
// cosine-weighted over the hemisphere: x = cos(2*pi*xi1)*sqrt(xi2),
// y = sin(2*pi*xi1)*sqrt(xi2), z = sqrt(1-xi2).
func RandomCosineDirection(s Sampler) Vec3 {
	xi1, xi2 := s.Get2D()
	phi := 2 * math.Pi * xi1
	sqrtXi2 := math.Sqrt(xi2)
	return NewVec3(math.Cos(phi)*sqrtXi2, math.Sin(phi)*sqrtXi2, math.Sqrt(1-xi2))
}
