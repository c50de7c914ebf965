package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomUnitVectorIsUnit(t *testing.T) {
	s := NewRandSampler(1)
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(s)
		assert.InDelta(t, 1.0, v.Length(), 1e-6)
	}
}

func TestRandomCosineDirectionHemisphere(t *testing.T) {
	s := NewRandSampler(2)
	for i := 0; i < 100; i++ {
		v := RandomCosineDirection(s)
		assert.GreaterOrEqual(t, v.Z, 0.0)
	}
}

func TestRandomInUnitDiskBounded(t *testing.T) {
	s := NewRandSampler(3)
	for i := 0; i < 100; i++ {
		p := RandomInUnitDisk(s)
		assert.LessOrEqual(t, p.LengthSquared(), 1.0)
		assert.Equal(t, 0.0, p.Z)
	}
}
