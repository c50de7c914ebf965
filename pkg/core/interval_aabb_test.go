package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalOrderingIndependent(t *testing.T) {
	assert.Equal(t, NewInterval(1, 5), NewInterval(5, 1))
}

func TestIntervalContains(t *testing.T) {
	i := NewInterval(0, 10)
	assert.True(t, i.Contains(0))
	assert.True(t, i.Contains(10))
	assert.False(t, i.Contains(10.0001))
}

func TestIntervalUnion(t *testing.T) {
	a := NewInterval(0, 2)
	b := NewInterval(1, 5)
	u := Union(a, b)
	assert.Equal(t, Interval{Min: 0, Max: 5}, u)
}

func TestAABBFromPointsCommutative(t *testing.T) {
	p0 := NewVec3(0, 0, 0)
	p1 := NewVec3(1, 2, 3)
	assert.Equal(t, NewAABBFromPoints(p0, p1), NewAABBFromPoints(p1, p0))
}

func TestAABBIntersectHit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))
	assert.True(t, box.Intersect(ray, UniverseInterval))
}

func TestAABBIntersectMiss(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 5, 0), NewVec3(1, 0, 0))
	assert.False(t, box.Intersect(ray, UniverseInterval))
}

func TestAABBIntersectRespectsTRange(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))
	// the box is hit around t=4..6; restrict the search interval past it
	assert.False(t, box.Intersect(ray, NewInterval(100, 200)))
}

func TestAABBPaddingToMinimal(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	padded := flat.PaddingToMinimal()
	assert.GreaterOrEqual(t, padded.Y.Size(), minimalAxisSize)
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	assert.Equal(t, 1, box.LongestAxis())
}
