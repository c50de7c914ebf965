package geometry

import (
	"sort"

	"github.com/kjmray/photon-forge/pkg/core"
	"github.com/kjmray/photon-forge/pkg/material"
)

// Bounded is implemented by anything a BVH can hold: an Object, or another
// BVH node (letting BVHs nest, though this package never does so itself).
type Bounded interface {
	Shape
}

// BVH is a node in the bounding volume hierarchy: either a Leaf holding
// exactly one object, or an Inner node holding two children.
type BVH struct {
	bbox        core.AABB
	object      Bounded // set on leaves
	left, right *BVH    // set on inner nodes
}

// NewBVH builds a BVH over objects. An empty slice returns nil: the scene
// falls back to a linear scan rather than treating this as an error.
func NewBVH(objects []Bounded) *BVH {
	if len(objects) == 0 {
		return nil
	}
	items := make([]Bounded, len(objects))
	copy(items, objects)
	return buildBVH(items)
}

func buildBVH(objects []Bounded) *BVH {
	bbox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		bbox = core.SurroundingBox(bbox, obj.BoundingBox())
	}
	axis := bbox.LongestAxis()

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min < objects[j].BoundingBox().AxisInterval(axis).Min
	})

	switch len(objects) {
	case 1:
		return &BVH{bbox: objects[0].BoundingBox(), object: objects[0]}
	case 2:
		left := &BVH{bbox: objects[0].BoundingBox(), object: objects[0]}
		right := &BVH{bbox: objects[1].BoundingBox(), object: objects[1]}
		return &BVH{bbox: core.SurroundingBox(left.bbox, right.bbox), left: left, right: right}
	default:
		mid := len(objects) / 2
		left := buildBVH(objects[:mid])
		right := buildBVH(objects[mid:])
		return &BVH{bbox: core.SurroundingBox(left.bbox, right.bbox), left: left, right: right}
	}
}

// Hit traverses the BVH, tightening the search interval between the left
// and right subtree so the closest hit wins without sorting children by
// ray direction.
func (b *BVH) Hit(ray core.Ray, tRange core.Interval) (material.HitRecord, bool) {
	if !b.bbox.Intersect(ray, tRange) {
		return material.HitRecord{}, false
	}

	if b.object != nil {
		return b.object.Hit(ray, tRange)
	}

	hitAny := false
	var best material.HitRecord
	searchRange := tRange

	if hit, ok := b.left.Hit(ray, searchRange); ok {
		hitAny = true
		best = hit
		searchRange.Max = hit.T
	}
	if hit, ok := b.right.Hit(ray, searchRange); ok {
		hitAny = true
		best = hit
	}
	return best, hitAny
}

func (b *BVH) BoundingBox() core.AABB { return b.bbox }
