package core

// AABB is an axis-aligned bounding box represented as three axis intervals.
type AABB struct {
	X, Y, Z Interval
}

// minimalAxisSize is the threshold below which PaddingToMinimal inflates an
// axis, avoiding degenerate slabs from perfectly planar shapes (e.g. a quad
// lying flat on the XZ plane has zero extent on Y).
const minimalAxisSize = 1e-3

// NewAABB builds an AABB from one interval per axis, each already ordered.
func NewAABB(x, y, z Interval) AABB { return AABB{X: x, Y: y, Z: z} }

// NewAABBFromPoints builds the smallest AABB containing all of p0, p1 and
// any further points, not presuming any particular corner ordering.
func NewAABBFromPoints(p0, p1 Point3, rest ...Point3) AABB {
	box := AABB{
		X: NewInterval(p0.X, p1.X),
		Y: NewInterval(p0.Y, p1.Y),
		Z: NewInterval(p0.Z, p1.Z),
	}
	for _, p := range rest {
		box = SurroundingBox(box, AABB{
			X: NewInterval(p.X, p.X),
			Y: NewInterval(p.Y, p.Y),
			Z: NewInterval(p.Z, p.Z),
		})
	}
	return box
}

// SurroundingBox returns the smallest AABB containing both a and b.
func SurroundingBox(a, b AABB) AABB {
	return AABB{
		X: Union(a.X, b.X),
		Y: Union(a.Y, b.Y),
		Z: Union(a.Z, b.Z),
	}
}

// AxisInterval returns the interval along the given axis (0=X, 1=Y, 2=Z).
func (b AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// LongestAxis returns the index (0, 1 or 2) of the box's longest axis.
func (b AABB) LongestAxis() int {
	xSize, ySize, zSize := b.X.Size(), b.Y.Size(), b.Z.Size()
	if xSize > ySize && xSize > zSize {
		return 0
	}
	if ySize > zSize {
		return 1
	}
	return 2
}

// PaddingToMinimal inflates any axis whose size is below minimalAxisSize.
func (b AABB) PaddingToMinimal() AABB {
	pad := func(i Interval) Interval {
		if i.Size() < minimalAxisSize {
			return i.Extend((minimalAxisSize - i.Size()) / 2)
		}
		return i
	}
	return AABB{X: pad(b.X), Y: pad(b.Y), Z: pad(b.Z)}
}

// Intersect reports whether ray hits the box anywhere within rayT, using the
// branchless per-axis slab test. Rays parallel to a slab rely on IEEE
// arithmetic (1/0 = +-Inf) to produce the correct miss/hit behavior.
func (b AABB) Intersect(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		axisInterval := b.AxisInterval(axis)
		invD := 1.0 / ray.Direction.Axis(axis)

		t0 := (axisInterval.Min - ray.Origin.Axis(axis)) * invD
		t1 := (axisInterval.Max - ray.Origin.Axis(axis)) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}
