package core

import "math"

// Interval is a closed range [Min, Max]. Constructors never presume their
// inputs are already ordered.
type Interval struct {
	Min, Max float64
}

// EmptyInterval and UniverseInterval are the two degenerate intervals used
// as fold seeds when building up a bounding interval from zero elements.
var (
	EmptyInterval    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval builds an interval from two bounds in either order.
func NewInterval(a, b float64) Interval {
	if a <= b {
		return Interval{Min: a, Max: b}
	}
	return Interval{Min: b, Max: a}
}

// Size returns Max - Min.
func (i Interval) Size() float64 { return i.Max - i.Min }

// Contains reports whether v lies within the closed interval.
func (i Interval) Contains(v float64) bool { return v >= i.Min && v <= i.Max }

// Surrounds reports whether v lies strictly within the open interval.
func (i Interval) Surrounds(v float64) bool { return v > i.Min && v < i.Max }

// Extend grows the interval symmetrically by delta on each side.
func (i Interval) Extend(delta float64) Interval {
	return Interval{Min: i.Min - delta, Max: i.Max + delta}
}

// Union returns the smallest interval containing both a and b.
func Union(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Clamp restricts v to the closed interval.
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}
