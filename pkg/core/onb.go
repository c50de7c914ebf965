package core

import "math"

// ONB is an orthonormal basis built from a single normal vector, used to
// transform a direction sampled in a canonical local frame (z-up) into
// world space around that normal.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis is the normalized normal.
func NewONB(normal Vec3) ONB {
	w := normal.Normalize()

	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Transform maps a local-frame vector into world space.
func (o ONB) Transform(v Vec3) Vec3 {
	return o.U.Multiply(v.X).Add(o.V.Multiply(v.Y)).Add(o.W.Multiply(v.Z))
}
