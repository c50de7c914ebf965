package renderer

import (
	"math"

	"github.com/kjmray/photon-forge/pkg/core"
)

// Camera generates primary rays for a thin-lens perspective projection,
// supporting depth of field via a finite aperture and a shutter interval
// for motion blur.
type Camera struct {
	origin     core.Point3
	upperLeft  core.Point3
	horizontal core.Vec3 // full pixel-plane width, left to right
	vertical   core.Vec3 // full pixel-plane height, top to bottom
	u, v, w    core.Vec3 // camera basis: u=right, v=up, w=backward
	lensRadius float64
}

// NewCamera builds a camera looking from lookFrom toward lookAt, with vUp
// defining the roll. vfovDeg is the vertical field of view in degrees,
// aspect the width/height ratio, aperture the lens diameter (0 disables
// depth of field) and focusDistance the distance to the plane in focus.
func NewCamera(lookFrom, lookAt, vUp core.Point3, vfovDeg, aspect, aperture, focusDistance float64) *Camera {
	theta := vfovDeg * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * halfHeight * focusDistance
	viewportWidth := viewportHeight * aspect

	w := lookFrom.Subtract(lookAt).Normalize()
	u := vUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Negate().Multiply(viewportHeight)
	upperLeft := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:     lookFrom,
		upperLeft:  upperLeft,
		horizontal: horizontal,
		vertical:   vertical,
		u:          u,
		v:          v,
		w:          w,
		lensRadius: aperture / 2.0,
	}
}

// GetRay generates a ray through pixel-plane coordinates (s, t) in [0,1]^2,
// offsetting the origin across the lens disk and assigning a random shutter
// time for motion blur. sampler is caller-owned so each rendering goroutine
// can supply its own, since Sampler implementations are not safe for
// concurrent use.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	direction := c.upperLeft.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := sampler.Get1D()
	return core.NewRayAtTime(origin, direction, time)
}
