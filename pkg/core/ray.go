package core

// Ray is a parametric line origin + tau*direction, carrying a shutter time
// used to evaluate temporally-varying scene state (motion blur). Time is
// distinct from the path parameter tau passed to At.
type Ray struct {
	Origin    Point3
	Direction Vec3
	Time      float64
}

// NewRay creates a ray with shutter time 0.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Time: 0}
}

// NewRayAtTime creates a ray with an explicit shutter time.
func NewRayAtTime(origin Point3, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// NewRayTo creates a ray from origin toward (but not normalized to) to.
func NewRayTo(origin, to Point3) Ray {
	return Ray{Origin: origin, Direction: to.Subtract(origin), Time: 0}
}

// At evaluates the ray at path parameter tau: origin + tau*direction.
func (r Ray) At(tau float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(tau))
}
