// Package ray provides the ray value type cast through the scene.
package ray

import (
	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// Ray represents a ray with an origin point and a direction vector.
type Ray struct {
	Origin    tuple.Tuple
	Direction tuple.Tuple
}

// New returns a new ray with the given origin and direction.
func New(origin, direction tuple.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at distance t along the ray r.
// Negative values of t give points behind the origin.
func (r Ray) Position(t float64) tuple.Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray r with its origin and direction mapped
// through the matrix m. The direction is unaffected by any translation
// in m because its W component is zero.
func (r Ray) Transform(m matrix.Matrix) Ray {
	return Ray{Origin: m.TupleProd(r.Origin), Direction: m.TupleProd(r.Direction)}
}
