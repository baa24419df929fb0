// Package tuple provides the homogeneous-coordinate value type shared by every other package.
package tuple

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// epsilon is the tolerance used when comparing tuples component-wise.
const epsilon float64 = 1e-5

// Tuple represents a 4-component homogeneous value.
// A tuple with W == 1 is a point, a tuple with W == 0 is a vector.
// Colours reuse the same layout with (X, Y, Z) as (red, green, blue) and W unused.
type Tuple struct {
	X, Y, Z, W float64
}

// Point returns a new point (W = 1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1.0}
}

// Vector returns a new vector (W = 0).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0.0}
}

// Color returns a new colour with the given red, green, and blue channels.
func Color(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b, W: 0.0}
}

// Add returns the component-wise sum of the tuples a and b.
// The W arithmetic makes point + vector a point and vector + vector a vector.
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
}

// Sub returns the component-wise difference of the tuples a and b.
// The W arithmetic makes point - point a vector and point - vector a point.
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W}
}

// Neg returns the component-wise negation of the tuple a.
func (a Tuple) Neg() Tuple {
	return Tuple{X: -a.X, Y: -a.Y, Z: -a.Z, W: -a.W}
}

// Scale returns the tuple a multiplied by the scalar s.
func (a Tuple) Scale(s float64) Tuple {
	return Tuple{X: s * a.X, Y: s * a.Y, Z: s * a.Z, W: s * a.W}
}

// Div returns the tuple a divided by the scalar s.
func (a Tuple) Div(s float64) Tuple {
	return Tuple{X: a.X / s, Y: a.Y / s, Z: a.Z / s, W: a.W / s}
}

// Len returns the length of the tuple a.
// The W component does not contribute.
func (a Tuple) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Norm returns the normalized form of the tuple a.
// All four components are divided by the length, so this must only be
// called on vectors (where W is zero and stays zero).
func (a Tuple) Norm() Tuple {
	mag := a.Len()
	return Tuple{X: a.X / mag, Y: a.Y / mag, Z: a.Z / mag, W: a.W / mag}
}

// Dot returns the dot product of the tuples a and b.
// All four components contribute; for vectors W contributes nothing.
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the cross product of the tuples a and b.
// Only the X, Y, and Z components are used, and the result is always a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X)
}

// Hadamard returns the component-wise product of the tuples a and b.
// This is how colours are mixed; the W product is inert.
func (a Tuple) Hadamard(b Tuple) Tuple {
	return Tuple{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z, W: a.W * b.W}
}

// Reflect returns the vector a reflected about the normal n.
func (a Tuple) Reflect(n Tuple) Tuple {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Equals returns whether the tuples a and b are equal to within a small tolerance.
func (a Tuple) Equals(b Tuple) bool {
	return scalar.EqualWithinAbs(a.X, b.X, epsilon) &&
		scalar.EqualWithinAbs(a.Y, b.Y, epsilon) &&
		scalar.EqualWithinAbs(a.Z, b.Z, epsilon) &&
		scalar.EqualWithinAbs(a.W, b.W, epsilon)
}
