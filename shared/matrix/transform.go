// Package matrix provides square matrices and the affine transform builders used to place scene objects.
package matrix

import (
	"math"

	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// Translation returns a matrix that moves points by (x, y, z).
// Vectors are unaffected because their W component is zero.
func Translation(x, y, z float64) Matrix {
	return New(4, []float64{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

// Scaling returns a matrix that scales by (x, y, z) along the axes.
func Scaling(x, y, z float64) Matrix {
	return New(4, []float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}

// RotationX returns a matrix that rotates by r radians around the x axis.
func RotationX(r float64) Matrix {
	return New(4, []float64{
		1, 0, 0, 0,
		0, math.Cos(r), -math.Sin(r), 0,
		0, math.Sin(r), math.Cos(r), 0,
		0, 0, 0, 1,
	})
}

// RotationY returns a matrix that rotates by r radians around the y axis.
func RotationY(r float64) Matrix {
	return New(4, []float64{
		math.Cos(r), 0, math.Sin(r), 0,
		0, 1, 0, 0,
		-math.Sin(r), 0, math.Cos(r), 0,
		0, 0, 0, 1,
	})
}

// RotationZ returns a matrix that rotates by r radians around the z axis.
func RotationZ(r float64) Matrix {
	return New(4, []float64{
		math.Cos(r), -math.Sin(r), 0, 0,
		math.Sin(r), math.Cos(r), 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shearing returns a matrix that shears each coordinate in proportion
// to the other two. The parameter xy moves x in proportion to y, and
// so on for the rest.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return New(4, []float64{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
}

// ViewTransform returns the matrix that orients the world relative to a
// camera at the point from, looking at the point to, with the vector up
// indicating which way is up. The up vector need not be normalized or
// exactly perpendicular to the viewing direction.
func ViewTransform(from, to, up tuple.Tuple) Matrix {
	forward := to.Sub(from).Norm()
	left := forward.Cross(up.Norm())
	trueUp := left.Cross(forward)
	orientation := New(4, []float64{
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	})
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
