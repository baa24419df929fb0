// Package scene provides the lights, materials, shapes, and world that make up a renderable scene.
package scene

import (
	"fmt"
	"math"

	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/ray"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// Sphere represents a unit sphere at the object-space origin, placed in
// world space by its transform. Spheres are read-only during a render pass.
type Sphere struct {
	Material Material

	transform        matrix.Matrix
	inverse          matrix.Matrix
	inverseTranspose matrix.Matrix
}

// NewSphere returns a new unit sphere with the identity placement and the default material.
func NewSphere() *Sphere {
	return &Sphere{
		Material:         DefaultMaterial(),
		transform:        matrix.Identity(),
		inverse:          matrix.Identity(),
		inverseTranspose: matrix.Identity(),
	}
}

// Transform returns the object-to-world placement of the sphere s.
func (s *Sphere) Transform() matrix.Matrix {
	return s.transform
}

// SetTransform sets the object-to-world placement of the sphere s.
// The inverse is computed here, so a singular placement is rejected at
// construction time rather than corrupting the render later.
func (s *Sphere) SetTransform(m matrix.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("sphere placement: %w", err)
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	return nil
}

// Intersect computes the intersections between a ray and the sphere s.
// Both roots are returned in ascending order, even when they coincide
// (a tangent ray); a miss returns no intersections.
func (s *Sphere) Intersect(r ray.Ray) []Intersection {
	// Move the ray into object space, where the sphere is a unit sphere at the origin.
	or := r.Transform(s.inverse)
	sphereToRay := or.Origin.Sub(tuple.Point(0, 0, 0))

	a := or.Direction.Dot(or.Direction)
	b := 2 * or.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	root := math.Sqrt(discriminant)
	t1 := (-b - root) / (2 * a)
	t2 := (-b + root) / (2 * a)
	return []Intersection{{T: t1, Object: s}, {T: t2, Object: s}}
}

// NormalAt returns the normalized world-space surface normal of the sphere s
// at the given world-space point. The object normal is mapped back to world
// space through the transposed inverse placement, which keeps normals
// perpendicular to the surface under non-uniform scaling.
func (s *Sphere) NormalAt(worldPoint tuple.Tuple) tuple.Tuple {
	objectPoint := s.inverse.TupleProd(worldPoint)
	objectNormal := objectPoint.Sub(tuple.Point(0, 0, 0))
	worldNormal := s.inverseTranspose.TupleProd(objectNormal)
	// The transposed inverse can smear a value into W; zero it before normalizing.
	worldNormal.W = 0
	return worldNormal.Norm()
}
