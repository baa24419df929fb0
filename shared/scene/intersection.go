// Package scene provides the lights, materials, shapes, and world that make up a renderable scene.
package scene

import (
	"sort"

	"github.com/isido/ray-tracer-challenge/shared/ray"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// Intersection represents a single ray-shape intersection at distance T
// along the ray. The object reference is a borrow: it must not outlive the
// world that owns the sphere.
type Intersection struct {
	T      float64
	Object *Sphere
}

// Intersections collects intersections into a list sorted ascending by T.
// The sort is stable so that intersections at equal T keep their order,
// which keeps rendering deterministic.
func Intersections(xs ...Intersection) []Intersection {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// Hit returns the first intersection with a non-negative T from a list
// sorted ascending by T. The second return value is false when no
// intersection qualifies; that is a normal outcome, not an error.
func Hit(xs []Intersection) (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// Computations holds the shading inputs derived from an intersection.
type Computations struct {
	T      float64
	Object *Sphere
	Point  tuple.Tuple
	Eye    tuple.Tuple
	Normal tuple.Tuple
	Inside bool
}

// PrepareComputations derives the shading inputs for an intersection.
// If the intersection is on the inside surface of its object, the normal
// is flipped so that it always faces the eye, and Inside is set.
func PrepareComputations(i Intersection, r ray.Ray) Computations {
	comps := Computations{
		T:      i.T,
		Object: i.Object,
		Point:  r.Position(i.T),
		Eye:    r.Direction.Neg(),
	}
	comps.Normal = i.Object.NormalAt(comps.Point)
	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Neg()
	}
	return comps
}
