// Package scene provides the lights, materials, shapes, and world that make up a renderable scene.
package scene

import (
	"sort"

	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/ray"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// World represents a renderable scene: a collection of spheres and an
// optional light. The order of the spheres does not matter beyond keeping
// the intersection sort deterministic.
type World struct {
	Light   *PointLight
	Objects []*Sphere
}

// NewWorld returns a new world with no objects and no light.
func NewWorld() *World {
	return &World{}
}

// DefaultWorld returns the standard two-sphere test world: a white light
// and two concentric spheres, the outer one matte green-yellow and the
// inner one half scale.
func DefaultWorld() *World {
	light := NewPointLight(tuple.Point(-10, 10, -10), tuple.Color(1, 1, 1))

	s1 := NewSphere()
	s1.Material.Color = tuple.Color(0.8, 1.0, 0.6)
	s1.Material.Diffuse = 0.7
	s1.Material.Specular = 0.2

	s2 := NewSphere()
	if err := s2.SetTransform(matrix.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	return &World{Light: &light, Objects: []*Sphere{s1, s2}}
}

// Intersect computes every intersection between a ray and the objects of
// the world w, sorted ascending by distance along the ray.
func (w *World) Intersect(r ray.Ray) []Intersection {
	var xs []Intersection
	for _, o := range w.Objects {
		xs = append(xs, o.Intersect(r)...)
	}
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// ShadeHit computes the colour at an intersection described by comps.
// Calling this on a world without a light is a programmer error, so it panics.
func (w *World) ShadeHit(comps Computations) tuple.Tuple {
	if w.Light == nil {
		panic("ShadeHit called on a world without a light.")
	}
	return comps.Object.Material.Lighting(*w.Light, comps.Point, comps.Eye, comps.Normal)
}

// ColorAt computes the colour seen along a ray cast into the world w.
// A ray that hits nothing yields black.
func (w *World) ColorAt(r ray.Ray) tuple.Tuple {
	hit, ok := Hit(w.Intersect(r))
	if !ok {
		return tuple.Color(0, 0, 0)
	}
	return w.ShadeHit(PrepareComputations(hit, r))
}
