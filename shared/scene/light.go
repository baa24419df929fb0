// Package scene provides the lights, materials, shapes, and world that make up a renderable scene.
package scene

import "github.com/isido/ray-tracer-challenge/shared/tuple"

// PointLight represents a point of light in 3-dimensional space.
type PointLight struct {
	Position  tuple.Tuple
	Intensity tuple.Tuple
}

// NewPointLight returns a new point light at the given position with the given intensity.
func NewPointLight(position, intensity tuple.Tuple) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
