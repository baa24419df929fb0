// Package scene provides the lights, materials, shapes, and world that make up a renderable scene.
package scene

import (
	"math"

	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// Material represents the surface properties of a shape under the Phong model.
type Material struct {
	Color     tuple.Tuple
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// DefaultMaterial returns a plain white material with standard Phong parameters.
func DefaultMaterial() Material {
	return Material{
		Color:     tuple.Color(1, 1, 1),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// Lighting computes the colour of a point on a surface with the material m
// using Phong shading. The eye and normal parameters must be normalized, and
// the normal must face the eye. The result is not clamped.
func (m Material) Lighting(light PointLight, point, eye, normal tuple.Tuple) tuple.Tuple {
	black := tuple.Color(0, 0, 0)

	effective := m.Color.Hadamard(light.Intensity)
	lightv := light.Position.Sub(point).Norm()
	ambient := effective.Scale(m.Ambient)

	diffuse, specular := black, black
	if lightDotNormal := lightv.Dot(normal); lightDotNormal >= 0 {
		// The light is on this side of the surface.
		diffuse = effective.Scale(m.Diffuse * lightDotNormal)

		reflectv := lightv.Neg().Reflect(normal)
		if reflectDotEye := reflectv.Dot(eye); reflectDotEye > 0 {
			// The reflection is visible from the eye.
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
