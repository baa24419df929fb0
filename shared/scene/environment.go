// Package scene provides the lights, materials, shapes, and world that make up a renderable scene.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// View describes where a camera sits and what it looks at.
// The camera itself lives outside this package; loaders hand the view
// to whoever assembles one.
type View struct {
	From tuple.Tuple
	To   tuple.Tuple
	Up   tuple.Tuple
	Fov  float64
}

// StoredCamera is used to unmarshal camera data from the JSON format.
type StoredCamera struct {
	From [3]float64 `json:"from"`
	To   [3]float64 `json:"to"`
	Up   [3]float64 `json:"up"`
	Fov  float64    `json:"fov"`
}

// StoredLight is used to unmarshal light data from the JSON format.
type StoredLight struct {
	Position  [3]float64 `json:"position"`
	Intensity [3]float64 `json:"intensity"`
}

// StoredTransform is used to unmarshal a single placement step from the JSON format.
type StoredTransform struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// StoredSphere is used to unmarshal sphere data from the JSON format.
// Absent material fields keep their default values.
type StoredSphere struct {
	Color      *[3]float64       `json:"color,omitempty"`
	Ambient    *float64          `json:"ambient,omitempty"`
	Diffuse    *float64          `json:"diffuse,omitempty"`
	Specular   *float64          `json:"specular,omitempty"`
	Shininess  *float64          `json:"shininess,omitempty"`
	Transforms []StoredTransform `json:"transforms,omitempty"`
}

// StoredScene is used to unmarshal a whole scene document.
type StoredScene struct {
	Camera  *StoredCamera  `json:"camera"`
	Light   *StoredLight   `json:"light"`
	Spheres []StoredSphere `json:"spheres"`
}

// buildTransform composes a chain of placement steps into a single matrix.
// The steps apply in the order listed, so each new step multiplies from the left.
func buildTransform(steps []StoredTransform) (matrix.Matrix, error) {
	total := matrix.Identity()
	for _, step := range steps {
		var m matrix.Matrix
		switch step.Op {
		case "translate":
			if len(step.Args) != 3 {
				return matrix.Matrix{}, fmt.Errorf("transform %q requires 3 args, got %d", step.Op, len(step.Args))
			}
			m = matrix.Translation(step.Args[0], step.Args[1], step.Args[2])
		case "scale":
			if len(step.Args) != 3 {
				return matrix.Matrix{}, fmt.Errorf("transform %q requires 3 args, got %d", step.Op, len(step.Args))
			}
			m = matrix.Scaling(step.Args[0], step.Args[1], step.Args[2])
		case "rotate-x", "rotate-y", "rotate-z":
			if len(step.Args) != 1 {
				return matrix.Matrix{}, fmt.Errorf("transform %q requires 1 arg, got %d", step.Op, len(step.Args))
			}
			switch step.Op {
			case "rotate-x":
				m = matrix.RotationX(step.Args[0])
			case "rotate-y":
				m = matrix.RotationY(step.Args[0])
			default:
				m = matrix.RotationZ(step.Args[0])
			}
		case "shear":
			if len(step.Args) != 6 {
				return matrix.Matrix{}, fmt.Errorf("transform %q requires 6 args, got %d", step.Op, len(step.Args))
			}
			m = matrix.Shearing(step.Args[0], step.Args[1], step.Args[2], step.Args[3], step.Args[4], step.Args[5])
		default:
			return matrix.Matrix{}, fmt.Errorf("unknown transform op %q", step.Op)
		}
		total = m.Mul(total)
	}
	return total, nil
}

// buildSphere assembles a sphere from its stored form.
func buildSphere(stored StoredSphere) (*Sphere, error) {
	s := NewSphere()
	if stored.Color != nil {
		s.Material.Color = tuple.Color(stored.Color[0], stored.Color[1], stored.Color[2])
	}
	if stored.Ambient != nil {
		s.Material.Ambient = *stored.Ambient
	}
	if stored.Diffuse != nil {
		s.Material.Diffuse = *stored.Diffuse
	}
	if stored.Specular != nil {
		s.Material.Specular = *stored.Specular
	}
	if stored.Shininess != nil {
		s.Material.Shininess = *stored.Shininess
	}

	transform, err := buildTransform(stored.Transforms)
	if err != nil {
		return nil, err
	}
	if err := s.SetTransform(transform); err != nil {
		return nil, err
	}
	return s, nil
}

// WorldFromScene assembles a world and a view from a stored scene document.
func WorldFromScene(stored StoredScene) (*World, View, error) {
	if stored.Camera == nil {
		return nil, View{}, fmt.Errorf("scene has no camera")
	}
	if stored.Camera.Fov <= 0 {
		return nil, View{}, fmt.Errorf("scene camera has a non-positive field of view %g", stored.Camera.Fov)
	}
	if stored.Light == nil {
		return nil, View{}, fmt.Errorf("scene has no light")
	}

	w := NewWorld()
	light := NewPointLight(
		tuple.Point(stored.Light.Position[0], stored.Light.Position[1], stored.Light.Position[2]),
		tuple.Color(stored.Light.Intensity[0], stored.Light.Intensity[1], stored.Light.Intensity[2]),
	)
	w.Light = &light

	for i, ss := range stored.Spheres {
		s, err := buildSphere(ss)
		if err != nil {
			return nil, View{}, fmt.Errorf("sphere %d: %w", i, err)
		}
		w.Objects = append(w.Objects, s)
	}

	view := View{
		From: tuple.Point(stored.Camera.From[0], stored.Camera.From[1], stored.Camera.From[2]),
		To:   tuple.Point(stored.Camera.To[0], stored.Camera.To[1], stored.Camera.To[2]),
		Up:   tuple.Vector(stored.Camera.Up[0], stored.Camera.Up[1], stored.Camera.Up[2]),
		Fov:  stored.Camera.Fov,
	}
	return w, view, nil
}

// WorldFromFile reads a JSON scene document and assembles a world and a view from it.
func WorldFromFile(path string) (*World, View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, View{}, err
	}

	var stored StoredScene
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, View{}, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return WorldFromScene(stored)
}
