package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

func storedTestScene() StoredScene {
	ambient := 0.05
	return StoredScene{
		Camera: &StoredCamera{
			From: [3]float64{0, 1.5, -5},
			To:   [3]float64{0, 1, 0},
			Up:   [3]float64{0, 1, 0},
			Fov:  1.047,
		},
		Light: &StoredLight{
			Position:  [3]float64{-10, 10, -10},
			Intensity: [3]float64{1, 1, 1},
		},
		Spheres: []StoredSphere{
			{
				Color:   &[3]float64{1, 0.2, 1},
				Ambient: &ambient,
				Transforms: []StoredTransform{
					{Op: "scale", Args: []float64{0.5, 0.5, 0.5}},
					{Op: "translate", Args: []float64{0, 1, 0}},
				},
			},
			{},
		},
	}
}

func TestWorldFromScene(t *testing.T) {
	w, view, err := WorldFromScene(storedTestScene())
	if err != nil {
		t.Fatalf("WorldFromScene returned error: %v", err)
	}

	if w.Light == nil || !w.Light.Position.Equals(tuple.Point(-10, 10, -10)) {
		t.Errorf("light mismatch: %+v", w.Light)
	}
	if len(w.Objects) != 2 {
		t.Fatalf("got %d spheres, want 2", len(w.Objects))
	}

	s := w.Objects[0]
	if !s.Material.Color.Equals(tuple.Color(1, 0.2, 1)) || s.Material.Ambient != 0.05 {
		t.Errorf("sphere material mismatch: %+v", s.Material)
	}
	// Listed transform steps apply in order: scale first, then translate.
	want := matrix.Translation(0, 1, 0).Mul(matrix.Scaling(0.5, 0.5, 0.5))
	if !s.Transform().Equals(want) {
		t.Errorf("sphere transform mismatch: %+v", s.Transform())
	}

	// Absent fields keep defaults.
	if w.Objects[1].Material != DefaultMaterial() || !w.Objects[1].Transform().Equals(matrix.Identity()) {
		t.Errorf("defaulted sphere mismatch: %+v", w.Objects[1])
	}

	if !view.From.Equals(tuple.Point(0, 1.5, -5)) || !view.Up.Equals(tuple.Vector(0, 1, 0)) || view.Fov != 1.047 {
		t.Errorf("view mismatch: %+v", view)
	}
}

func TestWorldFromSceneErrors(t *testing.T) {
	noCamera := storedTestScene()
	noCamera.Camera = nil
	if _, _, err := WorldFromScene(noCamera); err == nil {
		t.Error("a scene without a camera should be rejected")
	}

	noLight := storedTestScene()
	noLight.Light = nil
	if _, _, err := WorldFromScene(noLight); err == nil {
		t.Error("a scene without a light should be rejected")
	}

	badOp := storedTestScene()
	badOp.Spheres[0].Transforms = []StoredTransform{{Op: "spin", Args: []float64{1}}}
	if _, _, err := WorldFromScene(badOp); err == nil {
		t.Error("an unknown transform op should be rejected")
	}

	badArgs := storedTestScene()
	badArgs.Spheres[0].Transforms = []StoredTransform{{Op: "translate", Args: []float64{1}}}
	if _, _, err := WorldFromScene(badArgs); err == nil {
		t.Error("a transform with the wrong arg count should be rejected")
	}

	singular := storedTestScene()
	singular.Spheres[0].Transforms = []StoredTransform{{Op: "scale", Args: []float64{0, 1, 1}}}
	if _, _, err := WorldFromScene(singular); err == nil {
		t.Error("a singular placement should be rejected at load time")
	}
}

func TestWorldFromFile(t *testing.T) {
	doc := `{
		"camera": {"from": [0, 0, -5], "to": [0, 0, 0], "up": [0, 1, 0], "fov": 1.047},
		"light": {"position": [-10, 10, -10], "intensity": [1, 1, 1]},
		"spheres": [
			{"color": [1, 0.2, 1], "transforms": [{"op": "translate", "args": [0, 1, 0]}]}
		]
	}`
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing scene file: %v", err)
	}

	w, view, err := WorldFromFile(path)
	if err != nil {
		t.Fatalf("WorldFromFile returned error: %v", err)
	}
	if len(w.Objects) != 1 || !w.Objects[0].Transform().Equals(matrix.Translation(0, 1, 0)) {
		t.Errorf("loaded world mismatch: %+v", w.Objects)
	}
	if !view.To.Equals(tuple.Point(0, 0, 0)) {
		t.Errorf("loaded view mismatch: %+v", view)
	}

	if _, _, err := WorldFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("a missing scene file should be reported")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatalf("writing scene file: %v", err)
	}
	if _, _, err := WorldFromFile(bad); err == nil {
		t.Error("a malformed scene file should be reported")
	}
}
