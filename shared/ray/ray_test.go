package ray

import (
	"testing"

	"github.com/isido/ray-tracer-challenge/shared/matrix"
	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

func TestCreatingAndQueryingRay(t *testing.T) {
	origin := tuple.Point(1, 2, 3)
	direction := tuple.Vector(4, 5, 6)

	r := New(origin, direction)
	if !r.Origin.Equals(origin) || !r.Direction.Equals(direction) {
		t.Errorf("New mismatch: %+v", r)
	}
}

func TestPosition(t *testing.T) {
	r := New(tuple.Point(2, 3, 4), tuple.Vector(1, 0, 0))

	tests := []struct {
		t    float64
		want tuple.Tuple
	}{
		{0, tuple.Point(2, 3, 4)},
		{1, tuple.Point(3, 3, 4)},
		{-1, tuple.Point(1, 3, 4)},
		{2.5, tuple.Point(4.5, 3, 4)},
	}
	for _, tc := range tests {
		if got := r.Position(tc.t); !got.Equals(tc.want) {
			t.Errorf("Position(%v) = %+v, want %+v", tc.t, got, tc.want)
		}
	}
}

func TestTransform(t *testing.T) {
	r := New(tuple.Point(1, 2, 3), tuple.Vector(0, 1, 0))

	// Translating a ray moves the origin but leaves the direction alone.
	r2 := r.Transform(matrix.Translation(3, 4, 5))
	if !r2.Origin.Equals(tuple.Point(4, 6, 8)) {
		t.Errorf("translated origin mismatch: %+v", r2.Origin)
	}
	if !r2.Direction.Equals(tuple.Vector(0, 1, 0)) {
		t.Errorf("translated direction mismatch: %+v", r2.Direction)
	}

	// Scaling a ray affects both.
	r3 := r.Transform(matrix.Scaling(2, 3, 4))
	if !r3.Origin.Equals(tuple.Point(2, 6, 12)) {
		t.Errorf("scaled origin mismatch: %+v", r3.Origin)
	}
	if !r3.Direction.Equals(tuple.Vector(0, 3, 0)) {
		t.Errorf("scaled direction mismatch: %+v", r3.Direction)
	}
}
