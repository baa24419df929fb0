package tuple

import (
	"math"
	"testing"
)

func TestPointAndVectorConstructors(t *testing.T) {
	p := Point(4.3, -4.2, 3.1)
	if p.X != 4.3 || p.Y != -4.2 || p.Z != 3.1 || p.W != 1.0 {
		t.Errorf("Point(4.3, -4.2, 3.1) = %+v, want W = 1", p)
	}

	v := Vector(4.3, -4.2, 3.1)
	if v.X != 4.3 || v.Y != -4.2 || v.Z != 3.1 || v.W != 0.0 {
		t.Errorf("Vector(4.3, -4.2, 3.1) = %+v, want W = 0", v)
	}
}

func TestEquality(t *testing.T) {
	if !Vector(1, 1, 1).Equals(Vector(1, 1, 1)) {
		t.Error("identical vectors should be equal")
	}
	if Vector(1, 1, 1).Equals(Point(1, 1, 1)) {
		t.Error("a vector should not equal a point")
	}
	if Vector(0, 1, 0).Equals(Vector(1, 0, 0)) {
		t.Error("different vectors should not be equal")
	}
	if !Vector(1, 1, 1).Equals(Vector(1+1e-6, 1, 1)) {
		t.Error("vectors within tolerance should be equal")
	}
}

func TestArithmetic(t *testing.T) {
	sum := Tuple{3, -2, 5, 1}.Add(Tuple{-2, 3, 1, 0})
	if !sum.Equals(Tuple{1, 1, 6, 1}) {
		t.Errorf("Add mismatch: %+v", sum)
	}

	// Point - point yields a vector.
	if d := Point(3, 2, 1).Sub(Point(5, 6, 7)); !d.Equals(Vector(-2, -4, -6)) {
		t.Errorf("point - point = %+v, want vector (-2, -4, -6)", d)
	}
	// Point - vector yields a point.
	if d := Point(3, 2, 1).Sub(Vector(5, 6, 7)); !d.Equals(Point(-2, -4, -6)) {
		t.Errorf("point - vector = %+v, want point (-2, -4, -6)", d)
	}
	// Vector - vector yields a vector.
	if d := Vector(3, 2, 1).Sub(Vector(5, 6, 7)); !d.Equals(Vector(-2, -4, -6)) {
		t.Errorf("vector - vector = %+v, want vector (-2, -4, -6)", d)
	}

	if n := (Tuple{1, -2, 3, -4}).Neg(); !n.Equals(Tuple{-1, 2, -3, 4}) {
		t.Errorf("Neg mismatch: %+v", n)
	}
	if s := (Tuple{1, -2, 3, -4}).Scale(3.5); !s.Equals(Tuple{3.5, -7, 10.5, -14}) {
		t.Errorf("Scale mismatch: %+v", s)
	}
	if d := (Tuple{1, -2, 3, -4}).Div(2); !d.Equals(Tuple{0.5, -1, 1.5, -2}) {
		t.Errorf("Div mismatch: %+v", d)
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		v    Tuple
		want float64
	}{
		{Vector(1, 0, 0), 1},
		{Vector(0, 1, 0), 1},
		{Vector(0, 0, 1), 1},
		{Vector(1, 2, 3), math.Sqrt(14)},
		{Vector(-1, -2, -3), math.Sqrt(14)},
	}
	for _, tc := range tests {
		if got := tc.v.Len(); math.Abs(got-tc.want) > epsilon {
			t.Errorf("Len(%+v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestNorm(t *testing.T) {
	if n := Vector(4, 0, 0).Norm(); !n.Equals(Vector(1, 0, 0)) {
		t.Errorf("Norm mismatch: %+v", n)
	}

	root14 := math.Sqrt(14)
	if n := Vector(1, 2, 3).Norm(); !n.Equals(Vector(1/root14, 2/root14, 3/root14)) {
		t.Errorf("Norm mismatch: %+v", n)
	}

	// The length of any normalized vector is one.
	for _, v := range []Tuple{Vector(1, 2, 3), Vector(-5, 0.1, 2), Vector(0, 0, 9)} {
		if got := v.Norm().Len(); math.Abs(got-1.0) > epsilon {
			t.Errorf("Len(Norm(%+v)) = %v, want 1", v, got)
		}
	}
}

func TestDotAndCross(t *testing.T) {
	v1, v2 := Vector(1, 2, 3), Vector(2, 3, 4)

	if got := v1.Dot(v2); got != 20.0 {
		t.Errorf("Dot = %v, want 20", got)
	}
	if c := v1.Cross(v2); !c.Equals(Vector(-1, 2, -1)) {
		t.Errorf("Cross mismatch: %+v", c)
	}
	if c := v2.Cross(v1); !c.Equals(Vector(1, -2, 1)) {
		t.Errorf("Cross mismatch: %+v", c)
	}
}

func TestColors(t *testing.T) {
	c := Color(-0.5, 0.4, 1.7)
	if c.X != -0.5 || c.Y != 0.4 || c.Z != 1.7 {
		t.Errorf("Color channels mismatch: %+v", c)
	}

	if s := Color(0.9, 0.6, 0.75).Add(Color(0.7, 0.1, 0.25)); !s.Equals(Color(1.6, 0.7, 1.0)) {
		t.Errorf("colour Add mismatch: %+v", s)
	}
	if d := Color(0.9, 0.6, 0.75).Sub(Color(0.7, 0.1, 0.25)); !d.Equals(Color(0.2, 0.5, 0.5)) {
		t.Errorf("colour Sub mismatch: %+v", d)
	}
	if s := Color(0.2, 0.3, 0.4).Scale(2); !s.Equals(Color(0.4, 0.6, 0.8)) {
		t.Errorf("colour Scale mismatch: %+v", s)
	}
	if h := Color(1, 0.2, 0.4).Hadamard(Color(0.9, 1, 0.1)); !h.Equals(Color(0.9, 0.2, 0.04)) {
		t.Errorf("Hadamard mismatch: %+v", h)
	}
}

func TestReflect(t *testing.T) {
	// Reflecting a vector approaching at 45 degrees.
	if r := Vector(1, -1, 0).Reflect(Vector(0, 1, 0)); !r.Equals(Vector(1, 1, 0)) {
		t.Errorf("Reflect mismatch: %+v", r)
	}

	// Reflecting a vector off a slanted surface.
	root2 := math.Sqrt(2)
	if r := Vector(0, -1, 0).Reflect(Vector(root2/2, root2/2, 0)); !r.Equals(Vector(1, 0, 0)) {
		t.Errorf("Reflect mismatch: %+v", r)
	}
}
