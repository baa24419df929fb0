// Package matrix provides square matrices and the affine transform builders used to place scene objects.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/isido/ray-tracer-challenge/shared/tuple"
)

// epsilon is the tolerance used when comparing matrix elements.
const epsilon float64 = 1e-6

// singularEpsilon is the largest determinant magnitude treated as singular.
const singularEpsilon float64 = 1e-12

// Matrix represents a square matrix of any dimension, stored row-major.
type Matrix struct {
	dim   int
	elems []float64
}

// New creates a new dim-by-dim matrix from a row-major slice of elements.
// If the slice does not hold exactly dim * dim elements, this function panics.
func New(dim int, elems []float64) Matrix {
	if len(elems) != dim*dim {
		panic(fmt.Sprintf("Matrix of dimension %d requires %d elements, got %d.", dim, dim*dim, len(elems)))
	}
	m := Matrix{dim: dim, elems: make([]float64, dim*dim)}
	copy(m.elems, elems)
	return m
}

// Identity returns the 4-by-4 identity matrix.
func Identity() Matrix {
	return New(4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Dim returns the dimension of the matrix m.
func (m Matrix) Dim() int {
	return m.dim
}

// At returns the element of the matrix m at row r and column c.
func (m Matrix) At(r, c int) float64 {
	return m.elems[r*m.dim+c]
}

// Equals returns whether the matrices m and o have the same dimension
// and element-wise equal contents to within a small tolerance.
func (m Matrix) Equals(o Matrix) bool {
	if m.dim != o.dim {
		return false
	}
	for i := range m.elems {
		if !scalar.EqualWithinAbs(m.elems[i], o.elems[i], epsilon) {
			return false
		}
	}
	return true
}

// Mul returns the product of the matrices m and o.
// If the matrices have different dimensions, this function panics.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.dim != o.dim {
		panic(fmt.Sprintf("Cannot multiply a matrix of dimension %d by a matrix of dimension %d.", m.dim, o.dim))
	}
	p := Matrix{dim: m.dim, elems: make([]float64, m.dim*m.dim)}
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			sum := 0.0
			for k := 0; k < m.dim; k++ {
				sum += m.At(i, k) * o.At(k, j)
			}
			p.elems[i*p.dim+j] = sum
		}
	}
	return p
}

// TupleProd returns the product of the matrix m and the tuple t.
// If the matrix is not 4-by-4, this function panics.
func (m Matrix) TupleProd(t tuple.Tuple) tuple.Tuple {
	if m.dim != 4 {
		panic(fmt.Sprintf("Cannot multiply a matrix of dimension %d by a tuple.", m.dim))
	}
	row := func(r int) float64 {
		return m.At(r, 0)*t.X + m.At(r, 1)*t.Y + m.At(r, 2)*t.Z + m.At(r, 3)*t.W
	}
	return tuple.Tuple{X: row(0), Y: row(1), Z: row(2), W: row(3)}
}

// Transpose returns the transpose of the matrix m.
func (m Matrix) Transpose() Matrix {
	p := Matrix{dim: m.dim, elems: make([]float64, m.dim*m.dim)}
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			p.elems[j*p.dim+i] = m.At(i, j)
		}
	}
	return p
}

// Determinant returns the determinant of the matrix m.
// The 2-by-2 case is closed-form; larger matrices expand cofactors
// along the first row. Recursion is fine at the dimensions we use.
func (m Matrix) Determinant() float64 {
	if m.dim == 2 {
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}
	det := 0.0
	for c := 0; c < m.dim; c++ {
		det += m.At(0, c) * m.Cofactor(0, c)
	}
	return det
}

// Submatrix returns the matrix m with row r and column c removed.
func (m Matrix) Submatrix(r, c int) Matrix {
	p := Matrix{dim: m.dim - 1, elems: make([]float64, 0, (m.dim-1)*(m.dim-1))}
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			if i != r && j != c {
				p.elems = append(p.elems, m.At(i, j))
			}
		}
	}
	return p
}

// Minor returns the determinant of the submatrix of m at row r and column c.
func (m Matrix) Minor(r, c int) float64 {
	return m.Submatrix(r, c).Determinant()
}

// Cofactor returns the minor of m at row r and column c with the
// checkerboard sign (-1)^(r+c) applied.
func (m Matrix) Cofactor(r, c int) float64 {
	minor := m.Minor(r, c)
	if (r+c)%2 != 0 {
		return -minor
	}
	return minor
}

// Inverse returns the inverse of the matrix m, computed by the adjugate
// method (the transposed cofactor matrix divided by the determinant).
// If the matrix is singular, an error is returned instead.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det > -singularEpsilon && det < singularEpsilon {
		return Matrix{}, fmt.Errorf("matrix is singular (determinant %g), cannot invert", det)
	}
	p := Matrix{dim: m.dim, elems: make([]float64, m.dim*m.dim)}
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			// Writing cofactor (i, j) to element (j, i) transposes as we go.
			p.elems[j*p.dim+i] = m.Cofactor(i, j) / det
		}
	}
	return p, nil
}
