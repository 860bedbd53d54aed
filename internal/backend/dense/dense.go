// Package dense adapts gonum matrices and vectors to input and output
// vectors.
package dense

import (
	"fmt"

	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
	"gonum.org/v1/gonum/mat"
)

// Matrix returns a reader over any gonum matrix, including views such as
// m.T() or a *mat.Dense slice.
func Matrix(m mat.Matrix) vec.Vec[shape.Grid, shape.Tuple, float64] {
	r, c := m.Dims()
	return vec.New(shape.MustGrid(r, c), func(t shape.Tuple) float64 { return m.At(t[0], t[1]) })
}

// MatrixWriter returns a writer into m.
func MatrixWriter(m *mat.Dense) vec.OVec[shape.Grid, shape.Tuple, float64, vec.Unit] {
	r, c := m.Dims()
	return vec.NewOut(shape.MustGrid(r, c), func(t shape.Tuple, x float64) vec.Unit {
		m.Set(t[0], t[1], x)
		return vec.Unit{}
	})
}

// Vector returns a reader over a gonum vector.
func Vector(v mat.Vector) vec.Vec[shape.Range, int, float64] {
	return vec.New(shape.MustRange(v.Len()), v.AtVec)
}

// VectorWriter returns a writer into v.
func VectorWriter(v *mat.VecDense) vec.OVec[shape.Range, int, float64, vec.Unit] {
	return vec.NewOut(shape.MustRange(v.Len()), func(i int, x float64) vec.Unit {
		v.SetVec(i, x)
		return vec.Unit{}
	})
}

// ToDense evaluates a rank-2 vector into a new gonum matrix.
// Returns vec.ErrShapeMismatch for other ranks.
func ToDense(v vec.Vec[shape.Grid, shape.Tuple, float64]) (*mat.Dense, error) {
	g := v.Shape()
	if g.Rank() != 2 {
		return nil, fmt.Errorf("to dense: %w: want rank 2, got %v", vec.ErrShapeMismatch, g)
	}
	if g.NumElements() == 0 {
		return nil, fmt.Errorf("to dense: %w: gonum does not support empty matrix %v", vec.ErrShapeMismatch, g)
	}
	m := mat.NewDense(g.Extent(0), g.Extent(1), nil)
	if err := vec.Assign(MatrixWriter(m), v); err != nil {
		return nil, err
	}
	return m, nil
}

// ToVecDense evaluates a rank-1 vector into a new gonum vector.
func ToVecDense(v vec.Vec[shape.Range, int, float64]) (*mat.VecDense, error) {
	if v.NumElements() == 0 {
		return nil, fmt.Errorf("to vector: %w: gonum does not support empty vectors", vec.ErrShapeMismatch)
	}
	out := mat.NewVecDense(v.NumElements(), nil)
	if err := vec.Assign(VectorWriter(out), v); err != nil {
		return nil, err
	}
	return out, nil
}
