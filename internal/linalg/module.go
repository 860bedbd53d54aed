package linalg

import (
	"fmt"

	"github.com/born-ml/vecalg/internal/algebra"
	"github.com/born-ml/vecalg/internal/morph"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// Vector is a rank-one input vector.
type Vector[E any] = vec.Vec[shape.Range, int, E]

// OutVector is a rank-one output vector with acknowledgement writes.
type OutVector[E any] = vec.OVec[shape.Range, int, E, vec.Unit]

// Matrix is a rank-two input vector over a grid.
type Matrix[E any] = vec.Vec[shape.Grid, shape.Tuple, E]

// OutMatrix is a rank-two output vector over a grid.
type OutMatrix[E any] = vec.OVec[shape.Grid, shape.Tuple, E, vec.Unit]

// Module is the vector/matrix instantiation of the core for one element
// algebra.
//
// Example:
//
//	m := linalg.NewModule[float64](algebra.Float[float64]{})
//	d, err := m.Sub(x, m.Fill(x.NumElements(), 1))
type Module[E any] struct {
	ring algebra.Ring[E]
}

// NewModule binds r.
func NewModule[E any](r algebra.Ring[E]) Module[E] {
	return Module[E]{ring: r}
}

// Ring returns the bound algebra.
func (m Module[E]) Ring() algebra.Ring[E] {
	return m.ring
}

// Fill returns a vector of length n whose elements are all x.
// Panics if n is negative.
func (m Module[E]) Fill(n int, x E) Vector[E] {
	return vec.Const[shape.Range, int](shape.MustRange(n), x)
}

// Zeros returns a vector of n zeros.
func (m Module[E]) Zeros(n int) Vector[E] {
	return m.Fill(n, m.ring.Zero())
}

// Add returns a + b.
func (m Module[E]) Add(a, b Vector[E]) (Vector[E], error) {
	return Add(m.ring, a, b)
}

// Sub returns a - b.
func (m Module[E]) Sub(a, b Vector[E]) (Vector[E], error) {
	return Sub(m.ring, a, b)
}

// Mul returns a * b elementwise.
func (m Module[E]) Mul(a, b Vector[E]) (Vector[E], error) {
	return Mul(m.ring, a, b)
}

// Smul returns k * v.
func (m Module[E]) Smul(k E, v Vector[E]) Vector[E] {
	return Smul(m.ring, k, v)
}

// Sum adds the elements of v.
func (m Module[E]) Sum(v Vector[E]) E {
	return Sum(m.ring, v)
}

// Dot returns the inner product of a and b.
func (m Module[E]) Dot(a, b Vector[E]) (E, error) {
	return Dot(m.ring, a, b)
}

// Row returns row i of a rank-2 matrix as a vector.
func (m Module[E]) Row(a Matrix[E], i int) (Vector[E], error) {
	g := a.Shape()
	if g.Rank() != 2 {
		return Vector[E]{}, fmt.Errorf("row: %w: want rank 2, got %v", vec.ErrShapeMismatch, g)
	}
	if i < 0 || i >= g.Extent(0) {
		return Vector[E]{}, fmt.Errorf("row: %w: %d not in %v", vec.ErrIndexOutOfDomain, i, g)
	}
	get := a.Getter()
	return vec.New(shape.MustRange(g.Extent(1)), func(j int) E { return get(shape.Tuple{i, j}) }), nil
}

// Col returns column j of a rank-2 matrix as a vector.
func (m Module[E]) Col(a Matrix[E], j int) (Vector[E], error) {
	t, err := m.Transpose(a)
	if err != nil {
		return Vector[E]{}, err
	}
	return m.Row(t, j)
}

// Transpose returns the transpose view of a rank-2 matrix.
func (m Module[E]) Transpose(a Matrix[E]) (Matrix[E], error) {
	tr, err := morph.Transpose(a.Shape())
	if err != nil {
		return Matrix[E]{}, err
	}
	return morph.Transport(a, tr)
}

// MatVec returns the lazy product a·x. Each element is a dot product
// computed when read.
func (m Module[E]) MatVec(a Matrix[E], x Vector[E]) (Vector[E], error) {
	g := a.Shape()
	if g.Rank() != 2 || g.Extent(1) != x.NumElements() {
		return Vector[E]{}, &vec.MismatchError{Op: "matvec", Left: g.String(), Right: x.Shape().String()}
	}
	getA, getX := a.Getter(), x.Getter()
	inner := shape.MustRange(g.Extent(1))
	return vec.New(shape.MustRange(g.Extent(0)), func(i int) E {
		terms := vec.New(inner, func(k int) E {
			return m.ring.Mul(getA(shape.Tuple{i, k}), getX(k))
		})
		return Sum(m.ring, terms)
	}), nil
}

// MatMul returns the lazy product a·b.
func (m Module[E]) MatMul(a, b Matrix[E]) (Matrix[E], error) {
	ga, gb := a.Shape(), b.Shape()
	if ga.Rank() != 2 || gb.Rank() != 2 || ga.Extent(1) != gb.Extent(0) {
		return Matrix[E]{}, &vec.MismatchError{Op: "matmul", Left: ga.String(), Right: gb.String()}
	}
	getA, getB := a.Getter(), b.Getter()
	inner := shape.MustRange(ga.Extent(1))
	return vec.New(shape.MustGrid(ga.Extent(0), gb.Extent(1)), func(t shape.Tuple) E {
		i, j := t[0], t[1]
		terms := vec.New(inner, func(k int) E {
			return m.ring.Mul(getA(shape.Tuple{i, k}), getB(shape.Tuple{k, j}))
		})
		return Sum(m.ring, terms)
	}), nil
}
