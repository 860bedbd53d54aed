// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/vecalg/internal/algebra"
	"github.com/born-ml/vecalg/internal/backend/slice"
	"github.com/born-ml/vecalg/internal/linalg"
	"github.com/born-ml/vecalg/internal/morph"
	"github.com/born-ml/vecalg/internal/parallel"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/stats"
	"github.com/born-ml/vecalg/internal/vec"
)

// Type aliases for public API

// Shape is a finite index domain enumerated in canonical order.
type Shape[I any] = shape.Shape[I]

// Range is the rank-one shape [0, n).
type Range = shape.Range

// Grid is a multi-axis shape indexed by tuples.
type Grid = shape.Grid

// Tuple is a grid index, one coordinate per axis.
type Tuple = shape.Tuple

// Pair is an index of a Product shape.
type Pair[A, B any] = shape.Pair[A, B]

// Product is the cartesian product of two arbitrary shapes.
type Product[IA, IB any] = shape.Product[IA, IB]

// Vec is a read-only tensor: a shape and a getter.
type Vec[S shape.Shape[I], I, E any] = vec.Vec[S, I, E]

// OVec is a write-only tensor: a shape and a setter returning W.
type OVec[S shape.Shape[I], I, E, W any] = vec.OVec[S, I, E, W]

// Unit is the write outcome of plain storage writes.
type Unit = vec.Unit

// MismatchError reports two shapes that had to agree and did not.
type MismatchError = vec.MismatchError

// Morphism re-indexes a tensor over SA as a tensor over SB.
type Morphism[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any] = morph.Morphism[SA, IA, SB, IB]

// Vector is a rank-one tensor of E.
type Vector[E any] = linalg.Vector[E]

// OutVector is a rank-one output tensor of E.
type OutVector[E any] = linalg.OutVector[E]

// Matrix is a tensor of E over a Grid. Matrix operations require rank two.
type Matrix[E any] = linalg.Matrix[E]

// OutMatrix is an output tensor of E over a Grid.
type OutMatrix[E any] = linalg.OutMatrix[E]

// Module binds matrix and vector operations to one element ring.
type Module[E any] = linalg.Module[E]

// Element algebras.
type (
	Ring[E any]    = algebra.Ring[E]
	Field[E any]   = algebra.Field[E]
	Real[E any]    = algebra.Real[E]
	Ordered[E any] = algebra.Ordered[E]

	Float32 = algebra.Float[float32]
	Float64 = algebra.Float[float64]
	Rat     = algebra.Rat
)

// Errors.
var (
	ErrInvalidShape     = shape.ErrInvalidShape
	ErrShapeMismatch    = vec.ErrShapeMismatch
	ErrIndexOutOfDomain = vec.ErrIndexOutOfDomain
	ErrNotInvertible    = morph.ErrNotInvertible
	ErrInvalidAxes      = morph.ErrInvalidAxes
	ErrTooFewElements   = stats.ErrTooFewElements
)

// NewRange returns the shape [0, n).
func NewRange(n int) (Range, error) { return shape.NewRange(n) }

// MustRange is NewRange that panics on a negative n.
func MustRange(n int) Range { return shape.MustRange(n) }

// NewGrid returns a grid with the given extents.
func NewGrid(extents ...int) (Grid, error) { return shape.NewGrid(extents...) }

// MustGrid is NewGrid that panics on a negative extent.
func MustGrid(extents ...int) Grid { return shape.MustGrid(extents...) }

// NewProduct returns the product of a and b; a varies slowest.
func NewProduct[IA, IB any](a Shape[IA], b Shape[IB]) Product[IA, IB] {
	return shape.NewProduct(a, b)
}

// FromSlice wraps data as a reader and a writer over the same storage.
func FromSlice[E any](data []E) (Vector[E], OutVector[E]) {
	return slice.Wrap(data)
}

// FromGrid wraps data, laid out in canonical order, as a tensor over g.
func FromGrid[E any](data []E, g Grid) (Matrix[E], OutMatrix[E], error) {
	return slice.WrapGrid(data, g)
}

// ToSlice evaluates v into a new slice in canonical order.
func ToSlice[S shape.Shape[I], I, E any](v Vec[S, I, E]) []E {
	return slice.Materialize(v)
}

// Evaluate is ToSlice for rank-one vectors, computing chunks of the result
// on all CPUs. The getter of v must be safe for concurrent use.
func Evaluate[E any](v Vector[E]) []E {
	return slice.Evaluate(v, parallel.DefaultConfig())
}

// NewModule returns the vector and matrix operations over r.
func NewModule[E any](r Ring[E]) Module[E] {
	return linalg.NewModule(r)
}
