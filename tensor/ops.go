// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/vecalg/internal/linalg"
	"github.com/born-ml/vecalg/internal/morph"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/stats"
	"github.com/born-ml/vecalg/internal/vec"
)

// New returns a Vec over s reading elements from get.
func New[S shape.Shape[I], I, E any](s S, get func(I) E) Vec[S, I, E] {
	return vec.New(s, get)
}

// NewOut returns an OVec over s writing elements through set.
func NewOut[S shape.Shape[I], I, E, W any](s S, set func(I, E) W) OVec[S, I, E, W] {
	return vec.NewOut(s, set)
}

// Get reads v at i. Returns ErrIndexOutOfDomain if i is not in v's shape.
func Get[S shape.Shape[I], I, E any](v Vec[S, I, E], i I) (E, error) {
	return vec.Get(v, i)
}

// Set writes e to o at i and returns the write outcome.
// Returns ErrIndexOutOfDomain if i is not in o's shape.
func Set[S shape.Shape[I], I, E, W any](o OVec[S, I, E, W], i I, e E) (W, error) {
	return vec.Set(o, i, e)
}

// Map applies f to every element of v, lazily.
func Map[S shape.Shape[I], I, E, F any](f func(E) F, v Vec[S, I, E]) Vec[S, I, F] {
	return vec.Map(f, v)
}

// Zip combines a and b elementwise with f, lazily.
// Returns a *MismatchError if their shapes are not compatible.
func Zip[S shape.Shape[I], I, A, B, C any](f func(A, B) C, a Vec[S, I, A], b Vec[S, I, B]) (Vec[S, I, C], error) {
	return vec.Zip(f, a, b)
}

// Reduce folds v in canonical order, starting from init.
func Reduce[S shape.Shape[I], I, E, A any](f func(A, E) A, init A, v Vec[S, I, E]) A {
	return vec.Reduce(f, init, v)
}

// Const returns a Vec over s with every element equal to x.
func Const[S shape.Shape[I], I, E any](s S, x E) Vec[S, I, E] {
	return vec.Const[S, I](s, x)
}

// Assign writes every element of v to o in canonical order.
// Nothing is written if the shapes are not compatible.
func Assign[S shape.Shape[I], I, E, W any](o OVec[S, I, E, W], v Vec[S, I, E]) error {
	return vec.Assign(o, v)
}

// Flatten views a grid as a range in canonical order.
func Flatten(g Grid) Morphism[Grid, Tuple, Range, int] {
	return morph.Flatten(g)
}

// Reshape maps one grid onto another with the same number of elements.
func Reshape(from, to Grid) (Morphism[Grid, Tuple, Grid, Tuple], error) {
	return morph.Reshape(from, to)
}

// Transpose swaps the two axes of a rank-two grid.
func Transpose(g Grid) (Morphism[Grid, Tuple, Grid, Tuple], error) {
	return morph.Transpose(g)
}

// Transport views v, a tensor over m's source, as a tensor over m's target.
func Transport[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any, E any](
	v Vec[SA, IA, E], m Morphism[SA, IA, SB, IB],
) (Vec[SB, IB, E], error) {
	return morph.Transport(v, m)
}

// TransportOut views o through m. m must be invertible.
func TransportOut[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any, E, W any](
	o OVec[SA, IA, E, W], m Morphism[SA, IA, SB, IB],
) (OVec[SB, IB, E, W], error) {
	return morph.TransportOut(o, m)
}

// Dot returns the sum of the elementwise products of a and b.
func Dot[S shape.Shape[I], I, E any](r Ring[E], a, b Vec[S, I, E]) (E, error) {
	return linalg.Dot(r, a, b)
}

// Sum adds the elements of v in canonical order.
func Sum[S shape.Shape[I], I, E any](r Ring[E], v Vec[S, I, E]) E {
	return linalg.Sum(r, v)
}

// Mean returns the arithmetic mean of v.
func Mean[S shape.Shape[I], I, E any](f Field[E], v Vec[S, I, E]) (E, error) {
	return stats.Mean(f, v)
}

// StdDev returns the population standard deviation of v.
func StdDev[S shape.Shape[I], I, E any](f Real[E], v Vec[S, I, E]) (E, error) {
	return stats.StdDev(f, v, stats.DefaultConfig())
}

// Standardize writes (x - mean) / stddev of in to out, using population
// statistics. in and out may share storage.
func Standardize[S shape.Shape[I], I, E, W any](f Real[E], out OVec[S, I, E, W], in Vec[S, I, E]) error {
	return stats.Standardize(f, out, in, stats.DefaultConfig())
}
