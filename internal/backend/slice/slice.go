// Package slice adapts plain Go slices to input and output vectors.
//
// The adapter does not copy: getters and setters close over the caller's
// slice, so writes through the OVec are visible to the Vec and to the
// caller.
package slice

import (
	"fmt"

	"github.com/born-ml/vecalg/internal/parallel"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// Reader returns a rank-one Vec reading data.
func Reader[E any](data []E) vec.Vec[shape.Range, int, E] {
	return vec.New(shape.MustRange(len(data)), func(i int) E { return data[i] })
}

// Writer returns a rank-one OVec writing into data.
func Writer[E any](data []E) vec.OVec[shape.Range, int, E, vec.Unit] {
	return vec.NewOut(shape.MustRange(len(data)), func(i int, x E) vec.Unit {
		data[i] = x
		return vec.Unit{}
	})
}

// Wrap returns a Vec and an OVec over the same slice.
//
// Example:
//
//	data := []float64{1, 2, 3}
//	in, out := slice.Wrap(data)
//	_ = vec.Assign(out, vec.Map(func(x float64) float64 { return x * 2 }, in))
//	// data is now [2 4 6]
func Wrap[E any](data []E) (vec.Vec[shape.Range, int, E], vec.OVec[shape.Range, int, E, vec.Unit]) {
	return Reader(data), Writer(data)
}

// WrapGrid views data as a grid, with tuple offsets given by g.Linearize.
// Returns vec.ErrShapeMismatch if len(data) differs from g.NumElements().
func WrapGrid[E any](data []E, g shape.Grid) (vec.Vec[shape.Grid, shape.Tuple, E], vec.OVec[shape.Grid, shape.Tuple, E, vec.Unit], error) {
	if len(data) != g.NumElements() {
		return vec.Vec[shape.Grid, shape.Tuple, E]{}, vec.OVec[shape.Grid, shape.Tuple, E, vec.Unit]{},
			fmt.Errorf("wrap grid: %w: %d elements for %v", vec.ErrShapeMismatch, len(data), g)
	}
	in := vec.New(g, func(t shape.Tuple) E { return data[g.Linearize(t)] })
	out := vec.NewOut(g, func(t shape.Tuple, x E) vec.Unit {
		data[g.Linearize(t)] = x
		return vec.Unit{}
	})
	return in, out, nil
}

// Materialize evaluates v into a new slice, in canonical order.
func Materialize[S shape.Shape[I], I, E any](v vec.Vec[S, I, E]) []E {
	out := make([]E, 0, v.NumElements())
	return vec.Reduce(func(acc []E, x E) []E { return append(acc, x) }, out, v)
}

// Evaluate is Materialize for rank-one vectors, filling chunks of the result
// concurrently. The getter of v must be safe for concurrent use; getters
// built from Map, Zip and the adapters in this module are.
func Evaluate[E any](v vec.Vec[shape.Range, int, E], cfg parallel.Config) []E {
	return evaluate(v, func(k int) int { return k }, cfg)
}

// EvaluateGrid is Evaluate for grid vectors. Element k of the result is the
// element at v.Shape().Delinearize(k).
func EvaluateGrid[E any](v vec.Vec[shape.Grid, shape.Tuple, E], cfg parallel.Config) []E {
	return evaluate(v, v.Shape().Delinearize, cfg)
}

func evaluate[S shape.Shape[I], I, E any](v vec.Vec[S, I, E], index func(int) I, cfg parallel.Config) []E {
	out := make([]E, v.NumElements())
	parallel.For(len(out), cfg, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			out[k] = v.At(index(k))
		}
	})
	return out
}
