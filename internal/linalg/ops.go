// Package linalg binds the abstract vector combinators to an element algebra.
//
// Every function here is a thin wrapper over vec.Map, vec.Zip or vec.Reduce;
// the algebra argument decides what "add" or "multiply" mean for E.
package linalg

import (
	"github.com/born-ml/vecalg/internal/algebra"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// Add returns a + b elementwise.
func Add[S shape.Shape[I], I, E any](r algebra.Ring[E], a, b vec.Vec[S, I, E]) (vec.Vec[S, I, E], error) {
	return vec.Zip(r.Add, a, b)
}

// Sub returns a - b elementwise.
func Sub[S shape.Shape[I], I, E any](r algebra.Ring[E], a, b vec.Vec[S, I, E]) (vec.Vec[S, I, E], error) {
	return vec.Zip(r.Sub, a, b)
}

// Mul returns a * b elementwise.
func Mul[S shape.Shape[I], I, E any](r algebra.Ring[E], a, b vec.Vec[S, I, E]) (vec.Vec[S, I, E], error) {
	return vec.Zip(r.Mul, a, b)
}

// Div returns a / b elementwise.
func Div[S shape.Shape[I], I, E any](f algebra.Field[E], a, b vec.Vec[S, I, E]) (vec.Vec[S, I, E], error) {
	return vec.Zip(f.Div, a, b)
}

// Smul multiplies every element of v by the scalar k.
func Smul[S shape.Shape[I], I, E any](r algebra.Ring[E], k E, v vec.Vec[S, I, E]) vec.Vec[S, I, E] {
	return vec.Map(func(x E) E { return r.Mul(k, x) }, v)
}

// Shift adds the scalar k to every element of v.
func Shift[S shape.Shape[I], I, E any](r algebra.Ring[E], k E, v vec.Vec[S, I, E]) vec.Vec[S, I, E] {
	return vec.Map(func(x E) E { return r.Add(x, k) }, v)
}

// Neg negates every element of v.
func Neg[S shape.Shape[I], I, E any](r algebra.Ring[E], v vec.Vec[S, I, E]) vec.Vec[S, I, E] {
	return vec.Map(r.Neg, v)
}

// Sqrt takes the square root of every element of v.
func Sqrt[S shape.Shape[I], I, E any](f algebra.Real[E], v vec.Vec[S, I, E]) vec.Vec[S, I, E] {
	return vec.Map(f.Sqrt, v)
}

// Sum adds all elements of v in canonical order. The sum of an empty vector
// is the algebra's zero.
func Sum[S shape.Shape[I], I, E any](r algebra.Ring[E], v vec.Vec[S, I, E]) E {
	return vec.Reduce(r.Add, r.Zero(), v)
}

// Dot returns the sum of the elementwise products of a and b.
func Dot[S shape.Shape[I], I, E any](r algebra.Ring[E], a, b vec.Vec[S, I, E]) (E, error) {
	prod, err := Mul(r, a, b)
	if err != nil {
		var zero E
		return zero, err
	}
	return Sum(r, prod), nil
}

// Max returns the largest element of v, or false if v is empty.
// Ties keep the first occurrence.
func Max[S shape.Shape[I], I, E any](o algebra.Ordered[E], v vec.Vec[S, I, E]) (E, bool) {
	return extreme(v, func(cur, x E) bool { return o.Less(cur, x) })
}

// Min returns the smallest element of v, or false if v is empty.
func Min[S shape.Shape[I], I, E any](o algebra.Ordered[E], v vec.Vec[S, I, E]) (E, bool) {
	return extreme(v, func(cur, x E) bool { return o.Less(x, cur) })
}

func extreme[S shape.Shape[I], I, E any](v vec.Vec[S, I, E], better func(cur, x E) bool) (E, bool) {
	var best E
	found := vec.Reduce(func(found bool, x E) bool {
		if !found || better(best, x) {
			best = x
		}
		return true
	}, false, v)
	return best, found
}
