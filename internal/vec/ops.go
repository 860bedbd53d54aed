package vec

import "github.com/born-ml/vecalg/internal/shape"

// Map returns a Vec over the same shape whose getter is f applied to v's.
func Map[S shape.Shape[I], I, E, F any](f func(E) F, v Vec[S, I, E]) Vec[S, I, F] {
	get := v.get
	return Vec[S, I, F]{
		shape: v.shape,
		get:   func(i I) F { return f(get(i)) },
	}
}

// MapIndexed is like Map but f also receives the index.
func MapIndexed[S shape.Shape[I], I, E, F any](f func(I, E) F, v Vec[S, I, E]) Vec[S, I, F] {
	get := v.get
	return Vec[S, I, F]{
		shape: v.shape,
		get:   func(i I) F { return f(i, get(i)) },
	}
}

// Zip returns a Vec whose getter applies f to the pointwise elements of a
// and b. Returns ErrShapeMismatch if the shapes are not compatible.
//
// Example:
//
//	sum, err := vec.Zip(func(x, y float64) float64 { return x + y }, a, b)
func Zip[S shape.Shape[I], I, A, B, C any](f func(A, B) C, a Vec[S, I, A], b Vec[S, I, B]) (Vec[S, I, C], error) {
	if !shape.Compatible[I](a.shape, b.shape) {
		return Vec[S, I, C]{}, mismatch("zip", a.shape, b.shape)
	}
	getA, getB := a.get, b.get
	return Vec[S, I, C]{
		shape: a.shape,
		get:   func(i I) C { return f(getA(i), getB(i)) },
	}, nil
}

// Zip3 is the ternary form of Zip.
func Zip3[S shape.Shape[I], I, A, B, C, D any](f func(A, B, C) D, a Vec[S, I, A], b Vec[S, I, B], c Vec[S, I, C]) (Vec[S, I, D], error) {
	if !shape.Compatible[I](a.shape, b.shape) {
		return Vec[S, I, D]{}, mismatch("zip3", a.shape, b.shape)
	}
	if !shape.Compatible[I](a.shape, c.shape) {
		return Vec[S, I, D]{}, mismatch("zip3", a.shape, c.shape)
	}
	getA, getB, getC := a.get, b.get, c.get
	return Vec[S, I, D]{
		shape: a.shape,
		get:   func(i I) D { return f(getA(i), getB(i), getC(i)) },
	}, nil
}

// Reduce folds f over the elements of v in canonical order starting from
// init. The order is fixed, so the result is deterministic even when f is
// not associative.
func Reduce[S shape.Shape[I], I, E, A any](f func(A, E) A, init A, v Vec[S, I, E]) A {
	acc := init
	for i := range v.shape.Indices() {
		acc = f(acc, v.get(i))
	}
	return acc
}

// Const returns a Vec over s whose every element is x.
func Const[S shape.Shape[I], I, E any](s S, x E) Vec[S, I, E] {
	return Vec[S, I, E]{
		shape: s,
		get:   func(I) E { return x },
	}
}

// Iota returns the Vec over s whose element at every index is the index
// itself.
func Iota[S shape.Shape[I], I any](s S) Vec[S, I, I] {
	return Vec[S, I, I]{
		shape: s,
		get:   func(i I) I { return i },
	}
}

// Assign writes every element of v into o, visiting indices in canonical
// order and discarding the write outcomes.
//
// Returns ErrShapeMismatch before any write if the shapes are not
// compatible. If o and v alias the same storage, the result depends on the
// backend; the visiting order is the only guarantee.
func Assign[S shape.Shape[I], I, E, W any](o OVec[S, I, E, W], v Vec[S, I, E]) error {
	if !shape.Compatible[I](o.shape, v.shape) {
		return mismatch("assign", o.shape, v.shape)
	}
	for i := range v.shape.Indices() {
		o.set(i, v.get(i))
	}
	return nil
}

// Collect is like Assign but returns the write outcomes in canonical order.
// Backends whose writes are symbolic use it to retrieve what was written.
func Collect[S shape.Shape[I], I, E, W any](o OVec[S, I, E, W], v Vec[S, I, E]) ([]W, error) {
	if !shape.Compatible[I](o.shape, v.shape) {
		return nil, mismatch("collect", o.shape, v.shape)
	}
	out := make([]W, 0, v.shape.NumElements())
	for i := range v.shape.Indices() {
		out = append(out, o.set(i, v.get(i)))
	}
	return out, nil
}
