// Package vec provides the abstract input and output vectors and the
// combinators that operate on them.
//
// A Vec pairs a shape with a getter, an OVec pairs a shape with a setter.
// Neither owns storage: whatever the getter or setter closes over belongs to
// the backend that built it. All combinators are synchronous, and the ones
// that visit every index (Reduce, Assign) do so in the shape's canonical
// order.
package vec

import (
	"fmt"

	"github.com/born-ml/vecalg/internal/shape"
)

// Unit is the write outcome of setters that only acknowledge a write.
type Unit = struct{}

// Vec is a read-only tensor: a shape S over indices I and a total getter
// from valid indices to elements E.
//
// Example:
//
//	r := shape.MustRange(3)
//	squares := vec.New(r, func(i int) float64 { return float64(i * i) })
//	squares.At(2) // 4
type Vec[S shape.Shape[I], I, E any] struct {
	shape S
	get   func(I) E
}

// New creates a Vec from a shape and a getter.
// The getter is only ever called with indices valid for s.
func New[S shape.Shape[I], I, E any](s S, get func(I) E) Vec[S, I, E] {
	return Vec[S, I, E]{shape: s, get: get}
}

// Shape returns the vector's shape.
func (v Vec[S, I, E]) Shape() S {
	return v.shape
}

// NumElements returns the number of valid indices.
func (v Vec[S, I, E]) NumElements() int {
	return v.shape.NumElements()
}

// At applies the getter without checking i against the shape.
func (v Vec[S, I, E]) At(i I) E {
	return v.get(i)
}

// Getter returns the underlying getter.
func (v Vec[S, I, E]) Getter() func(I) E {
	return v.get
}

func (v Vec[S, I, E]) String() string {
	return fmt.Sprintf("Vec%v", v.shape)
}

// OVec is a write-only tensor: a shape S over indices I and a setter that
// consumes an element E and returns a write outcome W.
type OVec[S shape.Shape[I], I, E, W any] struct {
	shape S
	set   func(I, E) W
}

// NewOut creates an OVec from a shape and a setter.
func NewOut[S shape.Shape[I], I, E, W any](s S, set func(I, E) W) OVec[S, I, E, W] {
	return OVec[S, I, E, W]{shape: s, set: set}
}

// Shape returns the vector's shape.
func (o OVec[S, I, E, W]) Shape() S {
	return o.shape
}

// NumElements returns the number of valid indices.
func (o OVec[S, I, E, W]) NumElements() int {
	return o.shape.NumElements()
}

// Put applies the setter without checking i against the shape.
func (o OVec[S, I, E, W]) Put(i I, e E) W {
	return o.set(i, e)
}

// Setter returns the underlying setter.
func (o OVec[S, I, E, W]) Setter() func(I, E) W {
	return o.set
}

func (o OVec[S, I, E, W]) String() string {
	return fmt.Sprintf("OVec%v", o.shape)
}

// Get returns the element of v at i.
// Returns ErrIndexOutOfDomain if i is not valid for v's shape.
func Get[S shape.Shape[I], I, E any](v Vec[S, I, E], i I) (E, error) {
	if !v.shape.Contains(i) {
		var zero E
		return zero, fmt.Errorf("get: %w: %v not in %v", ErrIndexOutOfDomain, i, v.shape)
	}
	return v.get(i), nil
}

// Set writes e at index i of o and returns the write outcome.
// Returns ErrIndexOutOfDomain if i is not valid for o's shape; no write
// happens in that case.
func Set[S shape.Shape[I], I, E, W any](o OVec[S, I, E, W], i I, e E) (W, error) {
	if !o.shape.Contains(i) {
		var zero W
		return zero, fmt.Errorf("set: %w: %v not in %v", ErrIndexOutOfDomain, i, o.shape)
	}
	return o.set(i, e), nil
}
