// Package shape defines index domains and their canonical iteration order.
package shape

import (
	"errors"
	"iter"
)

// ErrInvalidShape is returned when a shape constructor receives a nonsensical extent.
var ErrInvalidShape = errors.New("invalid shape")

// Shape describes the set of valid indices of a tensor and the order in which
// they are enumerated.
//
// Implementations must be immutable. Indices must yield exactly NumElements
// distinct indices, each accepted by Contains, and must produce the same
// sequence every time it is called.
type Shape[I any] interface {
	// NumElements returns the number of valid indices.
	NumElements() int

	// Indices returns the valid indices in canonical order.
	Indices() iter.Seq[I]

	// Contains reports whether i is a valid index of the shape.
	Contains(i I) bool

	// Equal reports whether other describes the same index domain.
	Equal(other Shape[I]) bool

	String() string
}

// Compatible reports whether two shapes can be combined elementwise:
// same element count and same index domain.
func Compatible[I any](a, b Shape[I]) bool {
	return a.NumElements() == b.NumElements() && a.Equal(b)
}

// Collect enumerates s into a slice. Intended for tests and small shapes.
func Collect[I any](s Shape[I]) []I {
	out := make([]I, 0, s.NumElements())
	for i := range s.Indices() {
		out = append(out, i)
	}
	return out
}
