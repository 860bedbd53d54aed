package shape

import (
	"fmt"
	"iter"
)

// Pair is the composite index of a Product shape.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Product is the cartesian product of two shapes of arbitrary index types.
// Indices are enumerated with the first operand varying slowest.
type Product[IA, IB any] struct {
	first  Shape[IA]
	second Shape[IB]
}

// NewProduct creates the product of a and b.
func NewProduct[IA, IB any](a Shape[IA], b Shape[IB]) Product[IA, IB] {
	return Product[IA, IB]{first: a, second: b}
}

// First returns the slow-varying operand.
func (p Product[IA, IB]) First() Shape[IA] {
	return p.first
}

// Second returns the fast-varying operand.
func (p Product[IA, IB]) Second() Shape[IB] {
	return p.second
}

// NumElements returns the product of the operand element counts.
func (p Product[IA, IB]) NumElements() int {
	return p.first.NumElements() * p.second.NumElements()
}

// Indices yields every pair, second component fastest.
func (p Product[IA, IB]) Indices() iter.Seq[Pair[IA, IB]] {
	return func(yield func(Pair[IA, IB]) bool) {
		for a := range p.first.Indices() {
			for b := range p.second.Indices() {
				if !yield(Pair[IA, IB]{First: a, Second: b}) {
					return
				}
			}
		}
	}
}

// Contains reports whether both components are valid for their operand.
func (p Product[IA, IB]) Contains(i Pair[IA, IB]) bool {
	return p.first.Contains(i.First) && p.second.Contains(i.Second)
}

// Equal reports whether other is a product of equal operands.
func (p Product[IA, IB]) Equal(other Shape[Pair[IA, IB]]) bool {
	o, ok := other.(Product[IA, IB])
	return ok && p.first.Equal(o.first) && p.second.Equal(o.second)
}

func (p Product[IA, IB]) String() string {
	return fmt.Sprintf("(%v × %v)", p.first, p.second)
}
