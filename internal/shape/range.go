package shape

import (
	"fmt"
	"iter"
)

// Range is a rank-one shape whose indices are the integers [0, n) in
// ascending order.
type Range struct {
	n int
}

// NewRange creates a rank-one shape of length n.
// Returns ErrInvalidShape if n is negative.
func NewRange(n int) (Range, error) {
	if n < 0 {
		return Range{}, fmt.Errorf("%w: negative length %d", ErrInvalidShape, n)
	}
	return Range{n: n}, nil
}

// MustRange is like NewRange but panics on error.
func MustRange(n int) Range {
	r, err := NewRange(n)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the length of the range.
func (r Range) Len() int {
	return r.n
}

// NumElements returns the length of the range.
func (r Range) NumElements() int {
	return r.n
}

// Indices yields 0, 1, ..., n-1.
func (r Range) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Contains reports whether 0 <= i < n.
func (r Range) Contains(i int) bool {
	return i >= 0 && i < r.n
}

// Equal reports whether other is a Range of the same length.
func (r Range) Equal(other Shape[int]) bool {
	o, ok := other.(Range)
	return ok && o.n == r.n
}

// Grid returns the equivalent one-axis grid.
func (r Range) Grid() Grid {
	return Grid{extents: []int{r.n}}
}

func (r Range) String() string {
	return fmt.Sprintf("Range(%d)", r.n)
}
