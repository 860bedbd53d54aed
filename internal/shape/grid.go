package shape

import (
	"fmt"
	"iter"
	"slices"
)

// Tuple is a multi-axis index into a Grid, one coordinate per axis.
type Tuple []int

// Equal checks if two tuples have the same coordinates.
func (t Tuple) Equal(other Tuple) bool {
	return slices.Equal(t, other)
}

// Clone returns a copy of the tuple.
func (t Tuple) Clone() Tuple {
	return slices.Clone(t)
}

// Grid is a multi-axis shape described by per-axis extents.
//
// Indices are enumerated with the first axis varying slowest and the last
// axis varying fastest, and Linearize maps a tuple to its position in that
// enumeration. A grid with no axes is a scalar with exactly one index, the
// empty tuple.
type Grid struct {
	extents []int
}

// NewGrid creates a grid with the given extents.
// Returns ErrInvalidShape if any extent is negative.
func NewGrid(extents ...int) (Grid, error) {
	if err := validate(extents); err != nil {
		return Grid{}, err
	}
	return Grid{extents: slices.Clone(extents)}, nil
}

// MustGrid is like NewGrid but panics on error.
func MustGrid(extents ...int) Grid {
	g, err := NewGrid(extents...)
	if err != nil {
		panic(err)
	}
	return g
}

func validate(extents []int) error {
	for axis, n := range extents {
		if n < 0 {
			return fmt.Errorf("%w: axis %d has negative extent %d", ErrInvalidShape, axis, n)
		}
	}
	return nil
}

// Rank returns the number of axes.
func (g Grid) Rank() int {
	return len(g.extents)
}

// Extent returns the size of the given axis.
func (g Grid) Extent(axis int) int {
	return g.extents[axis]
}

// Extents returns a copy of the per-axis sizes.
func (g Grid) Extents() []int {
	return slices.Clone(g.extents)
}

// NumElements returns the product of the extents.
func (g Grid) NumElements() int {
	n := 1
	for _, e := range g.extents {
		n *= e
	}
	return n
}

// Strides returns the linearization stride of each axis:
// stride[k] = product of all extents after k.
func (g Grid) Strides() []int {
	strides := make([]int, len(g.extents))
	if len(g.extents) == 0 {
		return strides
	}

	strides[len(g.extents)-1] = 1
	for k := len(g.extents) - 2; k >= 0; k-- {
		strides[k] = strides[k+1] * g.extents[k+1]
	}
	return strides
}

// Indices enumerates all tuples, last axis fastest.
//
// Each yielded tuple is freshly allocated and may be retained by the caller.
func (g Grid) Indices() iter.Seq[Tuple] {
	return func(yield func(Tuple) bool) {
		if g.NumElements() == 0 {
			return
		}
		cur := make(Tuple, len(g.extents))
		for {
			if !yield(cur.Clone()) {
				return
			}
			// Odometer increment from the last axis.
			k := len(cur) - 1
			for ; k >= 0; k-- {
				cur[k]++
				if cur[k] < g.extents[k] {
					break
				}
				cur[k] = 0
			}
			if k < 0 {
				return
			}
		}
	}
}

// Contains reports whether t has one in-bounds coordinate per axis.
func (g Grid) Contains(t Tuple) bool {
	if len(t) != len(g.extents) {
		return false
	}
	for k, c := range t {
		if c < 0 || c >= g.extents[k] {
			return false
		}
	}
	return true
}

// Equal reports whether other is a Grid with identical extents.
func (g Grid) Equal(other Shape[Tuple]) bool {
	o, ok := other.(Grid)
	return ok && slices.Equal(g.extents, o.extents)
}

// Linearize returns the flat offset of t, which equals its position in
// Indices order. t must be valid for g.
func (g Grid) Linearize(t Tuple) int {
	off := 0
	for k, c := range t {
		off = off*g.extents[k] + c
	}
	return off
}

// Delinearize is the inverse of Linearize. off must lie in [0, NumElements).
func (g Grid) Delinearize(off int) Tuple {
	t := make(Tuple, len(g.extents))
	for k := len(g.extents) - 1; k >= 0; k-- {
		n := g.extents[k]
		t[k] = off % n
		off /= n
	}
	return t
}

// Product returns the grid whose axes are g's axes followed by other's.
// Its enumeration is the cartesian product with g varying slowest.
func (g Grid) Product(other Grid) Grid {
	extents := make([]int, 0, len(g.extents)+len(other.extents))
	extents = append(extents, g.extents...)
	extents = append(extents, other.extents...)
	return Grid{extents: extents}
}

// Range returns the rank-one shape with the same element count.
func (g Grid) Range() Range {
	return Range{n: g.NumElements()}
}

func (g Grid) String() string {
	return fmt.Sprintf("Grid%v", g.extents)
}
