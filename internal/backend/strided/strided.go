// Package strided adapts strided buffers (an offset plus one stride per
// axis into a flat slice) to grid vectors.
package strided

import (
	"fmt"

	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// Layout selects how a dense buffer orders its axes in memory.
type Layout int

// Supported layouts.
const (
	RowMajor    Layout = iota // last axis contiguous
	ColumnMajor               // first axis contiguous
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Strides returns the dense strides of g in this layout.
func (l Layout) Strides(g shape.Grid) []int {
	if l == RowMajor {
		return g.Strides()
	}
	strides := make([]int, g.Rank())
	acc := 1
	for k := 0; k < g.Rank(); k++ {
		strides[k] = acc
		acc *= g.Extent(k)
	}
	return strides
}

// Buffer is a grid view into a flat slice.
// Multiple buffers may share, and overlap in, the same slice.
type Buffer[E any] struct {
	data    []E
	grid    shape.Grid
	strides []int
	offset  int
}

// New creates a dense buffer over data in the given layout.
// Returns vec.ErrShapeMismatch if data is too short for g.
func New[E any](data []E, g shape.Grid, layout Layout) (*Buffer[E], error) {
	return NewView(data, g, 0, layout.Strides(g))
}

// NewView creates a buffer with an explicit offset and strides. Strides may
// be zero (broadcast) or negative (reversed axis).
// Returns vec.ErrShapeMismatch if any index would fall outside data.
func NewView[E any](data []E, g shape.Grid, offset int, strides []int) (*Buffer[E], error) {
	if len(strides) != g.Rank() {
		return nil, fmt.Errorf("strided: %w: %d strides for %v", vec.ErrShapeMismatch, len(strides), g)
	}
	if g.NumElements() > 0 {
		lo, hi := offset, offset
		for k, s := range strides {
			reach := (g.Extent(k) - 1) * s
			if reach < 0 {
				lo += reach
			} else {
				hi += reach
			}
		}
		if lo < 0 || hi >= len(data) {
			return nil, fmt.Errorf("strided: %w: %v with offset %d strides %v reaches [%d, %d], buffer has %d elements",
				vec.ErrShapeMismatch, g, offset, strides, lo, hi, len(data))
		}
	}
	return &Buffer[E]{
		data:    data,
		grid:    g,
		strides: append([]int(nil), strides...),
		offset:  offset,
	}, nil
}

// Grid returns the buffer's shape.
func (b *Buffer[E]) Grid() shape.Grid {
	return b.grid
}

// Strides returns a copy of the per-axis strides.
func (b *Buffer[E]) Strides() []int {
	return append([]int(nil), b.strides...)
}

// Offset returns the position in the backing slice of tuple t.
func (b *Buffer[E]) Offset(t shape.Tuple) int {
	off := b.offset
	for k, c := range t {
		off += c * b.strides[k]
	}
	return off
}

// Vec returns a reader over the buffer.
func (b *Buffer[E]) Vec() vec.Vec[shape.Grid, shape.Tuple, E] {
	return vec.New(b.grid, func(t shape.Tuple) E { return b.data[b.Offset(t)] })
}

// OVec returns a writer into the buffer.
func (b *Buffer[E]) OVec() vec.OVec[shape.Grid, shape.Tuple, E, vec.Unit] {
	return vec.NewOut(b.grid, func(t shape.Tuple, x E) vec.Unit {
		b.data[b.Offset(t)] = x
		return vec.Unit{}
	})
}

func (b *Buffer[E]) String() string {
	return fmt.Sprintf("Buffer%v(offset=%d, strides=%v)", b.grid, b.offset, b.strides)
}
