package strided

import (
	"testing"

	"github.com/born-ml/vecalg/internal/backend/slice"
	"github.com/born-ml/vecalg/internal/morph"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStrides(t *testing.T) {
	g := shape.MustGrid(2, 3, 4)
	assert.Equal(t, []int{12, 4, 1}, RowMajor.Strides(g))
	assert.Equal(t, []int{1, 2, 6}, ColumnMajor.Strides(g))
	assert.Equal(t, "row-major", RowMajor.String())
	assert.Equal(t, "column-major", ColumnMajor.String())
	assert.Equal(t, "unknown", Layout(9).String())
}

func TestRowMajorMatchesLinearize(t *testing.T) {
	g := shape.MustGrid(3, 2)
	data := []float64{0, 1, 2, 3, 4, 5}
	b, err := New(data, g, RowMajor)
	require.NoError(t, err)

	for idx := range g.Indices() {
		assert.Equal(t, g.Linearize(idx), b.Offset(idx))
	}
	assert.Equal(t, data, slice.Materialize(b.Vec()))
}

func TestColumnMajor(t *testing.T) {
	g := shape.MustGrid(2, 3)
	// Columns stored contiguously: [[1 2 3] [4 5 6]].
	data := []float64{1, 4, 2, 5, 3, 6}
	b, err := New(data, g, ColumnMajor)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, slice.Materialize(b.Vec()))
}

func TestCrossLayoutAssign(t *testing.T) {
	g := shape.MustGrid(2, 3)
	src, err := New([]float64{1, 2, 3, 4, 5, 6}, g, RowMajor)
	require.NoError(t, err)

	dstData := make([]float64, 6)
	dst, err := New(dstData, g, ColumnMajor)
	require.NoError(t, err)

	require.NoError(t, vec.Assign(dst.OVec(), src.Vec()))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, dstData)
	assert.Equal(t, slice.Materialize(src.Vec()), slice.Materialize(dst.Vec()))
}

func TestViewWithOffsetAndNegativeStride(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	// Reverse of data[2:6].
	b, err := NewView(data, shape.MustGrid(4), 5, []int{-1})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 3, 2}, slice.Materialize(b.Vec()))

	// Broadcast: a stride of zero repeats one element.
	bc, err := NewView(data, shape.MustGrid(3), 7, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 7}, slice.Materialize(bc.Vec()))
}

func TestNewView_OutOfBounds(t *testing.T) {
	data := make([]float64, 6)
	tests := []struct {
		name    string
		g       shape.Grid
		offset  int
		strides []int
	}{
		{"too long", shape.MustGrid(7), 0, []int{1}},
		{"offset overflow", shape.MustGrid(3), 4, []int{1}},
		{"negative reach", shape.MustGrid(3), 1, []int{-1}},
		{"rank mismatch", shape.MustGrid(2, 3), 0, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewView(data, tt.g, tt.offset, tt.strides)
			assert.ErrorIs(t, err, vec.ErrShapeMismatch)
		})
	}

	empty, err := NewView(data, shape.MustGrid(0, 3), 100, []int{3, 1})
	require.NoError(t, err, "empty grids never touch storage")
	assert.Equal(t, 0, empty.Vec().NumElements())
}

func TestOverlappingWrites(t *testing.T) {
	// Two axes both with stride 1 alias storage: later writes win, in
	// canonical order.
	data := make([]int, 3)
	b, err := NewView(data, shape.MustGrid(2, 2), 0, []int{1, 1})
	require.NoError(t, err)

	ids := vec.Map(func(idx shape.Tuple) int { return 10*idx[0] + idx[1] }, vec.Iota[shape.Grid, shape.Tuple](b.Grid()))
	require.NoError(t, vec.Assign(b.OVec(), ids))
	// Offsets are 0, 1, 1, 2: the write of (1,0) replaces that of (0,1).
	assert.Equal(t, []int{0, 10, 11}, data)
}

func TestTransposeView(t *testing.T) {
	g := shape.MustGrid(2, 3)
	b, err := New([]float64{1, 2, 3, 4, 5, 6}, g, RowMajor)
	require.NoError(t, err)

	// A morphism transpose and a stride swap agree.
	tr, err := morph.Transpose(g)
	require.NoError(t, err)
	viaMorph, err := morph.Transport(b.Vec(), tr)
	require.NoError(t, err)

	strides := b.Strides()
	viaStrides, err := NewView(b.data, tr.Target(), 0, []int{strides[1], strides[0]})
	require.NoError(t, err)

	assert.Equal(t, slice.Materialize(viaStrides.Vec()), slice.Materialize(viaMorph))
	assert.Contains(t, b.String(), "strides=[3 1]")
}
