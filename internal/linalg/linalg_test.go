package linalg

import (
	"math/big"
	"testing"

	"github.com/born-ml/vecalg/internal/algebra"
	"github.com/born-ml/vecalg/internal/backend/slice"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var f64 = algebra.Float[float64]{}

func TestElementwise(t *testing.T) {
	a := slice.Reader([]float64{1, 2, 3})
	b := slice.Reader([]float64{4, 5, 6})

	tests := []struct {
		name string
		op   func() (Vector[float64], error)
		want []float64
	}{
		{"add", func() (Vector[float64], error) { return Add(f64, a, b) }, []float64{5, 7, 9}},
		{"sub", func() (Vector[float64], error) { return Sub(f64, a, b) }, []float64{-3, -3, -3}},
		{"mul", func() (Vector[float64], error) { return Mul(f64, a, b) }, []float64{4, 10, 18}},
		{"div", func() (Vector[float64], error) { return Div(f64, b, a) }, []float64{4, 2.5, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			require.NoError(t, err)
			assert.Equal(t, tt.want, slice.Materialize(got))
		})
	}
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := slice.Reader([]float64{1, 2, 3})
	b := slice.Reader([]float64{1, 2})

	_, err := Add(f64, a, b)
	assert.ErrorIs(t, err, vec.ErrShapeMismatch)
	_, err = Dot(f64, a, b)
	assert.ErrorIs(t, err, vec.ErrShapeMismatch)
}

func TestScalarOps(t *testing.T) {
	v := slice.Reader([]float64{1, 4, 9})
	assert.Equal(t, []float64{2, 8, 18}, slice.Materialize(Smul(f64, 2, v)))
	assert.Equal(t, []float64{0, 3, 8}, slice.Materialize(Shift(f64, -1, v)))
	assert.Equal(t, []float64{-1, -4, -9}, slice.Materialize(Neg(f64, v)))
	assert.Equal(t, []float64{1, 2, 3}, slice.Materialize(Sqrt(f64, v)))
}

func TestSumAndDot(t *testing.T) {
	x := []float64{0.5, -1.25, 3, 7.75}
	y := []float64{2, 4, -6, 0.5}

	assert.InDelta(t, floats.Sum(x), Sum(f64, slice.Reader(x)), 1e-12)

	d, err := Dot(f64, slice.Reader(x), slice.Reader(y))
	require.NoError(t, err)
	assert.InDelta(t, floats.Dot(x, y), d, 1e-12)

	assert.Equal(t, 0.0, Sum(f64, slice.Reader([]float64{})))
}

func TestMaxMin(t *testing.T) {
	v := slice.Reader([]float64{3, -1, 7, 7, 2})
	hi, ok := Max(f64, v)
	require.True(t, ok)
	assert.Equal(t, 7.0, hi)

	lo, ok := Min(f64, v)
	require.True(t, ok)
	assert.Equal(t, -1.0, lo)

	_, ok = Max(f64, slice.Reader([]float64{}))
	assert.False(t, ok)
}

func TestRationalInstantiation(t *testing.T) {
	q := algebra.Rat{}
	a := slice.Reader([]*big.Rat{big.NewRat(1, 2), big.NewRat(1, 3)})
	b := slice.Reader([]*big.Rat{big.NewRat(1, 3), big.NewRat(1, 6)})

	d, err := Dot(q, a, b)
	require.NoError(t, err)
	// 1/6 + 1/18 = 2/9, exactly.
	assert.Equal(t, "2/9", d.RatString())

	quot, err := Div(q, a, b)
	require.NoError(t, err)
	assert.Equal(t, "3/2", quot.At(0).RatString())
	assert.Equal(t, "2", quot.At(1).RatString())

	hi, ok := Max(q, a)
	require.True(t, ok)
	assert.Equal(t, "1/2", hi.RatString())
}

func TestModuleVectors(t *testing.T) {
	m := NewModule[float64](f64)
	x := slice.Reader([]float64{1, 2, 3})

	d, err := m.Sub(x, m.Fill(3, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, slice.Materialize(d))

	s, err := m.Add(x, m.Zeros(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, slice.Materialize(s))

	p, err := m.Mul(x, x)
	require.NoError(t, err)
	assert.Equal(t, 14.0, m.Sum(p))

	dot, err := m.Dot(x, m.Smul(2, x))
	require.NoError(t, err)
	assert.Equal(t, 28.0, dot)
	assert.NotNil(t, m.Ring())
}

func TestModuleMatrices(t *testing.T) {
	m := NewModule[float64](f64)
	a, _, err := slice.WrapGrid([]float64{1, 2, 3, 4, 5, 6}, shape.MustGrid(2, 3))
	require.NoError(t, err)

	row, err := m.Row(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, slice.Materialize(row))

	col, err := m.Col(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, slice.Materialize(col))

	_, err = m.Row(a, 2)
	assert.ErrorIs(t, err, vec.ErrIndexOutOfDomain)

	y, err := m.MatVec(a, slice.Reader([]float64{1, 1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, slice.Materialize(y))

	_, err = m.MatVec(a, slice.Reader([]float64{1, 1}))
	assert.ErrorIs(t, err, vec.ErrShapeMismatch)

	at, err := m.Transpose(a)
	require.NoError(t, err)
	gram, err := m.MatMul(a, at)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, gram.Shape().Extents())
	assert.Equal(t, []float64{14, 32, 32, 77}, slice.Materialize(gram))

	_, err = m.MatMul(a, a)
	assert.ErrorIs(t, err, vec.ErrShapeMismatch)

	cube := vec.Const[shape.Grid, shape.Tuple](shape.MustGrid(1, 1, 1), 0.0)
	_, err = m.Row(cube, 0)
	assert.ErrorIs(t, err, vec.ErrShapeMismatch)
}

func TestMatMulMatchesRowColDot(t *testing.T) {
	q := algebra.Rat{}
	m := NewModule[*big.Rat](q)
	ratios := func(ns ...int64) []*big.Rat {
		out := make([]*big.Rat, len(ns))
		for i, n := range ns {
			out[i] = big.NewRat(n, int64(i+2))
		}
		return out
	}
	a, _, err := slice.WrapGrid(ratios(1, 2, 3, 4, 5, 6), shape.MustGrid(2, 3))
	require.NoError(t, err)
	b, _, err := slice.WrapGrid(ratios(-1, 0, 2, 7, 3, -5, 1, 1, 4, 2, 0, 9), shape.MustGrid(3, 4))
	require.NoError(t, err)

	prod, err := m.MatMul(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, prod.Shape().Extents())
	for idx := range prod.Shape().Indices() {
		row, err := m.Row(a, idx[0])
		require.NoError(t, err)
		col, err := m.Col(b, idx[1])
		require.NoError(t, err)
		want, err := m.Dot(row, col)
		require.NoError(t, err)
		assert.Equal(t, want.RatString(), prod.At(idx).RatString(), "element %v", idx)
	}

	x := slice.Reader(ratios(3, -1, 2))
	y, err := m.MatVec(a, x)
	require.NoError(t, err)
	for i := range 2 {
		row, err := m.Row(a, i)
		require.NoError(t, err)
		want, err := m.Dot(row, x)
		require.NoError(t, err)
		assert.Equal(t, want.RatString(), y.At(i).RatString(), "row %d", i)
	}
}
