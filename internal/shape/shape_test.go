package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.NumElements())
	assert.Equal(t, []int{0, 1, 2, 3}, Collect[int](r))

	empty, err := NewRange(0)
	require.NoError(t, err)
	assert.Empty(t, Collect[int](empty))

	_, err = NewRange(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestRangeContains(t *testing.T) {
	r := MustRange(3)
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(3))
	assert.False(t, r.Contains(-1))
}

func TestNewGrid_Invalid(t *testing.T) {
	_, err := NewGrid(2, -3)
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.Contains(t, err.Error(), "axis 1")

	assert.Panics(t, func() { MustGrid(-1) })
}

func TestGridEnumerationOrder(t *testing.T) {
	g := MustGrid(2, 3)
	got := Collect[Tuple](g)
	want := []Tuple{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	assert.Equal(t, want, got)
}

func TestGridScalar(t *testing.T) {
	g := MustGrid()
	assert.Equal(t, 0, g.Rank())
	assert.Equal(t, 1, g.NumElements())
	got := Collect[Tuple](g)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
	assert.Equal(t, 0, g.Linearize(Tuple{}))
}

func TestGridZeroExtent(t *testing.T) {
	g := MustGrid(3, 0, 2)
	assert.Equal(t, 0, g.NumElements())
	assert.Empty(t, Collect[Tuple](g))
}

// TestEnumerationConsistency checks that every shape yields NumElements
// distinct valid indices, identically on every call.
func TestEnumerationConsistency(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		for _, n := range []int{0, 1, 7} {
			checkEnumeration[int](t, MustRange(n), func(a, b int) bool { return a == b })
		}
	})

	t.Run("grid", func(t *testing.T) {
		for _, ext := range [][]int{{}, {5}, {2, 3}, {3, 1, 4}, {2, 0}} {
			checkEnumeration[Tuple](t, MustGrid(ext...), Tuple.Equal)
		}
	})

	t.Run("product", func(t *testing.T) {
		p := NewProduct[int, Tuple](MustRange(3), MustGrid(2, 2))
		checkEnumeration[Pair[int, Tuple]](t, p, func(a, b Pair[int, Tuple]) bool {
			return a.First == b.First && a.Second.Equal(b.Second)
		})
	})
}

func checkEnumeration[I any](t *testing.T, s Shape[I], eq func(a, b I) bool) {
	t.Helper()
	first := Collect(s)
	second := Collect(s)
	require.Len(t, first, s.NumElements(), "%v", s)
	require.Len(t, second, s.NumElements(), "%v", s)
	for k := range first {
		assert.True(t, eq(first[k], second[k]), "%v: index %d differs between runs", s, k)
		assert.True(t, s.Contains(first[k]), "%v: %v not contained", s, first[k])
		for j := 0; j < k; j++ {
			assert.False(t, eq(first[j], first[k]), "%v: duplicate index %v", s, first[k])
		}
	}
}

func TestIndicesEarlyStop(t *testing.T) {
	g := MustGrid(4, 4)
	count := 0
	for range g.Indices() {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)
}

func TestLinearizeBijection(t *testing.T) {
	tests := []struct {
		name    string
		extents []int
	}{
		{"vector", []int{6}},
		{"matrix", []int{2, 3}},
		{"cube", []int{2, 3, 4}},
		{"unit axes", []int{1, 5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGrid(tt.extents...)
			pos := 0
			for idx := range g.Indices() {
				off := g.Linearize(idx)
				assert.Equal(t, pos, off, "offset follows enumeration order")
				assert.Equal(t, idx, g.Delinearize(off))
				pos++
			}
			for off := 0; off < g.NumElements(); off++ {
				assert.Equal(t, off, g.Linearize(g.Delinearize(off)))
			}
		})
	}
}

func TestGridStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, MustGrid(2, 3, 4).Strides())
	assert.Equal(t, []int{}, MustGrid().Strides())

	g := MustGrid(2, 3, 4)
	strides := g.Strides()
	idx := Tuple{1, 2, 3}
	off := 0
	for k, c := range idx {
		off += c * strides[k]
	}
	assert.Equal(t, g.Linearize(idx), off)
}

func TestGridProduct(t *testing.T) {
	a := MustGrid(2)
	b := MustGrid(3, 2)
	p := a.Product(b)
	assert.Equal(t, []int{2, 3, 2}, p.Extents())
	assert.Equal(t, a.NumElements()*b.NumElements(), p.NumElements())
	assert.Equal(t, Tuple{0, 0, 1}, Collect[Tuple](p)[1])
}

func TestProductShape(t *testing.T) {
	p := NewProduct[int, int](MustRange(2), MustRange(3))
	assert.Equal(t, 6, p.NumElements())

	got := Collect[Pair[int, int]](p)
	assert.Equal(t, Pair[int, int]{0, 0}, got[0])
	assert.Equal(t, Pair[int, int]{0, 2}, got[2])
	assert.Equal(t, Pair[int, int]{1, 0}, got[3])

	assert.True(t, p.Contains(Pair[int, int]{1, 2}))
	assert.False(t, p.Contains(Pair[int, int]{2, 0}))
}

func TestEqualAndCompatible(t *testing.T) {
	assert.True(t, Compatible[int](MustRange(3), MustRange(3)))
	assert.False(t, Compatible[int](MustRange(3), MustRange(4)))

	assert.True(t, Compatible[Tuple](MustGrid(2, 3), MustGrid(2, 3)))
	assert.False(t, Compatible[Tuple](MustGrid(2, 3), MustGrid(3, 2)), "same count, different domain")
	assert.False(t, Compatible[Tuple](MustGrid(2, 3), MustGrid(6)))

	p1 := NewProduct[int, int](MustRange(2), MustRange(3))
	p2 := NewProduct[int, int](MustRange(2), MustRange(3))
	p3 := NewProduct[int, int](MustRange(3), MustRange(2))
	assert.True(t, p1.Equal(p2))
	assert.False(t, p1.Equal(p3))
}

func TestRangeGridConversion(t *testing.T) {
	r := MustRange(5)
	g := r.Grid()
	assert.Equal(t, []int{5}, g.Extents())
	assert.True(t, g.Range().Equal(r))
	assert.Equal(t, "Range(5)", r.String())
	assert.Equal(t, "Grid[2 3]", MustGrid(2, 3).String())
}
