package morph

import (
	"fmt"

	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// Identity returns the invertible morphism from s to itself.
func Identity[S shape.Shape[I], I any](s S) Morphism[S, I, S, I] {
	id := func(i I) I { return i }
	return Morphism[S, I, S, I]{source: s, target: s, toSource: id, toTarget: id}
}

// Flatten views a grid as the range of its linear offsets.
//
// Example:
//
//	m := morph.Flatten(shape.MustGrid(2, 3))
//	m.ToSource(4) // Tuple{1, 1}
func Flatten(g shape.Grid) Morphism[shape.Grid, shape.Tuple, shape.Range, int] {
	return Morphism[shape.Grid, shape.Tuple, shape.Range, int]{
		source:   g,
		target:   g.Range(),
		toSource: g.Delinearize,
		toTarget: g.Linearize,
	}
}

// Unflatten views a range as a grid with the same element count.
// Returns vec.ErrShapeMismatch if the counts differ.
func Unflatten(r shape.Range, g shape.Grid) (Morphism[shape.Range, int, shape.Grid, shape.Tuple], error) {
	if r.NumElements() != g.NumElements() {
		return Morphism[shape.Range, int, shape.Grid, shape.Tuple]{}, &vec.MismatchError{Op: "unflatten", Left: r.String(), Right: g.String()}
	}
	return Inverse(Flatten(g))
}

// Reshape views a grid as another grid with the same element count by
// matching linear offsets.
//
// Example:
//
//	m, _ := morph.Reshape(shape.MustGrid(2, 6), shape.MustGrid(3, 4))
//	m.ToSource(shape.Tuple{1, 0}) // Tuple{0, 4}
func Reshape(from, to shape.Grid) (Morphism[shape.Grid, shape.Tuple, shape.Grid, shape.Tuple], error) {
	return NewInvertible(from, to,
		func(t shape.Tuple) shape.Tuple { return from.Delinearize(to.Linearize(t)) },
		func(t shape.Tuple) shape.Tuple { return to.Delinearize(from.Linearize(t)) },
	)
}

// Permute reorders the axes of g: axis k of the target is axis perm[k] of
// the source. Returns ErrInvalidAxes unless perm is a permutation of
// 0..rank-1.
func Permute(g shape.Grid, perm ...int) (Morphism[shape.Grid, shape.Tuple, shape.Grid, shape.Tuple], error) {
	none := Morphism[shape.Grid, shape.Tuple, shape.Grid, shape.Tuple]{}
	if len(perm) != g.Rank() {
		return none, fmt.Errorf("%w: permutation %v for rank %d", ErrInvalidAxes, perm, g.Rank())
	}
	seen := make([]bool, len(perm))
	extents := make([]int, len(perm))
	for k, axis := range perm {
		if axis < 0 || axis >= len(perm) || seen[axis] {
			return none, fmt.Errorf("%w: permutation %v for rank %d", ErrInvalidAxes, perm, g.Rank())
		}
		seen[axis] = true
		extents[k] = g.Extent(axis)
	}
	target, err := shape.NewGrid(extents...)
	if err != nil {
		return none, err
	}

	axes := append([]int(nil), perm...)
	return Morphism[shape.Grid, shape.Tuple, shape.Grid, shape.Tuple]{
		source: g,
		target: target,
		toSource: func(t shape.Tuple) shape.Tuple {
			src := make(shape.Tuple, len(axes))
			for k, axis := range axes {
				src[axis] = t[k]
			}
			return src
		},
		toTarget: func(s shape.Tuple) shape.Tuple {
			dst := make(shape.Tuple, len(axes))
			for k, axis := range axes {
				dst[k] = s[axis]
			}
			return dst
		},
	}, nil
}

// Transpose swaps the two axes of a rank-2 grid.
func Transpose(g shape.Grid) (Morphism[shape.Grid, shape.Tuple, shape.Grid, shape.Tuple], error) {
	if g.Rank() != 2 {
		return Morphism[shape.Grid, shape.Tuple, shape.Grid, shape.Tuple]{},
			fmt.Errorf("%w: transpose requires rank 2, got %v", ErrInvalidAxes, g)
	}
	return Permute(g, 1, 0)
}

// Slice views the sub-range [start, stop) of r as a range starting at 0.
// The view is read-only unless it covers all of r.
func Slice(r shape.Range, start, stop int) (Morphism[shape.Range, int, shape.Range, int], error) {
	if start < 0 || stop < start || stop > r.Len() {
		return Morphism[shape.Range, int, shape.Range, int]{},
			fmt.Errorf("%w: slice [%d:%d] of %v", ErrInvalidAxes, start, stop, r)
	}
	target := shape.MustRange(stop - start)
	if start == 0 && stop == r.Len() {
		return Identity[shape.Range, int](r), nil
	}
	return New(r, target, func(i int) int { return i + start }), nil
}

// Product combines morphisms on the factors of a product shape.
// The result is invertible when both operands are.
func Product[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any, SC shape.Shape[IC], IC any, SD shape.Shape[ID], ID any](
	first Morphism[SA, IA, SB, IB], second Morphism[SC, IC, SD, ID],
) Morphism[shape.Product[IA, IC], shape.Pair[IA, IC], shape.Product[IB, ID], shape.Pair[IB, ID]] {
	src := shape.NewProduct[IA, IC](first.source, second.source)
	dst := shape.NewProduct[IB, ID](first.target, second.target)
	fSrc, sSrc := first.toSource, second.toSource
	out := Morphism[shape.Product[IA, IC], shape.Pair[IA, IC], shape.Product[IB, ID], shape.Pair[IB, ID]]{
		source: src,
		target: dst,
		toSource: func(p shape.Pair[IB, ID]) shape.Pair[IA, IC] {
			return shape.Pair[IA, IC]{First: fSrc(p.First), Second: sSrc(p.Second)}
		},
	}
	if first.Invertible() && second.Invertible() {
		fTgt, sTgt := first.toTarget, second.toTarget
		out.toTarget = func(p shape.Pair[IA, IC]) shape.Pair[IB, ID] {
			return shape.Pair[IB, ID]{First: fTgt(p.First), Second: sTgt(p.Second)}
		}
	}
	return out
}

// GridOf views the product of two ranges as the equivalent two-axis grid.
func GridOf(a, b shape.Range) Morphism[shape.Product[int, int], shape.Pair[int, int], shape.Grid, shape.Tuple] {
	src := shape.NewProduct[int, int](a, b)
	return Morphism[shape.Product[int, int], shape.Pair[int, int], shape.Grid, shape.Tuple]{
		source: src,
		target: shape.MustGrid(a.Len(), b.Len()),
		toSource: func(t shape.Tuple) shape.Pair[int, int] {
			return shape.Pair[int, int]{First: t[0], Second: t[1]}
		},
		toTarget: func(p shape.Pair[int, int]) shape.Tuple {
			return shape.Tuple{p.First, p.Second}
		},
	}
}
