// Package morph implements shape morphisms: index remappings that let a
// vector over one shape be viewed as a vector over another without touching
// its storage.
//
// A morphism from A to B always knows how to find the A index behind a B
// index (ToSource). Invertible morphisms also map A indices to B indices
// (ToTarget); only those can carry output vectors, since writes through a
// non-injective remapping would land on the same storage twice.
package morph

import (
	"errors"
	"fmt"

	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// Common errors.
var (
	ErrNotInvertible = errors.New("morphism is not invertible")
	ErrInvalidAxes   = errors.New("invalid axes")
)

// Morphism maps the index domain of a target shape SB back onto a source
// shape SA, and optionally forward.
type Morphism[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any] struct {
	source   SA
	target   SB
	toSource func(IB) IA
	toTarget func(IA) IB // nil unless invertible
}

// New creates a one-way morphism. toSource must map every valid index of dst
// to a valid index of src.
func New[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any](src SA, dst SB, toSource func(IB) IA) Morphism[SA, IA, SB, IB] {
	return Morphism[SA, IA, SB, IB]{source: src, target: dst, toSource: toSource}
}

// NewInvertible creates a morphism with both directions. The two functions
// must be mutual inverses between the valid indices of src and dst.
// Returns vec.ErrShapeMismatch if the element counts differ.
func NewInvertible[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any](
	src SA, dst SB, toSource func(IB) IA, toTarget func(IA) IB,
) (Morphism[SA, IA, SB, IB], error) {
	if src.NumElements() != dst.NumElements() {
		return Morphism[SA, IA, SB, IB]{}, &vec.MismatchError{Op: "morphism", Left: src.String(), Right: dst.String()}
	}
	return Morphism[SA, IA, SB, IB]{source: src, target: dst, toSource: toSource, toTarget: toTarget}, nil
}

// Source returns the shape the morphism reads from.
func (m Morphism[SA, IA, SB, IB]) Source() SA {
	return m.source
}

// Target returns the shape the morphism presents.
func (m Morphism[SA, IA, SB, IB]) Target() SB {
	return m.target
}

// Invertible reports whether ToTarget is available.
func (m Morphism[SA, IA, SB, IB]) Invertible() bool {
	return m.toTarget != nil
}

// ToSource maps a target index to its source index.
func (m Morphism[SA, IA, SB, IB]) ToSource(i IB) IA {
	return m.toSource(i)
}

// ToTarget maps a source index to its target index.
// Panics if the morphism is not invertible.
func (m Morphism[SA, IA, SB, IB]) ToTarget(i IA) IB {
	if m.toTarget == nil {
		panic(fmt.Sprintf("ToTarget on non-invertible morphism %v -> %v", m.source, m.target))
	}
	return m.toTarget(i)
}

func (m Morphism[SA, IA, SB, IB]) String() string {
	arrow := "->"
	if m.Invertible() {
		arrow = "<->"
	}
	return fmt.Sprintf("%v %s %v", m.source, arrow, m.target)
}

// Inverse swaps the directions of an invertible morphism.
func Inverse[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any](m Morphism[SA, IA, SB, IB]) (Morphism[SB, IB, SA, IA], error) {
	if !m.Invertible() {
		return Morphism[SB, IB, SA, IA]{}, fmt.Errorf("inverse of %v: %w", m, ErrNotInvertible)
	}
	return Morphism[SB, IB, SA, IA]{
		source:   m.target,
		target:   m.source,
		toSource: m.toTarget,
		toTarget: m.toSource,
	}, nil
}

// Compose chains ab (A to B) and bc (B to C) into a morphism from A to C.
// The result is invertible when both operands are.
// Returns vec.ErrShapeMismatch if ab's target is not bc's source.
func Compose[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any, SC shape.Shape[IC], IC any](
	ab Morphism[SA, IA, SB, IB], bc Morphism[SB, IB, SC, IC],
) (Morphism[SA, IA, SC, IC], error) {
	if !shape.Compatible[IB](ab.target, bc.source) {
		return Morphism[SA, IA, SC, IC]{}, &vec.MismatchError{Op: "compose", Left: ab.target.String(), Right: bc.source.String()}
	}
	abSrc, bcSrc := ab.toSource, bc.toSource
	out := Morphism[SA, IA, SC, IC]{
		source:   ab.source,
		target:   bc.target,
		toSource: func(c IC) IA { return abSrc(bcSrc(c)) },
	}
	if ab.Invertible() && bc.Invertible() {
		abTgt, bcTgt := ab.toTarget, bc.toTarget
		out.toTarget = func(a IA) IC { return bcTgt(abTgt(a)) }
	}
	return out, nil
}

// Transport presents v, a vector over m's source, as a vector over m's
// target. The getter is v's getter composed with ToSource; no data moves.
// Returns vec.ErrShapeMismatch if v's shape is not m's source.
func Transport[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any, E any](
	v vec.Vec[SA, IA, E], m Morphism[SA, IA, SB, IB],
) (vec.Vec[SB, IB, E], error) {
	if !shape.Compatible[IA](v.Shape(), m.source) {
		return vec.Vec[SB, IB, E]{}, &vec.MismatchError{Op: "transport", Left: v.Shape().String(), Right: m.source.String()}
	}
	get, toSource := v.Getter(), m.toSource
	return vec.New(m.target, func(i IB) E { return get(toSource(i)) }), nil
}

// TransportOut presents o, an output vector over m's source, as an output
// vector over m's target. Requires an invertible morphism.
func TransportOut[SA shape.Shape[IA], IA any, SB shape.Shape[IB], IB any, E, W any](
	o vec.OVec[SA, IA, E, W], m Morphism[SA, IA, SB, IB],
) (vec.OVec[SB, IB, E, W], error) {
	if !m.Invertible() {
		return vec.OVec[SB, IB, E, W]{}, fmt.Errorf("transport out through %v: %w", m, ErrNotInvertible)
	}
	if !shape.Compatible[IA](o.Shape(), m.source) {
		return vec.OVec[SB, IB, E, W]{}, &vec.MismatchError{Op: "transport", Left: o.Shape().String(), Right: m.source.String()}
	}
	set, toSource := o.Setter(), m.toSource
	return vec.NewOut(m.target, func(i IB, e E) W { return set(toSource(i), e) }), nil
}
