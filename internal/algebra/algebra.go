// Package algebra defines the element capability sets that specialized
// vector constructors are instantiated with.
//
// An algebra is a value, not a constraint on E itself, so the same element
// type can be used with different arithmetic (exact rationals, floats,
// symbolic expressions) without wrapping it.
package algebra

// Ring supplies addition, subtraction and multiplication.
type Ring[E any] interface {
	Zero() E
	One() E
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
}

// Field extends Ring with division and an embedding of the integers,
// which reductions such as the mean need to turn a count into an element.
type Field[E any] interface {
	Ring[E]
	Div(a, b E) E
	FromInt(n int) E
}

// Real extends Field with a square root.
type Real[E any] interface {
	Field[E]
	Sqrt(a E) E
}

// Ordered supplies a strict total order on elements.
type Ordered[E any] interface {
	Less(a, b E) bool
}
