package algebra

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Verify that Float implements Real and Ordered.
var (
	_ Real[float64]    = Float[float64]{}
	_ Ordered[float32] = Float[float32]{}
)

// Float is the IEEE floating-point algebra for any float type.
type Float[F constraints.Float] struct{}

// Zero returns 0.
func (Float[F]) Zero() F { return 0 }

// One returns 1.
func (Float[F]) One() F { return 1 }

// Add returns a + b.
func (Float[F]) Add(a, b F) F { return a + b }

// Sub returns a - b.
func (Float[F]) Sub(a, b F) F { return a - b }

// Mul returns a * b.
func (Float[F]) Mul(a, b F) F { return a * b }

// Neg returns -a.
func (Float[F]) Neg(a F) F { return -a }

// Div returns a / b. Division by zero follows IEEE rules.
func (Float[F]) Div(a, b F) F { return a / b }

// FromInt converts n to F.
func (Float[F]) FromInt(n int) F { return F(n) }

// Sqrt returns the square root of a, computed in float64.
func (Float[F]) Sqrt(a F) F { return F(math.Sqrt(float64(a))) }

// Less reports whether a < b.
func (Float[F]) Less(a, b F) bool { return a < b }
