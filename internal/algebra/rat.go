package algebra

import "math/big"

// Verify that Rat implements Field and Ordered.
var (
	_ Field[*big.Rat]   = Rat{}
	_ Ordered[*big.Rat] = Rat{}
)

// Rat is exact rational arithmetic over *big.Rat.
//
// Every operation returns a freshly allocated value and never mutates its
// operands, so elements can be shared between vectors.
type Rat struct{}

// Zero returns 0.
func (Rat) Zero() *big.Rat { return new(big.Rat) }

// One returns 1.
func (Rat) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b.
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a - b.
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b.
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Neg returns -a.
func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Div returns a / b. Panics if b is zero, as big.Rat.Quo does.
func (Rat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// FromInt converts n to a rational.
func (Rat) FromInt(n int) *big.Rat { return big.NewRat(int64(n), 1) }

// Less reports whether a < b.
func (Rat) Less(a, b *big.Rat) bool { return a.Cmp(b) < 0 }
