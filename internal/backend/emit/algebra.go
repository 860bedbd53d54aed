package emit

import (
	"strconv"
	"strings"

	"github.com/born-ml/vecalg/internal/algebra"
)

// Verify that Algebra implements Real.
var _ algebra.Real[Expr] = Algebra{}

// Expr is a symbolic element: the Go source of a float64 expression.
type Expr string

// Stmt is the write outcome of an emitting setter: one Go statement.
type Stmt string

// Algebra builds expressions instead of computing values. Additions and
// multiplications by the neutral element are folded away.
type Algebra struct{}

// Zero returns the literal 0.
func (Algebra) Zero() Expr { return "0" }

// One returns the literal 1.
func (Algebra) One() Expr { return "1" }

// Add returns (a + b).
func (Algebra) Add(a, b Expr) Expr {
	switch {
	case a == "0":
		return b
	case b == "0":
		return a
	}
	return "(" + a + " + " + b + ")"
}

// Sub returns (a - b).
func (Algebra) Sub(a, b Expr) Expr {
	if b == "0" {
		return a
	}
	return "(" + a + " - " + b + ")"
}

// Mul returns (a * b).
func (Algebra) Mul(a, b Expr) Expr {
	switch {
	case a == "1":
		return b
	case b == "1":
		return a
	}
	return "(" + a + " * " + b + ")"
}

// Neg returns (-a). A negative literal is parenthesized first so the two
// signs do not read as the decrement operator.
func (Algebra) Neg(a Expr) Expr {
	if strings.HasPrefix(string(a), "-") {
		return "(-(" + a + "))"
	}
	return "(-" + a + ")"
}

// Div returns (a / b).
func (Algebra) Div(a, b Expr) Expr {
	if b == "1" {
		return a
	}
	return "(" + a + " / " + b + ")"
}

// FromInt returns n as a literal.
func (Algebra) FromInt(n int) Expr { return Expr(strconv.Itoa(n)) }

// Sqrt returns math.Sqrt(a).
func (Algebra) Sqrt(a Expr) Expr { return "math.Sqrt(" + a + ")" }
