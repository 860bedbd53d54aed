package vec

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrIndexOutOfDomain = errors.New("index out of domain")
)

// MismatchError reports the operands of a combinator whose shapes are not
// compatible. It unwraps to ErrShapeMismatch.
type MismatchError struct {
	Op    string // Combinator that failed (e.g., "zip", "assign")
	Left  string // Shape of the first operand
	Right string // Shape of the second operand
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %v: %s vs %s", e.Op, ErrShapeMismatch, e.Left, e.Right)
}

// Unwrap returns ErrShapeMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrShapeMismatch
}

func mismatch(op string, left, right fmt.Stringer) error {
	return &MismatchError{Op: op, Left: left.String(), Right: right.String()}
}
