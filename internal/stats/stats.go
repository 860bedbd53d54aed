// Package stats provides descriptive statistics and standardization written
// once against the abstract vector core, for any element algebra.
package stats

import (
	"errors"
	"fmt"

	"github.com/born-ml/vecalg/internal/algebra"
	"github.com/born-ml/vecalg/internal/linalg"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// ErrTooFewElements is returned when a statistic is undefined for the
// number of elements given.
var ErrTooFewElements = errors.New("too few elements")

// Config controls how spread is measured.
type Config struct {
	Ddof int // Delta degrees of freedom: divisor is n - Ddof.
}

// DefaultConfig returns the population statistics configuration.
func DefaultConfig() Config {
	return Config{Ddof: 0}
}

// SampleConfig returns the configuration for unbiased sample variance.
func SampleConfig() Config {
	return Config{Ddof: 1}
}

// Mean returns the arithmetic mean of v.
// Returns ErrTooFewElements if v is empty.
func Mean[S shape.Shape[I], I, E any](f algebra.Field[E], v vec.Vec[S, I, E]) (E, error) {
	n := v.NumElements()
	if n == 0 {
		var zero E
		return zero, fmt.Errorf("mean: %w: empty %v", ErrTooFewElements, v.Shape())
	}
	return f.Div(linalg.Sum[S, I, E](f, v), f.FromInt(n)), nil
}

// Variance returns the mean squared deviation from the mean, dividing by
// n - cfg.Ddof. Returns ErrTooFewElements if that divisor is not positive.
func Variance[S shape.Shape[I], I, E any](f algebra.Field[E], v vec.Vec[S, I, E], cfg Config) (E, error) {
	var zero E
	n := v.NumElements()
	if n-cfg.Ddof <= 0 {
		return zero, fmt.Errorf("variance: %w: %d elements with ddof %d", ErrTooFewElements, n, cfg.Ddof)
	}
	mean, err := Mean(f, v)
	if err != nil {
		return zero, err
	}
	sq := vec.Map(func(x E) E {
		d := f.Sub(x, mean)
		return f.Mul(d, d)
	}, v)
	return f.Div(linalg.Sum[S, I, E](f, sq), f.FromInt(n-cfg.Ddof)), nil
}

// StdDev returns the square root of Variance.
func StdDev[S shape.Shape[I], I, E any](f algebra.Real[E], v vec.Vec[S, I, E], cfg Config) (E, error) {
	variance, err := Variance[S, I, E](f, v, cfg)
	if err != nil {
		var zero E
		return zero, err
	}
	return f.Sqrt(variance), nil
}

// Standardized returns the lazy vector (x - mean) / stddev of v.
// The mean and deviation are computed once, when Standardized is called.
// A constant v has a zero deviation; the elements are then whatever the
// algebra's Div yields for 0/0 (NaN for Float).
func Standardized[S shape.Shape[I], I, E any](f algebra.Real[E], v vec.Vec[S, I, E], cfg Config) (vec.Vec[S, I, E], error) {
	mean, err := Mean[S, I, E](f, v)
	if err != nil {
		return vec.Vec[S, I, E]{}, err
	}
	sd, err := StdDev(f, v, cfg)
	if err != nil {
		return vec.Vec[S, I, E]{}, err
	}
	return vec.Map(func(x E) E { return f.Div(f.Sub(x, mean), sd) }, v), nil
}

// Standardize writes the standardized elements of in to out.
//
// in and out may share storage: every statistic is read before the first
// write, and each written element depends only on the element read at the
// same index.
//
// Standardize does not check for a zero deviation. With the Float algebra a
// constant in is overwritten with NaN.
func Standardize[S shape.Shape[I], I, E, W any](f algebra.Real[E], out vec.OVec[S, I, E, W], in vec.Vec[S, I, E], cfg Config) error {
	if !shape.Compatible[I](out.Shape(), in.Shape()) {
		return &vec.MismatchError{Op: "standardize", Left: out.Shape().String(), Right: in.Shape().String()}
	}
	z, err := Standardized(f, in, cfg)
	if err != nil {
		return err
	}
	return vec.Assign(out, z)
}
