package emit

import (
	"fmt"

	"github.com/born-ml/vecalg/internal/linalg"
	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/stats"
	"github.com/born-ml/vecalg/internal/vec"
)

// Standardize emits an in-place standardization of the buffer name of
// length n. The mean and the deviation are bound to temporaries so the
// generated code evaluates each of them once.
func Standardize(p *Program, name string, n int, cfg stats.Config) error {
	if n <= 0 || n-cfg.Ddof <= 0 {
		return fmt.Errorf("emit standardize: %w: %d elements with ddof %d", stats.ErrTooFewElements, n, cfg.Ddof)
	}
	var a Algebra
	in, out, err := p.Buffer(name, n)
	if err != nil {
		return err
	}

	mean, err := stats.Mean[shape.Range, int, Expr](a, in)
	if err != nil {
		return err
	}
	mean = p.Let(mean)

	dev := vec.Map(func(x Expr) Expr { return a.Sub(x, mean) }, in)
	sq, err := linalg.Mul[shape.Range, int, Expr](a, dev, dev)
	if err != nil {
		return err
	}
	sd := p.Let(a.Sqrt(a.Div(linalg.Sum[shape.Range, int, Expr](a, sq), a.FromInt(n-cfg.Ddof))))

	return vec.Assign(out, vec.Map(func(x Expr) Expr {
		return a.Div(a.Sub(x, mean), sd)
	}, in))
}

// Axpy emits y[i] = alpha*x[i] + y[i] over two buffers of length n.
func Axpy(p *Program, alpha Expr, n int) error {
	var a Algebra
	x, _, err := p.Buffer("x", n)
	if err != nil {
		return err
	}
	y, yOut, err := p.Buffer("y", n)
	if err != nil {
		return err
	}
	sum, err := linalg.Add[shape.Range, int, Expr](a, linalg.Smul[shape.Range, int, Expr](a, alpha, x), y)
	if err != nil {
		return err
	}
	return vec.Assign(yOut, sum)
}
