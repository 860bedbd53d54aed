// Package emit is a code-generating backend: its vectors produce Go source
// instead of numbers.
//
// Getters return expressions that read a named buffer, setters record an
// assignment statement in a Program and return it as the write outcome.
// Running any algorithm from the core over these vectors therefore yields
// the straight-line Go code that would perform it.
//
// Example:
//
//	p := emit.NewProgram(emit.DefaultConfig())
//	x, xOut, _ := p.Buffer("x", 3)
//	_ = vec.Assign(xOut, linalg.Smul[shape.Range, int, emit.Expr](emit.Algebra{}, "2", x))
//	src, _ := p.Source()
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"github.com/born-ml/vecalg/internal/shape"
	"github.com/born-ml/vecalg/internal/vec"
)

// ErrInvalidName is returned when a buffer name cannot be a parameter of the
// generated function.
var ErrInvalidName = errors.New("invalid buffer name")

// Config controls the generated function.
type Config struct {
	Package  string // Package clause of the generated file.
	Func     string // Name of the generated function.
	ElemType string // Go element type of every buffer.
}

// DefaultConfig returns a config producing func kernel in package main.
func DefaultConfig() Config {
	return Config{
		Package:  "main",
		Func:     "kernel",
		ElemType: "float64",
	}
}

// Program accumulates the statements written through its buffers.
// A Program is not safe for concurrent use.
type Program struct {
	cfg     Config
	params  []string
	stmts   []Stmt
	numTemp int
}

// NewProgram creates an empty program.
func NewProgram(cfg Config) *Program {
	return &Program{cfg: cfg}
}

// Buffer declares a slice parameter of length n and returns a reader and a
// writer over it.
//
// Returns ErrInvalidName if name is not a Go identifier, is already
// declared, or would clash with the math import or a Let temporary.
// Returns shape.ErrInvalidShape if n is negative.
func (p *Program) Buffer(name string, n int) (vec.Vec[shape.Range, int, Expr], vec.OVec[shape.Range, int, Expr, Stmt], error) {
	if err := p.checkName(name); err != nil {
		return vec.Vec[shape.Range, int, Expr]{}, vec.OVec[shape.Range, int, Expr, Stmt]{}, err
	}
	r, err := shape.NewRange(n)
	if err != nil {
		return vec.Vec[shape.Range, int, Expr]{}, vec.OVec[shape.Range, int, Expr, Stmt]{}, fmt.Errorf("buffer %s: %w", name, err)
	}
	p.params = append(p.params, name)
	in := vec.New(r, func(i int) Expr {
		return Expr(fmt.Sprintf("%s[%d]", name, i))
	})
	out := vec.NewOut(r, func(i int, e Expr) Stmt {
		s := Stmt(fmt.Sprintf("%s[%d] = %s", name, i, e))
		p.stmts = append(p.stmts, s)
		return s
	})
	return in, out, nil
}

func (p *Program) checkName(name string) error {
	switch {
	case !token.IsIdentifier(name) || name == "_":
		return fmt.Errorf("%w: %q is not an identifier", ErrInvalidName, name)
	case name == "math" || isTemp(name):
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	case slices.Contains(p.params, name):
		return fmt.Errorf("%w: %q declared twice", ErrInvalidName, name)
	}
	return nil
}

// isTemp reports whether name has the form of a Let temporary, t0, t1, ...
func isTemp(name string) bool {
	if len(name) < 2 || name[0] != 't' {
		return false
	}
	_, err := strconv.Atoi(name[1:])
	return err == nil
}

// Let binds e to a fresh local variable and returns an expression naming it.
// Use it to evaluate a shared subexpression once.
func (p *Program) Let(e Expr) Expr {
	name := fmt.Sprintf("t%d", p.numTemp)
	p.numTemp++
	p.stmts = append(p.stmts, Stmt(fmt.Sprintf("%s := %s", name, e)))
	return Expr(name)
}

// Statements returns the recorded statements in order.
func (p *Program) Statements() []Stmt {
	return append([]Stmt(nil), p.stmts...)
}

// String renders the program without formatting.
func (p *Program) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", p.cfg.Package)
	if p.usesMath() {
		b.WriteString("import \"math\"\n\n")
	}
	params := make([]string, len(p.params))
	for i, name := range p.params {
		params[i] = name + " []" + p.cfg.ElemType
	}
	fmt.Fprintf(&b, "func %s(%s) {\n", p.cfg.Func, strings.Join(params, ", "))
	for _, s := range p.stmts {
		fmt.Fprintf(&b, "\t%s\n", s)
	}
	b.WriteString("}\n")
	return b.String()
}

// Source renders the program as gofmt-formatted Go source. Buffer names are
// checked when declared; element expressions are only checked for syntax.
func (p *Program) Source() ([]byte, error) {
	src, err := format.Source([]byte(p.String()))
	if err != nil {
		return nil, fmt.Errorf("emit: format generated source: %w", err)
	}
	return bytes.TrimSpace(src), nil
}

func (p *Program) usesMath() bool {
	for _, s := range p.stmts {
		if strings.Contains(string(s), "math.") {
			return true
		}
	}
	return false
}
