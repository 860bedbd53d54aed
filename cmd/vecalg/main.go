// Package main provides the vecalg CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/born-ml/vecalg/internal/algebra"
	"github.com/born-ml/vecalg/internal/backend/emit"
	"github.com/born-ml/vecalg/internal/backend/slice"
	"github.com/born-ml/vecalg/internal/linalg"
	"github.com/born-ml/vecalg/internal/stats"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
			os.Exit(2)
		}
		log.Fatalf("vecalg: %v", err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "vecalg - abstract tensor algebra for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                      Show version")
	fmt.Fprintln(w, "  stats [-sample] x...         Mean, deviation and range of the values")
	fmt.Fprintln(w, "  standardize [-sample] x...   Values rescaled to mean 0, deviation 1")
	fmt.Fprintln(w, "  emit [-sample] n             Go source standardizing a buffer of length n")
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	cfg := stats.DefaultConfig()
	if len(rest) > 0 && rest[0] == "-sample" {
		cfg = stats.SampleConfig()
		rest = rest[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(w, "vecalg %s\n", version)
		return nil
	case "stats":
		data, err := parseFloats(rest)
		if err != nil {
			return err
		}
		return printStats(w, data, cfg)
	case "standardize":
		data, err := parseFloats(rest)
		if err != nil {
			return err
		}
		in, out := slice.Wrap(data)
		if err := stats.Standardize(algebra.Float[float64]{}, out, in, cfg); err != nil {
			return err
		}
		for _, x := range data {
			fmt.Fprintln(w, strconv.FormatFloat(x, 'g', -1, 64))
		}
		return nil
	case "emit":
		if len(rest) != 1 {
			return errUsage
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil || n < 0 {
			return fmt.Errorf("emit: invalid length %q", rest[0])
		}
		p := emit.NewProgram(emit.Config{Package: "main", Func: "standardize", ElemType: "float64"})
		if err := emit.Standardize(p, "x", n, cfg); err != nil {
			return err
		}
		src, err := p.Source()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", src)
		return nil
	default:
		return errUsage
	}
}

func printStats(w io.Writer, data []float64, cfg stats.Config) error {
	f := algebra.Float[float64]{}
	v := slice.Reader(data)

	mean, err := stats.Mean(f, v)
	if err != nil {
		return err
	}
	sd, err := stats.StdDev(f, v, cfg)
	if err != nil {
		return err
	}
	lo, _ := linalg.Min(f, v)
	hi, _ := linalg.Max(f, v)

	fmt.Fprintf(w, "n       %d\n", len(data))
	fmt.Fprintf(w, "mean    %g\n", mean)
	fmt.Fprintf(w, "stddev  %g\n", sd)
	fmt.Fprintf(w, "min     %g\n", lo)
	fmt.Fprintf(w, "max     %g\n", hi)
	return nil
}

func parseFloats(args []string) ([]float64, error) {
	data := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", a, err)
		}
		data[i] = x
	}
	return data, nil
}
