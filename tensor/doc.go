// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API of vecalg: numeric code written once
// against an abstract tensor and run against any storage.
//
// # Overview
//
// A tensor here is not a buffer. It is a shape paired with a getter
// (Vec) or a setter (OVec):
//   - Shape[I]: a finite, ordered index domain (Range, Grid, Product)
//   - Vec[S, I, E]: read-only, a function from indices of S to elements E
//   - OVec[S, I, E, W]: write-only, accepts (index, element) and returns a
//     write outcome W
//   - Morphism: a re-indexing between two shapes, applied without moving data
//
// Combinators (Map, Zip, Reduce, Const) build new lazy vectors; Assign is
// the only operation that writes.
//
// # Basic Usage
//
//	data := []float64{1, 2, 3}
//	in, out := tensor.FromSlice(data)
//
//	f := tensor.Float64{}
//	mean, _ := tensor.Mean(f, in)             // 2
//	_ = tensor.Standardize(f, out, in)        // data is now mean 0, stddev 1
//
// # Element Algebras
//
// The core never does arithmetic itself. Operations that need it take an
// algebra argument:
//   - Float[F]: float32 and float64
//   - Rat: exact rationals over math/big
//
// Any type implementing Ring, Field or Real can be used, including
// symbolic ones that build expressions instead of values.
//
// # Ordering
//
// Every shape enumerates its indices in one canonical order: for grids and
// products the last axis varies fastest. Reduce folds and Assign writes in
// that order, so results are deterministic for non-associative element
// operations.
//
// # Reshaping
//
// Flatten, Reshape and Transpose return morphisms. Transport views a Vec
// through one; TransportOut views an OVec through an invertible one:
//
//	g := tensor.MustGrid(2, 3)
//	a, _, _ := tensor.FromGrid(data6, g)
//	tr, _ := tensor.Transpose(g)
//	at, _ := tensor.Transport(a, tr)          // 3x2, same storage
package tensor
