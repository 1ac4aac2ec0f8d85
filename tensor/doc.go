// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides lazily evaluated tensor expressions.
//
// # Overview
//
// A tensor is a Shape bound to storage. Three storage kinds exist:
//   - dense-static: a fixed block, chosen for dense tensors whose extents are all static
//   - dense-dynamic: a resizable block, chosen for dense tensors with any dynamic extent
//   - sparse: a map of nonzero entries keyed by flat index; zeros are never stored
//
// Operations such as Add, MatMul, Permute, Eye or Meshgrid return
// zero-storage expressions. Elements are computed when read; Eval writes
// every element (or, when the expression can enumerate them, every nonzero)
// into new storage.
//
// # Basic Usage
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Static(2, 2), true)
//	id := tensor.Eye[float64](2, 2)
//
//	y := tensor.MatMul[float64](a, id) // lazy, nothing computed yet
//	out := tensor.Dense[float64](y)    // materialized, equals a
//
//	s := tensor.Sparse[float64](tensor.Eye[float64](10, 20000))
//	s.CountNonZero() // 10
//
// # Aliasing
//
// Expressions hold their inputs by reference. Writes to a tensor are
// visible through every expression built over it. Use Own to build over a
// private copy instead.
//
// # Errors
//
// Operand shape mismatches, repeated permutation axes and out-of-range
// subscripts are programming errors and panic. Recoverable conditions
// (decoding, symbolic invocation) return errors.
package tensor
