// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"context"

	"github.com/born-ml/texpr/internal/eval"
	"github.com/born-ml/texpr/internal/parallel"
)

// Option configures evaluation.
type Option = eval.Option

// ParallelConfig controls chunked parallel filling of dense targets.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a configuration using every CPU.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// WithLogger sets the logger used for debug output.
func WithLogger(l *Logger) Option { return eval.WithLogger(l) }

// WithParallel enables parallel dense filling.
func WithParallel(cfg ParallelConfig) Option { return eval.WithParallel(cfg) }

// WithWorkers limits how many expressions EvalAll evaluates at once.
func WithWorkers(n int) Option { return eval.WithWorkers(n) }

// Eval materializes e. dense selects dense storage (static or dynamic,
// following the shape); otherwise the result is sparse.
func Eval[T DType](e Expr[T], dense bool, opts ...Option) *Tensor[T] {
	return eval.Eval(e, dense, opts...)
}

// Dense materializes e into dense storage.
func Dense[T DType](e Expr[T], opts ...Option) *Tensor[T] { return eval.Dense(e, opts...) }

// Sparse materializes e into sparse storage.
func Sparse[T DType](e Expr[T], opts ...Option) *Tensor[T] { return eval.Sparse(e, opts...) }

// Assign overwrites dst with src, keeping dst's storage kind. src may read
// dst. Panics if the shapes differ.
func Assign[T DType](dst *Tensor[T], src Expr[T], opts ...Option) {
	eval.Into(dst, src, opts...)
}

// EvalAll materializes independent expressions concurrently.
func EvalAll[T DType](ctx context.Context, exprs []Expr[T], dense bool, opts ...Option) ([]*Tensor[T], error) {
	return eval.All(ctx, exprs, dense, opts...)
}

// Equal reports whether a and b have equal shapes and elements.
func Equal[T DType](a, b Expr[T]) bool { return eval.Equal(a, b) }

// AllClose reports whether a and b have equal shapes and elements within tol.
func AllClose[T Float](a, b Expr[T], tol float64) bool { return eval.AllClose(a, b, tol) }
