// Package eval materializes lazy tensor expressions into concrete tensors.
package eval

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/born-ml/texpr/internal/index"
	"github.com/born-ml/texpr/internal/parallel"
	"github.com/born-ml/texpr/internal/tensor"
)

// Strategy names how a source was traversed.
type Strategy string

// Traversal strategies.
const (
	StrategyNonZero Strategy = "nonzero-iteration"
	StrategyScan    Strategy = "full-scan"
)

// Eval materializes e into a new tensor. dense selects dense storage
// (static or dynamic following the shape); otherwise the result is sparse
// and holds only nonzero entries.
//
// Example:
//
//	id := eval.Eval[float64](lazy.Eye[float64](10, 20000), false)
//	id.CountNonZero() // 10
func Eval[T tensor.DType](e tensor.Expr[T], dense bool, opts ...Option) *tensor.Tensor[T] {
	shape := e.Shape()
	dst := tensor.New[T](shape, dense)
	Into(dst, e, opts...)
	return dst
}

// Dense materializes e into dense storage.
func Dense[T tensor.DType](e tensor.Expr[T], opts ...Option) *tensor.Tensor[T] {
	return Eval(e, true, opts...)
}

// Sparse materializes e into sparse storage.
func Sparse[T tensor.DType](e tensor.Expr[T], opts ...Option) *tensor.Tensor[T] {
	return Eval(e, false, opts...)
}

// Into overwrites dst with the values of src, keeping dst's storage kind.
// src may read from dst: values are written to fresh storage that replaces
// dst's only once filling is complete.
//
// Sources with nonzero iteration are traversed through it; all others are
// scanned position by position. Sparse targets never store zeros.
//
// Panics if the shapes differ.
func Into[T tensor.DType](dst *tensor.Tensor[T], src tensor.Expr[T], opts ...Option) Strategy {
	o := buildOptions(opts)
	if !dst.Shape().Equal(src.Shape()) {
		panic(fmt.Sprintf("eval: shape mismatch %v vs %v", dst.Shape(), src.Shape()))
	}

	n := dst.NumElements()
	p := tensor.NewProvider[T](dst.Storage(), n)
	strategy := StrategyScan
	if seq, ok := tensor.NonZerosOf(src); ok {
		strategy = StrategyNonZero
		for i, v := range seq {
			p.Set(i, v)
		}
	} else if data := tensor.DenseData(p); data != nil {
		fillDense(src, data, o.Parallel)
	} else {
		tensor.Walk(src, func(i int, v T) bool {
			p.Set(i, v)
			return true
		})
	}
	dst.SetProvider(p)

	if o.Logger.Enabled(context.Background(), slog.LevelDebug) {
		o.Logger.WithOp("eval").WithShape(dst.Shape().String(), n).Debug("materialized",
			"storage", dst.Storage().String(),
			"strategy", string(strategy),
			"nonzeros", dst.CountNonZero(),
		)
	}
	return strategy
}

// All evaluates independent expressions concurrently and returns the
// results in input order. Evaluation stops early when ctx is canceled.
func All[T tensor.DType](ctx context.Context, exprs []tensor.Expr[T], dense bool, opts ...Option) ([]*tensor.Tensor[T], error) {
	o := buildOptions(opts)
	results := make([]*tensor.Tensor[T], len(exprs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, e := range exprs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("eval: expression %d: %w", i, err)
			}
			results[i] = Eval(e, dense, opts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fillDense writes every element of src into data, chunked across
// goroutines when cfg allows. Subscript-only sources advance a subscript
// per chunk instead of converting every flat index.
func fillDense[T tensor.DType](src tensor.Expr[T], data []T, cfg parallel.Config) {
	shape := src.Shape()
	if src.Access().Has(tensor.ByIndex) {
		r := src.(tensor.IndexReader[T])
		parallel.ForChunks(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = r.AtIndex(i)
			}
		}, cfg)
		return
	}
	r := src.(tensor.SubscriptReader[T])
	dims := shape.Dims()
	parallel.ForChunks(len(data), func(start, end int) {
		sub := make([]int, len(dims))
		shape.Unravel(start, sub)
		for i := start; i < end; i++ {
			data[i] = r.AtSubscript(sub)
			index.Next(dims, sub)
		}
	}, cfg)
}
