package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/texpr/internal/cexpr"
	"github.com/born-ml/texpr/internal/dispatch"
	"github.com/born-ml/texpr/internal/eval"
	"github.com/born-ml/texpr/internal/lazy"
	"github.com/born-ml/texpr/internal/tensor"
)

func vector(t *testing.T, values ...float64) *tensor.Tensor[float64] {
	t.Helper()
	v, err := tensor.FromSlice(values, tensor.Static(len(values)), true)
	require.NoError(t, err)
	return v
}

func materialize(t *testing.T, v any) []float64 {
	t.Helper()
	e, ok := v.(tensor.Expr[float64])
	require.Truef(t, ok, "got %T", v)
	return eval.Dense(e).Data()
}

func TestScalarArithmetic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b any) (any, error)
		a, b any
		want any
	}{
		{"int add", Add, 2, 3, 5},
		{"int8 wraps", Add, int8(100), int8(100), int8(-56)},
		{"int div truncates", Div, 7, 2, 3},
		{"mixed promotes to float64", Add, 1, 2.5, 3.5},
		{"float32 keeps type", Mul, float32(1.5), float32(2), float32(3)},
		{"signed and unsigned", Mul, uint8(3), 2, int64(6)},
		{"uint64", Sub, uint64(10), uint64(4), uint64(6)},
		{"complex", Add, complex(1, 1), 1, complex(2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScalarErrors(t *testing.T) {
	_, err := Div(1, 0)
	assert.ErrorIs(t, err, dispatch.ErrOperand)
	_, err = Add("a", 1)
	assert.ErrorIs(t, err, dispatch.ErrOperand)
	_, err = Add([]int{1}, 2)
	assert.ErrorIs(t, err, dispatch.ErrUnresolved)
	_, err = MatMul(2, 3)
	assert.ErrorIs(t, err, dispatch.ErrUnresolved)
}

func TestScalarNeg(t *testing.T) {
	got, err := Neg(3)
	require.NoError(t, err)
	assert.Equal(t, -3, got)
	got, err = Neg(uint8(1))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), got)
	_, err = Neg(true)
	assert.ErrorIs(t, err, dispatch.ErrOperand)
}

func TestTensorWithScalar(t *testing.T) {
	v := vector(t, 1, 2, 3)

	got, err := Add(v, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, materialize(t, got))

	got, err = Sub(10, v)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8, 7}, materialize(t, got))

	got, err = Mul(v, float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, materialize(t, got))

	_, err = Add(v, "x")
	assert.ErrorIs(t, err, dispatch.ErrOperand)
	_, err = Add(v, complex(1, 1))
	assert.ErrorIs(t, err, dispatch.ErrOperand)
}

func TestIntegerTensorScalarMustBeExact(t *testing.T) {
	ints, err := tensor.FromSlice([]int{1, 2, 3}, tensor.Static(3), true)
	require.NoError(t, err)

	got, err := Add(ints, 2.0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, eval.Dense(got.(tensor.Expr[int])).Data())

	small := tensor.Zeros[uint8](tensor.Static(2))
	got, err = Add(small, int64(255))
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 255}, eval.Dense(got.(tensor.Expr[uint8])).Data())

	tests := []struct {
		name    string
		operand any
		scalar  any
	}{
		{"fraction", ints, 2.5},
		{"nan", ints, math.NaN()},
		{"inf", ints, math.Inf(-1)},
		{"too large float", ints, 1e300},
		{"negative into unsigned", small, -1},
		{"overflow", small, 256},
		{"unsigned overflow", small, uint64(1 << 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(tt.operand, tt.scalar)
			assert.ErrorIs(t, err, dispatch.ErrOperand)
		})
	}
}

func TestTensorWithTensor(t *testing.T) {
	a, b := vector(t, 1, 2), vector(t, 3, 4)
	got, err := Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0 / 3, 0.5}, materialize(t, got))

	ints := tensor.Zeros[int](tensor.Static(2))
	_, err = Add(a, ints)
	assert.ErrorIs(t, err, dispatch.ErrOperand)
}

func TestComplexTensorLiftsRealScalar(t *testing.T) {
	z, err := tensor.FromSlice([]complex128{1 + 1i, 2}, tensor.Static(2), true)
	require.NoError(t, err)
	got, err := Mul(z, 2)
	require.NoError(t, err)
	e := got.(tensor.Expr[complex128])
	assert.Equal(t, []complex128{2 + 2i, 4}, eval.Dense(e).Data())
}

func TestMatMulAndNeg(t *testing.T) {
	v := vector(t, 1, 2, 3, 4, 5, 6, 7, 8)
	negEye, err := Neg(lazy.Eye[float64](8, 8))
	require.NoError(t, err)
	got, err := MatMul(negEye, v)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -2, -3, -4, -5, -6, -7, -8}, materialize(t, got))

	_, err = MatMul(v, 2)
	assert.ErrorIs(t, err, dispatch.ErrOperand)
}

func TestPermuteSumEval(t *testing.T) {
	x, err := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Static(2, 3), true)
	require.NoError(t, err)

	p, err := Permute(x, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, p.(tensor.Expr[int]).Shape().Dims())

	s, err := Sum(p)
	require.NoError(t, err)
	assert.Equal(t, 21, s)

	out, err := Eval(p, false)
	require.NoError(t, err)
	tt := out.(*tensor.Tensor[int])
	assert.True(t, tt.IsSparse())
	assert.Equal(t, 4, tt.At(0, 1))

	_, err = Sum(42)
	assert.ErrorIs(t, err, dispatch.ErrOperand)
}

func TestSymbolicOperandsDefer(t *testing.T) {
	x := vector(t, 1, 2)

	n, err := Add(x, cexpr.P0)
	require.NoError(t, err)
	assert.True(t, cexpr.IsExpr(n))

	s, err := Sum(cexpr.P0)
	require.NoError(t, err)
	require.True(t, cexpr.IsExpr(s))
	got, err := s.(cexpr.Node).Invoke(x)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	neg, err := Neg(cexpr.P0)
	require.NoError(t, err)
	got, err = neg.(cexpr.Node).Invoke(4)
	require.NoError(t, err)
	assert.Equal(t, -4, got)
}

func TestSymbolicFormulaMatchesDirect(t *testing.T) {
	build := func(a any) any {
		left, err := Add(a, cexpr.P0)
		require.NoError(t, err)
		inner, err := Sub(a, cexpr.P1)
		require.NoError(t, err)
		right, err := Mul(2, inner)
		require.NoError(t, err)
		f, err := Sub(left, right)
		require.NoError(t, err)
		return f
	}

	for _, a := range []*tensor.Tensor[float64]{
		vector(t, 0),
		vector(t, 1, -2, 3.5),
		eval.Dense[float64](lazy.Eye[float64](3, 3)),
	} {
		f := build(a)
		require.True(t, cexpr.IsExpr(f))

		got, err := f.(cexpr.Node).Invoke(1, 2)
		require.NoError(t, err)

		direct := lazy.Sub[float64](
			lazy.AddScalar[float64](a, 1),
			lazy.MulScalar[float64](lazy.SubScalar[float64](a, 2), 2),
		)
		assert.True(t, eval.Equal[float64](direct, got.(tensor.Expr[float64])))
	}
}

func TestRegisterIntoFreshRegistry(t *testing.T) {
	r := dispatch.NewRegistry()
	Register(r)
	_, ok := r.Resolve(dispatch.Add, Tensor, CExpr)
	assert.True(t, ok)
	_, ok = r.Resolve(dispatch.MatMul, dispatch.Integral, dispatch.Integral)
	assert.False(t, ok)
	assert.Contains(t, r.Signatures(dispatch.Add), "tensor + cexpr")
}
