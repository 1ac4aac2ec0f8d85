// Package index provides integer-sequence arithmetic used for shapes, ranks,
// axis permutations and subscript conversion.
package index

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a product of extents does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// Seq is an ordered sequence of integers.
type Seq []int

// Iota returns the sequence 0, 1, ..., n-1.
func Iota(n int) Seq {
	s := make(Seq, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Of builds a sequence from its arguments.
func Of(values ...int) Seq {
	return append(Seq(nil), values...)
}

// Product returns the product of all values. The empty product is 1.
func (s Seq) Product() int {
	p := 1
	for _, v := range s {
		p *= v
	}
	return p
}

// CheckedProduct returns the product of all values, or ErrOverflow.
func (s Seq) CheckedProduct() (int, error) {
	p := 1
	for _, v := range s {
		if v != 0 && p > math.MaxInt/absInt(v) {
			return 0, fmt.Errorf("product of %v: %w", []int(s), ErrOverflow)
		}
		p *= v
	}
	return p, nil
}

// Reverse returns a reversed copy.
func (s Seq) Reverse() Seq {
	r := make(Seq, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}

// Clone returns a copy of the sequence.
func (s Seq) Clone() Seq {
	return append(Seq(nil), s...)
}

// IsPermutation reports whether s is a permutation of 0..len(s)-1.
func (s Seq) IsPermutation() bool {
	seen := make([]bool, len(s))
	for _, v := range s {
		if v < 0 || v >= len(s) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inverse returns the inverse permutation: Inverse()[s[i]] == i.
// Panics if s is not a permutation.
func (s Seq) Inverse() Seq {
	if !s.IsPermutation() {
		panic(fmt.Sprintf("index: %v is not a permutation", []int(s)))
	}
	inv := make(Seq, len(s))
	for i, v := range s {
		inv[v] = i
	}
	return inv
}

// Ravel converts a row-major subscript into a flat index. Bounds are not checked.
func Ravel(dims, sub []int) int {
	flat := 0
	for i, d := range dims {
		flat = flat*d + sub[i]
	}
	return flat
}

// Next advances sub to the next row-major subscript within dims and reports
// whether it did not wrap around.
func Next(dims, sub []int) bool {
	for i := len(dims) - 1; i >= 0; i-- {
		sub[i]++
		if sub[i] < dims[i] {
			return true
		}
		sub[i] = 0
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
