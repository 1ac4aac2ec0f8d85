package tensor

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// SparseMap is a flat-index to value mapping where absent keys denote the
// zero value. It never holds an entry equal to zero: every mutating path
// prunes such entries.
//
// Keys are tracked in a roaring bitmap so nonzero iteration is ordered and
// does not depend on map iteration order.
type SparseMap[T DType] struct {
	n      int
	values map[int]T
	keys   *roaring64.Bitmap
}

// NewSparse creates an empty sparse provider of logical length n.
func NewSparse[T DType](n int) *SparseMap[T] {
	return &SparseMap[T]{
		n:      n,
		values: make(map[int]T),
		keys:   roaring64.New(),
	}
}

// Kind returns Sparse.
func (m *SparseMap[T]) Kind() StorageKind { return Sparse }

// Len returns the logical number of elements.
func (m *SparseMap[T]) Len() int { return m.n }

// Get returns the value at i, or zero if absent.
func (m *SparseMap[T]) Get(i int) T {
	return m.values[i]
}

// Set stores v at i. Storing zero removes the entry.
func (m *SparseMap[T]) Set(i int, v T) {
	var zero T
	if v == zero {
		if _, ok := m.values[i]; ok {
			delete(m.values, i)
			m.keys.Remove(uint64(i)) //nolint:gosec // G115: flat indices are non-negative.
		}
		return
	}
	if _, ok := m.values[i]; !ok {
		m.keys.Add(uint64(i)) //nolint:gosec // G115: flat indices are non-negative.
	}
	m.values[i] = v
}

// Count returns the number of stored (nonzero) entries.
func (m *SparseMap[T]) Count() int {
	return len(m.values)
}

// Clone returns a deep copy.
func (m *SparseMap[T]) Clone() Provider[T] {
	values := make(map[int]T, len(m.values))
	for k, v := range m.values {
		values[k] = v
	}
	return &SparseMap[T]{n: m.n, values: values, keys: m.keys.Clone()}
}

// NonZeros iterates stored entries in ascending index order.
func (m *SparseMap[T]) NonZeros() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := m.keys.Iterator()
		for it.HasNext() {
			k := int(it.Next()) //nolint:gosec // G115: keys were added from ints.
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Resize changes the logical length, dropping entries beyond it.
func (m *SparseMap[T]) Resize(n int) {
	if n < m.n {
		for k := range m.values {
			if k >= n {
				delete(m.values, k)
			}
		}
		m.keys.RemoveRange(uint64(n), uint64(m.n)) //nolint:gosec // G115: lengths are non-negative.
	}
	m.n = n
}
