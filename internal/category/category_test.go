package category

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeObject struct{}

func (fakeObject) ObjectKind() string { return "fake" }

// objectSlice is both a slice and an Object; Object must win.
type objectSlice []int

func (objectSlice) ObjectKind() string { return "objslice" }

func TestOf(t *testing.T) {
	arr := [3]int{1, 2, 3}
	tests := []struct {
		name string
		v    any
		want Tag
	}{
		{"nil", nil, Other},
		{"object", fakeObject{}, Object},
		{"object wins over slice", objectSlice{1}, Object},
		{"int", 3, Integral},
		{"uint8", uint8(3), Integral},
		{"int64", int64(-1), Integral},
		{"float32", float32(1.5), FloatingPoint},
		{"float64", 2.5, FloatingPoint},
		{"complex is other", complex(1, 2), Other},
		{"string", "x", Other},
		{"slice", []float64{1}, StdContainer},
		{"array", arr, StdContainer},
		{"array pointer", &arr, StdContainer},
		{"deque", list.New(), StdContainer},
		{"pair", MakePair(1, "a"), TupleLike},
		{"struct", struct{ A int }{1}, Other},
		{"map", map[int]int{}, Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.v))
		})
	}
}

func TestContainerOf(t *testing.T) {
	arr := [2]float64{}
	assert.Equal(t, Array, ContainerOf(arr))
	assert.Equal(t, ArrayPointer, ContainerOf(&arr))
	assert.Equal(t, Slice, ContainerOf([]int{}))
	assert.Equal(t, Deque, ContainerOf(list.New()))
	assert.Equal(t, NotContainer, ContainerOf(1))
	assert.Equal(t, NotContainer, ContainerOf(objectSlice{}))
	assert.Equal(t, NotContainer, ContainerOf(nil))
}

func TestFor(t *testing.T) {
	assert.Equal(t, Integral, For[int32]())
	assert.Equal(t, FloatingPoint, For[float64]())
	assert.Equal(t, Object, For[fakeObject]())
	assert.Equal(t, StdContainer, For[[]string]())
	assert.Equal(t, TupleLike, For[Pair[int, int]]())
	assert.Equal(t, Other, For[string]())
}

func TestKindedTagsObject(t *testing.T) {
	var k Kinded = objectSlice{1, 2}
	assert.Equal(t, Object, Of(k))
	assert.Equal(t, Object, For[objectSlice]())
	assert.Equal(t, Object, For[Kinded]())
	assert.Equal(t, StdContainer, For[[]int]())
}

func TestPair(t *testing.T) {
	p := MakePair(1, "b")
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, p.Elem(0))
	assert.Equal(t, "b", p.Elem(1))
	assert.Panics(t, func() { p.Elem(2) })
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "integral", Integral.String())
	assert.Equal(t, "floating", FloatingPoint.String())
	assert.Equal(t, "container", StdContainer.String())
	assert.Equal(t, "tuple", TupleLike.String())
	assert.Equal(t, "other", Other.String())
	assert.Equal(t, "deque", Deque.String())
}
