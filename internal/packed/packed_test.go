package packed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func of(idxs ...int) Set {
	var s Set
	for _, idx := range idxs {
		s = s.Add(idx)
	}
	return s
}

func TestSet(t *testing.T) {
	s := of(0, 3, 5)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(4))
	assert.Equal(t, []int{0, 3, 5}, s.Indices())

	s = s.Remove(3).Add(63)
	assert.Equal(t, []int{0, 5, 63}, s.Indices())
	assert.Equal(t, of(5), s.Minus(of(0, 63)))
	assert.Equal(t, of(0, 1, 5, 63), s.Union(of(1)))
	assert.Equal(t, of(5), s.Intersect(of(4, 5)))
	assert.True(t, Set(0).Empty())
	assert.Empty(t, Set(0).Indices())
}

func TestFull(t *testing.T) {
	assert.Equal(t, Set(0), Full(0))
	assert.Equal(t, of(0, 1, 2), Full(3))
	assert.Equal(t, MaxLen, Full(MaxLen).Len())
}

func TestCombinations(t *testing.T) {
	tests := []struct {
		s    Set
		k    int
		want []Set
	}{
		{of(1, 2, 4), 1, []Set{of(1), of(2), of(4)}},
		{of(1, 2, 4), 2, []Set{of(1, 2), of(1, 4), of(2, 4)}},
		{of(1, 2, 4), 3, []Set{of(1, 2, 4)}},
		{of(1, 2, 4), 4, nil},
		{of(1, 2, 4), 0, nil},
		{Set(0), 1, nil},
	}

	for _, test := range tests {
		var got []Set
		Combinations(test.s, test.k, func(sub Set) { got = append(got, sub) })
		assert.Equal(t, test.want, got, "set %v k %d", test.s.Indices(), test.k)
	}
}

func TestCombinationsCount(t *testing.T) {
	// C(6,2) = 15
	n := 0
	Combinations(Full(6), 2, func(sub Set) {
		assert.Equal(t, 2, sub.Len())
		n++
	})
	assert.Equal(t, 15, n)
}
