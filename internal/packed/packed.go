// Package packed provides a memory efficient representation of agent sets.
package packed

import "math/bits"

// MaxLen is the maximum number of distinct indices a Set can hold.
const MaxLen = 64

// Set is a compressed representation of a set of roster indices.
type Set uint64

// Full returns the set of indices 0..n-1.
func Full(n int) Set {
	if n >= MaxLen {
		return ^Set(0)
	}
	return Set(1)<<n - 1
}

// Add returns s with idx added.
func (s Set) Add(idx int) Set { return s | 1<<idx }

// Remove returns s with idx removed.
func (s Set) Remove(idx int) Set { return s &^ (1 << idx) }

// Has reports whether idx is in s.
func (s Set) Has(idx int) bool { return s&(1<<idx) != 0 }

// Len returns the number of indices in s.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Minus returns s \ o.
func (s Set) Minus(o Set) Set { return s &^ o }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return s & o }

// Indices returns the members of s in ascending order.
func (s Set) Indices() []int {
	idxs := make([]int, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		idxs = append(idxs, bits.TrailingZeros64(v))
	}
	return idxs
}

// Combinations calls fn for every k element subset of s.
// Subsets are produced in lexicographic order of their ascending indices.
func Combinations(s Set, k int, fn func(Set)) {
	idxs := s.Indices()
	if k <= 0 || k > len(idxs) {
		return
	}

	pos := make([]int, k) // positions into idxs
	for i := range pos {
		pos[i] = i
	}
	for {
		var sub Set
		for _, p := range pos {
			sub = sub.Add(idxs[p])
		}
		fn(sub)

		// advance the rightmost position that still has room
		i := k - 1
		for i >= 0 && pos[i] == len(idxs)-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pos[i]++
		for j := i + 1; j < k; j++ {
			pos[j] = pos[j-1] + 1
		}
	}
}
