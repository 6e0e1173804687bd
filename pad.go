package hashtree

import (
	"github.com/bits-and-blooms/bitset"
)

// Pad returns items extended by copies of the last item,
// until the length is a power of two and at least two.
// The returned bitset has a bit set for every appended position.
//
// The items slice itself is not modified,
// but the returned slice shares the item byte slices with it.
// Pad panics if items is empty.
func Pad(items [][]byte) ([][]byte, *bitset.BitSet) {
	if len(items) == 0 {
		panic(ErrEmptyInput)
	}

	n := paddedLen(len(items))

	out := make([][]byte, n)
	copy(out, items)

	padding := bitset.New(uint(n))
	last := items[len(items)-1]
	for i := len(items); i < n; i++ {
		out[i] = last
		padding.Set(uint(i))
	}

	return out, padding
}

// paddedLen is the smallest power of two that is at least max(n, 2).
func paddedLen(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}
