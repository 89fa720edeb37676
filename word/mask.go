package word

import "math/bits"

// Mask is a bitmask over the original input word list: bit i set means word
// i belongs to the subset. At most 32 words are supported per solve call
// (MaxWords), matching lvlath/tsp's dense-buffer style of trading a hard
// size cap for allocation-free hot loops.
type Mask uint32

// MaxWords is the largest word-list size the solver accepts; a Mask has one
// bit per word.
const MaxWords = 32

// Single returns the mask containing only word i.
func Single(i int) Mask { return Mask(1) << uint(i) }

// Full returns the mask containing words 0..n-1.
func Full(n int) Mask {
	if n <= 0 {
		return 0
	}
	if n >= MaxWords {
		return Mask(^uint32(0))
	}

	return Mask(1)<<uint(n) - 1
}

// Has reports whether word i belongs to m.
func (m Mask) Has(i int) bool { return m&Single(i) != 0 }

// Count returns the number of words in m.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Empty reports whether m contains no words.
func (m Mask) Empty() bool { return m == 0 }

// Singleton returns the sole word index in m and ok=true iff m has exactly
// one bit set.
func (m Mask) Singleton() (idx int, ok bool) {
	if bits.OnesCount32(uint32(m)) != 1 {
		return 0, false
	}

	return bits.TrailingZeros32(uint32(m)), true
}

// Without returns m with word i removed.
func (m Mask) Without(i int) Mask { return m &^ Single(i) }

// ForEach calls fn once per word index in m, in ascending order, without
// allocating. This is the per-step-allocation-free iteration primitive the
// partition iterator and solver rely on.
func (m Mask) ForEach(fn func(i int)) {
	x := uint32(m)
	for x != 0 {
		i := bits.TrailingZeros32(x)
		fn(i)
		x &= x - 1
	}
}

// Intersects reports whether m and other share any word.
func (m Mask) Intersects(other Mask) bool { return m&other != 0 }
