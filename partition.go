// Partition iterator: given a subset mask and one fully-instantiated split
// parameter (a letter, and where applicable a slot), computes the (Yes, No)
// bipartition it induces.
//
// These are the innermost hot loops of the solver (every split candidate at
// every node calls exactly one of these), so they are written as flat
// bit-scans over the dense word list rather than through word.Mask.ForEach
// closures, mirroring lvlath/tsp's dense-buffer discipline in its DP/BnB
// inner loops (tsp/exact.go, tsp/bb.go).
package anatree

import (
	"math/bits"

	"github.com/anatree-go/anatree/word"
)

// partitionContains splits mask by whether each word contains letter p.
func partitionContains(words []word.Word, mask word.Mask, p int8) (yes, no word.Mask) {
	bit := uint32(1) << uint(p)
	m := uint32(mask)
	for m != 0 {
		i := bits.TrailingZeros32(m)
		if uint32(words[i].Mask26)&bit != 0 {
			yes |= word.Single(i)
		} else {
			no |= word.Single(i)
		}
		m &= m - 1
	}

	return yes, no
}

// partitionPositional splits mask by whether each word has letter p at slot.
// Words too short to have slot fall to the No side.
func partitionPositional(words []word.Word, mask word.Mask, slot word.Slot, p int8) (yes, no word.Mask) {
	m := uint32(mask)
	for m != 0 {
		i := bits.TrailingZeros32(m)
		if li, ok := words[i].AtSlot(slot); ok && li == p {
			yes |= word.Single(i)
		} else {
			no |= word.Single(i)
		}
		m &= m - 1
	}

	return yes, no
}

// partitionDouble splits mask by whether each word doubles letter p.
func partitionDouble(words []word.Word, mask word.Mask, p int8) (yes, no word.Mask) {
	bit := uint32(1) << uint(p)
	m := uint32(mask)
	for m != 0 {
		i := bits.TrailingZeros32(m)
		if uint32(words[i].Doubled26)&bit != 0 {
			yes |= word.Single(i)
		} else {
			no |= word.Single(i)
		}
		m &= m - 1
	}

	return yes, no
}

// partitionTriple splits mask by whether each word triples letter p.
func partitionTriple(words []word.Word, mask word.Mask, p int8) (yes, no word.Mask) {
	bit := uint32(1) << uint(p)
	m := uint32(mask)
	for m != 0 {
		i := bits.TrailingZeros32(m)
		if uint32(words[i].Tripled26)&bit != 0 {
			yes |= word.Single(i)
		} else {
			no |= word.Single(i)
		}
		m &= m - 1
	}

	return yes, no
}
