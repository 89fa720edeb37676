package word

import "math/bits"

// LetterSet is a 26-bit set of letters ('a'=bit0 .. 'z'=bit25). It is the
// representation shared by Word.Mask26/Doubled26/Tripled26 and by the split
// catalogue's forbidden/touched-letter bookkeeping.
type LetterSet uint32

// LetterBit returns the singleton LetterSet for letter index li (0..25).
func LetterBit(li int8) LetterSet { return LetterSet(1) << uint(li) }

// Has reports whether li belongs to s.
func (s LetterSet) Has(li int8) bool { return s&LetterBit(li) != 0 }

// With returns s with li added.
func (s LetterSet) With(li int8) LetterSet { return s | LetterBit(li) }

// Count returns the number of letters in s.
func (s LetterSet) Count() int { return bits.OnesCount32(uint32(s)) }

// ForEach calls fn once per letter index present in s, ascending, without
// allocating.
func (s LetterSet) ForEach(fn func(li int8)) {
	x := uint32(s)
	for x != 0 {
		li := bits.TrailingZeros32(x)
		fn(int8(li))
		x &= x - 1
	}
}

// ContainLetters returns the union of Mask26 across the words selected by m.
func ContainLetters(words []Word, m Mask) LetterSet {
	var s LetterSet
	m.ForEach(func(i int) { s |= LetterSet(words[i].Mask26) })

	return s
}

// DoubledLetters returns the union of Doubled26 across the words selected by m.
func DoubledLetters(words []Word, m Mask) LetterSet {
	var s LetterSet
	m.ForEach(func(i int) { s |= LetterSet(words[i].Doubled26) })

	return s
}

// TripledLetters returns the union of Tripled26 across the words selected by m.
func TripledLetters(words []Word, m Mask) LetterSet {
	var s LetterSet
	m.ForEach(func(i int) { s |= LetterSet(words[i].Tripled26) })

	return s
}

// SlotLetters returns the set of letters occupying slot across the words
// selected by m (words too short for slot contribute nothing).
func SlotLetters(words []Word, m Mask, slot Slot) LetterSet {
	var s LetterSet
	m.ForEach(func(i int) {
		if li, ok := words[i].AtSlot(slot); ok {
			s = s.With(li)
		}
	})

	return s
}

// allLetters is the universe of 26 letters, used as the identity element
// when intersecting (AND-ing) over a mask.
const allLetters LetterSet = (1 << 26) - 1

// CommonLetters returns the intersection of Mask26 across the words
// selected by m: the letters every word in m contains. Returns allLetters
// if m is empty (identity element for intersection).
func CommonLetters(words []Word, m Mask) LetterSet {
	s := allLetters
	m.ForEach(func(i int) { s &= LetterSet(words[i].Mask26) })

	return s
}

// CommonDoubled returns the intersection of Doubled26 across the words
// selected by m: the letters every word in m doubles.
func CommonDoubled(words []Word, m Mask) LetterSet {
	s := allLetters
	m.ForEach(func(i int) { s &= LetterSet(words[i].Doubled26) })

	return s
}

// CommonTripled returns the intersection of Tripled26 across the words
// selected by m: the letters every word in m triples.
func CommonTripled(words []Word, m Mask) LetterSet {
	s := allLetters
	m.ForEach(func(i int) { s &= LetterSet(words[i].Tripled26) })

	return s
}

// CommonSlotLetter reports the single letter shared by every word in m at
// slot, with ok=false if m is empty, any word in m is too short for slot,
// or the words disagree on the letter.
func CommonSlotLetter(words []Word, m Mask, slot Slot) (li int8, ok bool) {
	first := true
	agree := true
	var common int8
	m.ForEach(func(i int) {
		li, hasSlot := words[i].AtSlot(slot)
		if !hasSlot {
			agree = false
			return
		}
		if first {
			common = li
			first = false
		} else if li != common {
			agree = false
		}
	})
	if first || !agree {
		return 0, false
	}

	return common, true
}
