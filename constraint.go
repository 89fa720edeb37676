// Constraint state and propagation: the touched-letter forbidding, the
// single-letter "immediate child only" exception, and the same-index guard
// for chained positional splits.
package anatree

import "github.com/anatree-go/anatree/word"

// splitClass is the ordered tier of a split: Contains < Positional <
// DoubleTriple. Chain exceptions may only move to the same class or a
// numerically larger one ("same-class-or-downward").
type splitClass int8

const (
	classContains splitClass = iota
	classPositional
	classDoubleTriple
)

// noLetter marks the absence of a once-allowed primary letter.
const noLetter int8 = -1

// constraints is the immutable, per-sub-problem constraint state propagated
// downward through recursion. It is small and copied by value.
//
// allowedLetter/allowedClass/allowedSlot/hasSlot together carry a single
// letter the *immediate child only* may still use as a primary (despite
// being forbidden), together with the parent class it must match-or-exceed
// and, when the parent was positional, the parent's slot for the
// same-index guard.
type constraints struct {
	forbidden word.LetterSet

	allowedLetter int8 // noLetter if no exception is in effect
	allowedClass  splitClass
	allowedSlot   word.Slot
	hasSlot       bool
}

// rootConstraints is the empty constraint state a solve call starts from.
var rootConstraints = constraints{allowedLetter: noLetter}

// exceptionApplies reports whether primary li may be used despite being
// forbidden, for a candidate split of class cls: the letter must match the
// once-allowed exception and the candidate's class must be the same as or
// stricter than the one that granted it. The same-index guard for chained
// positional splits is checked separately by sameIndexGuardHolds.
func (cs constraints) exceptionApplies(li int8, cls splitClass) bool {
	if cs.allowedLetter == noLetter || cs.allowedLetter != li {
		return false
	}

	return cls >= cs.allowedClass
}

// sameIndexGuardHolds reports whether a chained positional exception stays
// legal: when the candidate is positional and the parent that granted the
// exception was also positional (hasSlot), the two slots must not resolve
// to the same absolute index in any word of mask.
func sameIndexGuardHolds(words []word.Word, mask word.Mask, cs constraints, candidateSlot word.Slot, isPositional bool) bool {
	if !isPositional || !cs.hasSlot {
		return true
	}
	ok := true
	mask.ForEach(func(i int) {
		w := words[i]
		pi, pOK := absoluteIndex(cs.allowedSlot, w.Len)
		ci, cOK := absoluteIndex(candidateSlot, w.Len)
		if pOK && cOK && pi == ci {
			ok = false
		}
	})

	return ok
}

// absoluteIndex returns the 0-based character index slot resolves to in a
// word of the given length, or ok=false if the word is too short.
func absoluteIndex(slot word.Slot, length int) (idx int, ok bool) {
	switch slot {
	case word.SlotFirst:
		idx = 0
	case word.SlotSecond:
		idx = 1
	case word.SlotThird:
		idx = 2
	case word.SlotLast:
		idx = length - 1
	case word.SlotSecondFromLast:
		idx = length - 2
	case word.SlotThirdFromLast:
		idx = length - 3
	default:
		return 0, false
	}
	if idx < 0 || idx >= length {
		return 0, false
	}

	return idx, true
}

// yesChild computes the constraint state the Yes branch of sp propagates to
// its children: forbidden gains Primary, and Primary becomes the single
// once-allowed primary for the immediate child, at sp's class.
func (cs constraints) yesChild(sp split) constraints {
	out := constraints{
		forbidden:     cs.forbidden.With(sp.Primary),
		allowedLetter: sp.Primary,
		allowedClass:  sp.Class(),
	}
	if sp.Kind == kindPositional {
		out.allowedSlot = sp.Slot
		out.hasSlot = true
	}

	return out
}

// noChild computes the constraint state the No branch of sp propagates:
// forbidden gains both Primary and Secondary; for soft splits, Secondary
// becomes the once-allowed primary for the immediate child.
func (cs constraints) noChild(sp split) constraints {
	out := constraints{
		forbidden:     cs.forbidden.With(sp.Primary).With(sp.Secondary),
		allowedLetter: noLetter,
	}
	if !sp.Hard {
		out.allowedLetter = sp.Secondary
		out.allowedClass = sp.Class()
		if sp.Kind == kindPositional {
			out.allowedSlot = sp.ReqSlot
			out.hasSlot = true
		}
	}

	return out
}
