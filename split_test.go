package anatree

import (
	"testing"

	"github.com/anatree-go/anatree/word"
)

func li(c byte) int8 { return int8(c - 'a') }

func TestEnumerateSplits_HardContains_YesNoPartition(t *testing.T) {
	words := []word.Word{word.New("cat"), word.New("dog")}
	mask := word.Full(2)

	found := false
	enumerateSplits(words, mask, rootConstraints, func(sp split, yes, no word.Mask) bool {
		if sp.Kind == kindContains && sp.Hard && sp.Primary == li('c') {
			found = true
			if !yes.Has(0) || no.Has(0) {
				t.Fatalf("cat should fall in Yes for contains-c")
			}
			if yes.Has(1) || !no.Has(1) {
				t.Fatalf("dog should fall in No for contains-c")
			}
		}
		return true
	})
	if !found {
		t.Fatal("expected a hard Contains split on 'c'")
	}
}

func TestEnumerateSplits_NeverEmptyBranch(t *testing.T) {
	words := []word.Word{word.New("aries"), word.New("leo"), word.New("virgo")}
	mask := word.Full(3)

	enumerateSplits(words, mask, rootConstraints, func(sp split, yes, no word.Mask) bool {
		if yes.Empty() || no.Empty() {
			t.Fatalf("enumerateSplits yielded an empty branch for %+v", sp)
		}
		return true
	})
}

func TestEnumerateSplits_SoftContains_RequirementHoldsForAllNo(t *testing.T) {
	// "cats" and "cars" both contain 'c' and 'a'; "dog" contains neither.
	// Every soft Contains split yielded here must have a secondary letter
	// that every word in its No branch contains (e.g. Contains(c) with
	// secondary 'o' or 'd' or 'g' for the No word "dog").
	words := []word.Word{word.New("cats"), word.New("cars"), word.New("dog")}
	mask := word.Full(3)

	enumerateSplits(words, mask, rootConstraints, func(sp split, yes, no word.Mask) bool {
		if sp.Kind != kindContains || sp.Hard {
			return true
		}
		// Every word in the No branch must actually contain the secondary.
		no.ForEach(func(i int) {
			if !words[i].HasLetter(sp.Secondary) {
				t.Fatalf("soft Contains split %+v: No-branch word %q lacks secondary letter",
					sp, words[i].Text)
			}
		})
		return true
	})
}

func TestPrimaryAllowed_ForbiddenBlocksByDefault(t *testing.T) {
	cs := rootConstraints
	cs.forbidden = cs.forbidden.With(li('c'))

	if primaryAllowed(nil, 0, cs, li('c'), classContains, 0, false) {
		t.Fatal("forbidden letter with no exception must be disallowed")
	}
}

func TestPrimaryAllowed_ExceptionAllowsSameClassOrDownward(t *testing.T) {
	cs := constraints{
		forbidden:     word.LetterSet(0).With(li('c')),
		allowedLetter: li('c'),
		allowedClass:  classContains,
	}

	if !primaryAllowed(nil, 0, cs, li('c'), classContains, 0, false) {
		t.Fatal("same-class exception should allow reuse")
	}
	if !primaryAllowed(nil, 0, cs, li('c'), classDoubleTriple, 0, false) {
		t.Fatal("downward (higher-tier) exception should allow reuse")
	}
}

func TestPrimaryAllowed_ExceptionDoesNotApplyToOtherLetters(t *testing.T) {
	cs := constraints{
		forbidden:     word.LetterSet(0).With(li('c')).With(li('d')),
		allowedLetter: li('c'),
		allowedClass:  classContains,
	}

	if primaryAllowed(nil, 0, cs, li('d'), classContains, 0, false) {
		t.Fatal("exception is per-letter; 'd' must stay forbidden")
	}
}

func TestSecondaryAllowed_NoExceptionCarveOut(t *testing.T) {
	cs := constraints{
		forbidden:     word.LetterSet(0).With(li('c')),
		allowedLetter: li('c'),
		allowedClass:  classContains,
	}

	if secondaryAllowed(cs, li('c')) {
		t.Fatal("rule 4: secondary has no exception carve-out")
	}
}

func TestSameIndexGuard_BlocksColludingSlots(t *testing.T) {
	// In a 3-letter word, Second and SecondFromLast both resolve to index 1.
	words := []word.Word{word.New("cat")}
	mask := word.Full(1)
	cs := constraints{allowedSlot: word.SlotSecond, hasSlot: true}

	if sameIndexGuardHolds(words, mask, cs, word.SlotSecondFromLast, true) {
		t.Fatal("Second and SecondFromLast collide at index 1 in a 3-letter word")
	}
}

func TestSameIndexGuard_AllowsDistinctIndices(t *testing.T) {
	words := []word.Word{word.New("cats")}
	mask := word.Full(1)
	cs := constraints{allowedSlot: word.SlotFirst, hasSlot: true}

	if !sameIndexGuardHolds(words, mask, cs, word.SlotLast, true) {
		t.Fatal("First (index 0) and Last (index 3) do not collide in a 4-letter word")
	}
}

func TestClass_Ordering(t *testing.T) {
	if !(classContains < classPositional && classPositional < classDoubleTriple) {
		t.Fatal("class tiers must order Contains < Positional < Double/Triple")
	}
}
