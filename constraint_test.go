package anatree

import (
	"testing"

	"github.com/anatree-go/anatree/word"
)

func TestYesChild_ForbidsPrimaryAndGrantsOnceException(t *testing.T) {
	sp := split{Kind: kindContains, Primary: li('c'), Secondary: li('c'), Hard: true}
	out := rootConstraints.yesChild(sp)

	if !out.forbidden.Has(li('c')) {
		t.Fatal("yesChild must forbid the primary letter")
	}
	if out.allowedLetter != li('c') || out.allowedClass != classContains {
		t.Fatalf("yesChild must grant a once-allowed exception at the split's class: got letter=%d class=%d",
			out.allowedLetter, out.allowedClass)
	}
}

func TestNoChild_HardSplit_NoException(t *testing.T) {
	sp := split{Kind: kindContains, Primary: li('c'), Secondary: li('c'), Hard: true}
	out := rootConstraints.noChild(sp)

	if !out.forbidden.Has(li('c')) {
		t.Fatal("noChild must forbid the primary letter")
	}
	if out.allowedLetter != noLetter {
		t.Fatal("hard split grants no once-allowed exception to the No child")
	}
}

func TestNoChild_SoftSplit_GrantsSecondaryException(t *testing.T) {
	sp := split{Kind: kindContains, Primary: li('c'), Secondary: li('s'), Hard: false}
	out := rootConstraints.noChild(sp)

	if !out.forbidden.Has(li('c')) || !out.forbidden.Has(li('s')) {
		t.Fatal("noChild must forbid both primary and secondary")
	}
	if out.allowedLetter != li('s') || out.allowedClass != classContains {
		t.Fatalf("soft split grants the secondary as the No child's once-allowed primary: got %+v", out)
	}
}

func TestNoChild_PositionalSoft_RecordsRequirementSlot(t *testing.T) {
	sp := split{
		Kind: kindPositional, Primary: li('e'), Secondary: li('i'),
		Slot: word.SlotFirst, ReqSlot: word.SlotSecond, Hard: false,
	}
	out := rootConstraints.noChild(sp)

	if !out.hasSlot || out.allowedSlot != word.SlotSecond {
		t.Fatalf("noChild must record the requirement slot for the same-index guard: got %+v", out)
	}
}

func TestYesChild_PositionalRecordsPrimarySlot(t *testing.T) {
	sp := split{Kind: kindPositional, Primary: li('e'), Secondary: li('e'), Slot: word.SlotFirst, ReqSlot: word.SlotFirst, Hard: true}
	out := rootConstraints.yesChild(sp)

	if !out.hasSlot || out.allowedSlot != word.SlotFirst {
		t.Fatalf("yesChild must record the primary's slot for positional splits: got %+v", out)
	}
}

func TestConstraints_ExceptionDoesNotSurviveTwoLevels(t *testing.T) {
	// The once-allowed exception is for the immediate child only; a
	// grandchild derived via yesChild/noChild again must clear it.
	sp := split{Kind: kindContains, Primary: li('c'), Secondary: li('c'), Hard: true}
	child := rootConstraints.yesChild(sp)

	sp2 := split{Kind: kindContains, Primary: li('d'), Secondary: li('d'), Hard: true}
	grandchild := child.yesChild(sp2)

	if grandchild.allowedLetter == li('c') {
		t.Fatal("the once-allowed exception must not propagate past the immediate child")
	}
}
