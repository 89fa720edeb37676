package anatree

import (
	"testing"

	"github.com/anatree-go/anatree/word"
)

func TestNewSplitNode_ContainsTag(t *testing.T) {
	sp := split{Kind: kindContains, Primary: li('c'), Secondary: li('s'), Hard: false}
	tr := newSplitNode(sp, newLeaf("cats"), newLeaf("dog"))

	if tr.Kind != TreeSplit {
		t.Fatalf("Kind = %v, want TreeSplit", tr.Kind)
	}
	if tr.TestPosition != TagContains || tr.RequirementPosition != TagContains {
		t.Fatalf("Contains split must tag both positions as TagContains: got %v/%v", tr.TestPosition, tr.RequirementPosition)
	}
	if tr.TestLetter != 'c' || tr.RequirementLetter != 's' {
		t.Fatalf("letters not preserved: test=%c req=%c", tr.TestLetter, tr.RequirementLetter)
	}
	if tr.Hard {
		t.Fatal("soft split must carry Hard == false")
	}
}

func TestNewSplitNode_PositionalTag(t *testing.T) {
	sp := split{
		Kind: kindPositional, Primary: li('e'), Secondary: li('i'),
		Slot: word.SlotFirst, ReqSlot: word.SlotLast, Hard: false,
	}
	tr := newSplitNode(sp, newLeaf("a"), newLeaf("b"))

	if tr.TestPosition != TagFirst {
		t.Fatalf("TestPosition = %v, want TagFirst", tr.TestPosition)
	}
	if tr.RequirementPosition != TagLast {
		t.Fatalf("RequirementPosition = %v, want TagLast", tr.RequirementPosition)
	}
}

func TestNewSplitNode_HardSplit_TestEqualsRequirement(t *testing.T) {
	sp := split{Kind: kindDouble, Primary: li('n'), Secondary: li('n'), Hard: true}
	tr := newSplitNode(sp, newLeaf("banana"), newLeaf("cat"))

	if !tr.Hard {
		t.Fatal("hard split must carry Hard == true")
	}
	if tr.TestLetter != tr.RequirementLetter {
		t.Fatal("a hard split's test and requirement letters must be equal")
	}
	if tr.TestPosition != TagDouble || tr.RequirementPosition != TagDouble {
		t.Fatalf("Double split must tag both positions as TagDouble: got %v/%v", tr.TestPosition, tr.RequirementPosition)
	}
}

func TestNewLeafAndRepeat(t *testing.T) {
	leaf := newLeaf("cat")
	if leaf.Kind != TreeLeaf || leaf.Word != "cat" {
		t.Fatalf("newLeaf produced %+v", leaf)
	}

	rep := newRepeat("leo", newLeaf("leo"), newLeaf("geo"))
	if rep.Kind != TreeRepeat || rep.Word != "leo" {
		t.Fatalf("newRepeat produced %+v", rep)
	}
	if rep.Yes.Word != "leo" || rep.No.Word != "geo" {
		t.Fatalf("Repeat branches not wired correctly: %+v", rep)
	}
}
