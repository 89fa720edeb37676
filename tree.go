// Tree construction: small constructors for the three Tree shapes. Children
// are shared *Tree pointers; Go's garbage collector gives us
// reference-counted-like sharing for free; see DESIGN.md.
package anatree

import "github.com/anatree-go/anatree/word"

func newLeaf(w string) *Tree {
	return &Tree{Kind: TreeLeaf, Word: w}
}

func newRepeat(named string, yes, no *Tree) *Tree {
	return &Tree{Kind: TreeRepeat, Word: named, Yes: yes, No: no}
}

// newSplitNode builds a TreeSplit node from a catalogue split, tagging the
// position fields per the external-interface convention: Contains, Double,
// and Triple are modeled as special position tags; hard splits have
// RequirementLetter/RequirementPosition equal to the test fields.
func newSplitNode(sp split, yes, no *Tree) *Tree {
	t := &Tree{
		Kind:              TreeSplit,
		TestLetter:        letterByte(sp.Primary),
		RequirementLetter: letterByte(sp.Secondary),
		Hard:              sp.Hard,
		Yes:               yes,
		No:                no,
	}
	switch sp.Kind {
	case kindContains:
		t.TestPosition = TagContains
		t.RequirementPosition = TagContains
	case kindDouble:
		t.TestPosition = TagDouble
		t.RequirementPosition = TagDouble
	case kindTriple:
		t.TestPosition = TagTriple
		t.RequirementPosition = TagTriple
	case kindPositional:
		t.TestPosition = slotTag(sp.Slot)
		t.RequirementPosition = slotTag(sp.ReqSlot)
	}

	return t
}

func letterByte(li int8) byte { return byte(li) + 'a' }

func slotTag(s word.Slot) PositionTag { return PositionTag(s.String()) }
