// Split catalogue & legality: the four question kinds (Contains,
// Positional, Double, Triple), their hard and soft variants, and the
// legality conjunction that governs which instantiations a node may use.
package anatree

import "github.com/anatree-go/anatree/word"

// splitKind is the question family a split belongs to.
type splitKind int8

const (
	kindContains splitKind = iota
	kindPositional
	kindDouble
	kindTriple
)

// split is one fully-instantiated candidate question at a node: a concrete
// primary letter (tested in the Yes predicate), and — for soft variants — a
// concrete secondary letter the requirement is phrased over. Hard splits
// have Secondary == Primary.
type split struct {
	Kind      splitKind
	Primary   int8 // letter 0..25
	Secondary int8 // letter 0..25; == Primary for hard splits
	Slot      word.Slot // primary's tested slot, valid iff Kind == kindPositional
	ReqSlot   word.Slot // secondary's requirement slot, valid iff Kind == kindPositional
	Hard      bool
}

// Class returns the split's tier for the same-class-or-downward exception
// rule.
func (sp split) Class() splitClass {
	switch sp.Kind {
	case kindContains:
		return classContains
	case kindPositional:
		return classPositional
	default: // kindDouble, kindTriple
		return classDoubleTriple
	}
}

// splitVisitor is called once per legal split instantiation a node can use,
// together with the (Yes, No) bipartition it induces over mask. Returning
// false stops enumeration early; the solver's visitor always returns true,
// so it sees every candidate.
type splitVisitor func(sp split, yes, no word.Mask) bool

// enumerateSplits streams every legal split instantiation at a node with
// subset mask and incoming constraints cs, in the catalogue's canonical
// order: soft variants before hard, and within each phase Contains →
// Positional → Double/Triple. Optimality does not depend on this order; it
// only affects how quickly the solver's best-cost bound tightens.
func enumerateSplits(words []word.Word, mask word.Mask, cs constraints, visit splitVisitor) {
	if !enumerateSoftContains(words, mask, cs, visit) {
		return
	}
	if !enumerateSoftPositional(words, mask, cs, visit) {
		return
	}
	if !enumerateSoftDoubleTriple(words, mask, cs, kindDouble, visit) {
		return
	}
	if !enumerateSoftDoubleTriple(words, mask, cs, kindTriple, visit) {
		return
	}
	if !enumerateHardContains(words, mask, cs, visit) {
		return
	}
	if !enumerateHardPositional(words, mask, cs, visit) {
		return
	}
	if !enumerateHardDoubleTriple(words, mask, cs, kindDouble, visit) {
		return
	}
	enumerateHardDoubleTriple(words, mask, cs, kindTriple, visit)
}

// primaryAllowed reports whether candidate primary letter li may be used at
// this node: either it isn't touched by an ancestor split, or the
// once-allowed-primary exception applies (same-class-or-downward and, for
// positional candidates, the same-index guard).
func primaryAllowed(words []word.Word, mask word.Mask, cs constraints, li int8, cls splitClass, slot word.Slot, positional bool) bool {
	if !cs.forbidden.Has(li) {
		return true
	}
	if !cs.exceptionApplies(li, cls) {
		return false
	}
	if positional && !sameIndexGuardHolds(words, mask, cs, slot, true) {
		return false
	}

	return true
}

// secondaryAllowed reports whether candidate secondary letter li may be
// used: it must not be touched by an ancestor split, with no exception
// carve-out for the secondary letter itself.
func secondaryAllowed(cs constraints, li int8) bool { return !cs.forbidden.Has(li) }

func enumerateHardContains(words []word.Word, mask word.Mask, cs constraints, visit splitVisitor) bool {
	cont := true
	word.ContainLetters(words, mask).ForEach(func(p int8) {
		if !cont {
			return
		}
		if !primaryAllowed(words, mask, cs, p, classContains, 0, false) {
			return
		}
		yes, no := partitionContains(words, mask, p)
		if yes.Empty() || no.Empty() {
			return
		}
		sp := split{Kind: kindContains, Primary: p, Secondary: p, Hard: true}
		cont = visit(sp, yes, no)
	})

	return cont
}

func enumerateSoftContains(words []word.Word, mask word.Mask, cs constraints, visit splitVisitor) bool {
	cont := true
	word.ContainLetters(words, mask).ForEach(func(p int8) {
		if !cont {
			return
		}
		if !primaryAllowed(words, mask, cs, p, classContains, 0, false) {
			return
		}
		yes, no := partitionContains(words, mask, p)
		if yes.Empty() || no.Empty() {
			return
		}
		word.CommonLetters(words, no).ForEach(func(s int8) {
			if !cont || s == p {
				return
			}
			if !secondaryAllowed(cs, s) {
				return
			}
			sp := split{Kind: kindContains, Primary: p, Secondary: s, Hard: false}
			cont = visit(sp, yes, no)
		})
	})

	return cont
}

func enumerateHardPositional(words []word.Word, mask word.Mask, cs constraints, visit splitVisitor) bool {
	cont := true
	for slot := word.Slot(0); int(slot) < word.NumSlots && cont; slot++ {
		word.SlotLetters(words, mask, slot).ForEach(func(p int8) {
			if !cont {
				return
			}
			if !primaryAllowed(words, mask, cs, p, classPositional, slot, true) {
				return
			}
			yes, no := partitionPositional(words, mask, slot, p)
			if yes.Empty() || no.Empty() {
				return
			}
			sp := split{Kind: kindPositional, Primary: p, Secondary: p, Slot: slot, ReqSlot: slot, Hard: true}
			cont = visit(sp, yes, no)
		})
	}

	return cont
}

func enumerateSoftPositional(words []word.Word, mask word.Mask, cs constraints, visit splitVisitor) bool {
	cont := true
	for slot := word.Slot(0); int(slot) < word.NumSlots && cont; slot++ {
		word.SlotLetters(words, mask, slot).ForEach(func(p int8) {
			if !cont {
				return
			}
			if !primaryAllowed(words, mask, cs, p, classPositional, slot, true) {
				return
			}
			yes, no := partitionPositional(words, mask, slot, p)
			if yes.Empty() || no.Empty() {
				return
			}

			// Reciprocal-letter soft: all-No share a reciprocal of p at the
			// same slot.
			if common, ok := word.CommonSlotLetter(words, no, slot); ok && common != p && reciprocalsOf(p).Has(common) {
				if secondaryAllowed(cs, common) {
					sp := split{Kind: kindPositional, Primary: p, Secondary: common, Slot: slot, ReqSlot: slot, Hard: false}
					if cont = visit(sp, yes, no); !cont {
						return
					}
				}
			}

			// Adjacent-slot / mirror-slot soft: all-No share p itself at a
			// different slot q (mirror is the special case q == slot.Mirror()).
			for q := word.Slot(0); int(q) < word.NumSlots && cont; q++ {
				if q == slot {
					continue
				}
				common, ok := word.CommonSlotLetter(words, no, q)
				if !ok || common != p {
					continue
				}
				if !secondaryAllowed(cs, p) {
					continue
				}
				sp := split{Kind: kindPositional, Primary: p, Secondary: p, Slot: slot, ReqSlot: q, Hard: false}
				cont = visit(sp, yes, no)
			}
		})
	}

	return cont
}

func enumerateHardDoubleTriple(words []word.Word, mask word.Mask, cs constraints, kind splitKind, visit splitVisitor) bool {
	letters := word.DoubledLetters(words, mask)
	partitionFn := partitionDouble
	cls := classDoubleTriple
	if kind == kindTriple {
		letters = word.TripledLetters(words, mask)
		partitionFn = partitionTriple
	}

	cont := true
	letters.ForEach(func(p int8) {
		if !cont {
			return
		}
		if !primaryAllowed(words, mask, cs, p, cls, 0, false) {
			return
		}
		yes, no := partitionFn(words, mask, p)
		if yes.Empty() || no.Empty() {
			return
		}
		sp := split{Kind: kind, Primary: p, Secondary: p, Hard: true}
		cont = visit(sp, yes, no)
	})

	return cont
}

func enumerateSoftDoubleTriple(words []word.Word, mask word.Mask, cs constraints, kind splitKind, visit splitVisitor) bool {
	letters := word.DoubledLetters(words, mask)
	partitionFn := partitionDouble
	commonFn := word.CommonDoubled
	cls := classDoubleTriple
	if kind == kindTriple {
		letters = word.TripledLetters(words, mask)
		partitionFn = partitionTriple
		commonFn = word.CommonTripled
	}

	cont := true
	letters.ForEach(func(p int8) {
		if !cont {
			return
		}
		if !primaryAllowed(words, mask, cs, p, cls, 0, false) {
			return
		}
		yes, no := partitionFn(words, mask, p)
		if yes.Empty() || no.Empty() {
			return
		}
		commonFn(words, no).ForEach(func(b int8) {
			if !cont || b == p {
				return
			}
			if !secondaryAllowed(cs, b) {
				return
			}
			sp := split{Kind: kind, Primary: p, Secondary: b, Hard: false}
			cont = visit(sp, yes, no)
		})
	})

	return cont
}
