// Solver: a memoized depth-first search over the split catalogue, grounded
// on lvlath/tsp's branch-and-bound engine (tsp/bb.go) — a seeded upper bound
// tightened by recursion, a dense memo keyed on the subset plus the
// propagated state, and a lower-bound prune before the expensive branch is
// ever solved.
package anatree

import "github.com/anatree-go/anatree/word"

// memoKey is the full state a sub-problem's optimal cost and tree set depend
// on. A leaner key that omits allowedClass/allowedSlot/hasSlot runs faster
// (see DESIGN.md for the measured speedup) but is unsound: it lets the same
// (mask, forbidden, allowedLetter) repeat under a different class/slot
// provenance and wrongly reuse a cached legality decision, so this engine
// keeps the fuller key.
type memoKey struct {
	mask          word.Mask
	forbidden     word.LetterSet
	allowedLetter int8
	allowedClass  splitClass
	allowedSlot   word.Slot
	hasSlot       bool
}

// memoEntry is the cached result for one memoKey: the
// shared optimal cost, up to engine.limit tied trees realizing it, and
// whether further ties exist beyond that cap.
type memoEntry struct {
	cost      cost
	trees     []*Tree
	exhausted bool
}

// engine holds one Solve call's fixed inputs and its growing memo table.
//
// noMemo and noPrune exist only to let tests run the same recursion as an
// exhaustive, un-memoized search and cross-check it against the normal
// memoized-and-pruned path; Solve itself always leaves both false.
type engine struct {
	words            []word.Word
	allowRepeat      bool
	prioritizeSoftNo bool
	limit            int // 0 means unlimited
	memo             map[memoKey]memoEntry
	noMemo           bool
	noPrune          bool
}

// Solve computes the minimum-cost anagram tree (or trees, if tied) that
// distinguishes every word in words via the split catalogue. See Options for
// tunables and Result for what is returned.
func Solve(words []string, opts Options) (Result, error) {
	ws, err := buildWords(words)
	if err != nil {
		return Result{}, err
	}

	e := &engine{
		words:            ws,
		allowRepeat:      opts.AllowRepeat,
		prioritizeSoftNo: opts.PrioritizeSoftNo,
		limit:            int(opts.Limit),
		memo:             make(map[memoKey]memoEntry),
	}

	entry := e.solve(word.Full(len(ws)), rootConstraints)

	return Result{
		Cost:      entry.cost.toPublic(len(ws)),
		Trees:     entry.trees,
		Merged:    mergeTrees(entry.trees),
		Exhausted: entry.exhausted,
	}, nil
}

// solve returns the optimal memoEntry for the sub-problem (mask, cs),
// computing and caching it on first visit.
func (e *engine) solve(mask word.Mask, cs constraints) memoEntry {
	if idx, ok := mask.Singleton(); ok {
		return memoEntry{cost: leafCost, trees: []*Tree{newLeaf(e.words[idx].Text)}}
	}

	key := memoKey{
		mask:          mask,
		forbidden:     cs.forbidden,
		allowedLetter: cs.allowedLetter,
		allowedClass:  cs.allowedClass,
		allowedSlot:   cs.allowedSlot,
		hasSlot:       cs.hasSlot,
	}
	if !e.noMemo {
		if hit, ok := e.memo[key]; ok {
			return hit
		}
	}

	var (
		haveBest bool
		best     cost
		trees    []*Tree
		exh      bool
	)

	// consider folds one candidate tree of cost c into the running best set:
	// strictly better replaces it, equal accumulates up to e.limit, worse is
	// discarded. build is called lazily, only for candidates that survive.
	consider := func(c cost, childExhausted bool, build func() *Tree) {
		switch {
		case !haveBest || less(c, best, e.prioritizeSoftNo):
			best = c
			trees = []*Tree{build()}
			exh = childExhausted
			haveBest = true
		case equal(c, best, e.prioritizeSoftNo):
			if e.limit > 0 && len(trees) >= e.limit {
				exh = true
				return
			}
			trees = append(trees, build())
			if childExhausted {
				exh = true
			}
		}
	}

	// Repeat candidates: for an exactly-two-word sub-problem, naming either
	// word outright carries the fixed leaf baseline cost (no Nos at all),
	// which strictly dominates any split (every split's No edge contributes
	// at least one No). Considering both namings first seeds best so the
	// split loop below prunes immediately, mirroring tsp/bb.go's
	// seeded-upper-bound pattern.
	if e.allowRepeat && mask.Count() == 2 {
		var idx [2]int
		n := 0
		mask.ForEach(func(i int) { idx[n] = i; n++ })
		for _, pair := range [2][2]int{{idx[0], idx[1]}, {idx[1], idx[0]}} {
			named, other := pair[0], pair[1]
			consider(leafCost, false, func() *Tree {
				return newRepeat(e.words[named].Text, newLeaf(e.words[named].Text), newLeaf(e.words[other].Text))
			})
		}
	}

	enumerateSplits(e.words, mask, cs, func(sp split, yes, no word.Mask) bool {
		noCS := cs.noChild(sp)
		noEntry := e.solve(no, noCS)

		// Lower bound: the No branch's actual cost combined with the
		// cheapest cost any Yes branch could possibly have. If that already
		// cannot beat best, the Yes branch is never solved.
		lb := combine(trivialLowerBound, noEntry.cost, sp.Hard, no.Count())
		if !e.noPrune && haveBest && !less(lb, best, e.prioritizeSoftNo) {
			return true
		}

		yesCS := cs.yesChild(sp)
		yesEntry := e.solve(yes, yesCS)
		c := combine(yesEntry.cost, noEntry.cost, sp.Hard, no.Count())
		childExhausted := yesEntry.exhausted || noEntry.exhausted

		for _, yt := range yesEntry.trees {
			for _, nt := range noEntry.trees {
				consider(c, childExhausted, func() *Tree { return newSplitNode(sp, yt, nt) })
			}
		}

		return true
	})

	if !haveBest {
		// The catalogue's legality exception exists precisely to guarantee a
		// split remains available whenever >= 2 distinct words remain;
		// reaching here means that guarantee was broken by a solver bug, not
		// by bad input, so this is a panic rather than a returned error.
		panic(errInternalInvariant)
	}

	result := memoEntry{cost: best, trees: trees, exhausted: exh}
	if !e.noMemo {
		e.memo[key] = result
	}

	return result
}
