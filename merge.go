// Tree materialization & merge: folds the set of tied optimal trees
// returned by Solve into a single MergedTree, a DAG-like structure where
// every node that diverges across the optimal set exposes its alternatives
// as an Options list, for an external renderer to draw (out of scope here).
package anatree

// MergedInfo describes one node shape, independent of its children: the
// same fields a Tree carries, minus Yes/No.
type MergedInfo struct {
	Kind                TreeKind
	Word                string
	TestLetter          byte
	TestPosition        PositionTag
	RequirementLetter   byte
	RequirementPosition PositionTag
	Hard                bool
}

// MergedOption is one alternative at a merged position: a node shape plus
// its (already merged) Yes/No continuations, nil for Leaf nodes, which have
// no question below them. Repeat nodes carry both Yes and No, just like
// Split.
type MergedOption struct {
	Info MergedInfo
	Yes  *MergedTree
	No   *MergedTree
}

// MergedTree is a recursive record: the set of alternative node shapes the
// optimal tree set offers at one tree position. A position with exactly one
// option means every optimal tree agreed there; more than one means the
// renderer should draw a "▼" alternatives marker.
type MergedTree struct {
	Options []MergedOption
}

type shapeKey struct {
	kind                TreeKind
	word                string
	testLetter          byte
	testPosition        PositionTag
	reqLetter           byte
	reqPosition         PositionTag
	hard                bool
}

func infoOf(t *Tree) MergedInfo {
	return MergedInfo{
		Kind:                t.Kind,
		Word:                t.Word,
		TestLetter:          t.TestLetter,
		TestPosition:        t.TestPosition,
		RequirementLetter:   t.RequirementLetter,
		RequirementPosition: t.RequirementPosition,
		Hard:                t.Hard,
	}
}

func keyOf(t *Tree) shapeKey {
	return shapeKey{
		kind:         t.Kind,
		word:         t.Word,
		testLetter:   t.TestLetter,
		testPosition: t.TestPosition,
		reqLetter:    t.RequirementLetter,
		reqPosition:  t.RequirementPosition,
		hard:         t.Hard,
	}
}

// mergeTrees walks trees in lockstep, grouping nodes that share a tree
// position (this call) by shape, and recursing into each group's children.
// Group order follows first appearance in trees, which is deterministic
// because Solve's returned tree order is deterministic.
func mergeTrees(trees []*Tree) *MergedTree {
	if len(trees) == 0 {
		return &MergedTree{}
	}

	type bucket struct {
		info    MergedInfo
		yesKids []*Tree
		noKids  []*Tree
	}

	order := make([]shapeKey, 0, len(trees))
	buckets := make(map[shapeKey]*bucket, len(trees))

	for _, t := range trees {
		k := keyOf(t)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{info: infoOf(t)}
			buckets[k] = b
			order = append(order, k)
		}
		if t.Yes != nil {
			b.yesKids = append(b.yesKids, t.Yes)
		}
		if t.No != nil {
			b.noKids = append(b.noKids, t.No)
		}
	}

	opts := make([]MergedOption, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		opt := MergedOption{Info: b.info}
		if len(b.yesKids) > 0 {
			opt.Yes = mergeTrees(b.yesKids)
		}
		if len(b.noKids) > 0 {
			opt.No = mergeTrees(b.noKids)
		}
		opts = append(opts, opt)
	}

	return &MergedTree{Options: opts}
}
