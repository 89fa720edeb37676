// Cost algebra: a 5-tuple lexicographic cost with a combine operator over
// (Yes child, No child, hard-ness of the edge, |No subset|).
//
// Internally the two "sum" fields stay raw integer-weighted accumulations
// (see combine); they are normalized into "average Nos per word" only when
// a cost is exposed to the caller via toPublic. Comparisons during search
// always operate on the raw, un-normalized tuple: dividing every candidate
// by the same positive total word count never changes their relative
// order, so normalizing only at the boundary is both correct and cheaper.
package anatree

// cost is the internal, un-normalized 5-tuple used throughout the solver.
type cost struct {
	maxHardNos int
	maxNos     int
	sumHardNos int
	sumNos     int
	depth      int
}

// leafCost is the baseline cost of a Leaf or Repeat node: no Nos of any
// kind, depth 1 (depth counts edges from the root; a singleton counts as
// depth 1 in this algebra, matching every other leaf).
var leafCost = cost{depth: 1}

// combine folds a Yes child cost and a No child cost across one split edge.
// hard marks whether the No edge is unjustified (increments max/sumHardNos);
// noCount is |No subset|, the weight applied to the sum fields.
func combine(yes, no cost, hard bool, noCount int) cost {
	hardInc := 0
	if hard {
		hardInc = 1
	}

	out := cost{
		maxHardNos: maxInt(yes.maxHardNos, no.maxHardNos+hardInc),
		maxNos:     maxInt(yes.maxNos, no.maxNos+1),
		sumHardNos: yes.sumHardNos + no.sumHardNos,
		sumNos:     yes.sumNos + no.sumNos + noCount,
		depth:      maxInt(yes.depth, no.depth) + 1,
	}
	if hard {
		out.sumHardNos += noCount
	}

	return out
}

// less implements the strict total order over cost tuples. prioritizeSoftNo
// swaps field 1 with field 2 and field 3 with field 4 before comparing, so
// that the maximum of all Nos (hard+soft) dominates the hard-only maximum.
func less(a, b cost, prioritizeSoftNo bool) bool {
	if prioritizeSoftNo {
		if a.maxNos != b.maxNos {
			return a.maxNos < b.maxNos
		}
		if a.maxHardNos != b.maxHardNos {
			return a.maxHardNos < b.maxHardNos
		}
		if a.sumNos != b.sumNos {
			return a.sumNos < b.sumNos
		}
		if a.sumHardNos != b.sumHardNos {
			return a.sumHardNos < b.sumHardNos
		}

		return a.depth < b.depth
	}

	if a.maxHardNos != b.maxHardNos {
		return a.maxHardNos < b.maxHardNos
	}
	if a.maxNos != b.maxNos {
		return a.maxNos < b.maxNos
	}
	if a.sumHardNos != b.sumHardNos {
		return a.sumHardNos < b.sumHardNos
	}
	if a.sumNos != b.sumNos {
		return a.sumNos < b.sumNos
	}

	return a.depth < b.depth
}

// equal reports whether a and b compare as the same cost (neither less than
// the other under the same precedence).
func equal(a, b cost, prioritizeSoftNo bool) bool {
	return !less(a, b, prioritizeSoftNo) && !less(b, a, prioritizeSoftNo)
}

// trivialLowerBound is the cheapest cost any sub-tree over a non-empty
// subset can possibly have: depth >= 1, every other field >= 0. Used by the
// solver to bound the Yes branch before actually solving it.
var trivialLowerBound = cost{depth: 1}

// toPublic normalizes the raw sum fields by totalWords, yielding the
// "average Nos per word" the caller sees.
func (c cost) toPublic(totalWords int) Cost {
	return Cost{
		MaxHardNos: c.maxHardNos,
		MaxNos:     c.maxNos,
		AvgHardNos: float64(c.sumHardNos) / float64(totalWords),
		AvgNos:     float64(c.sumNos) / float64(totalWords),
		Depth:      c.depth,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
