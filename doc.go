// Package anatree computes minimum-cost binary decision trees ("anagram
// trees") over a small set of input words: every internal node asks one
// yes/no question about letter content or letter position, every leaf (or
// Repeat node) names exactly one word, and the tree is optimized under a
// strict lexicographic 5-tuple cost.
//
// # What & Why
//
// Given a set of distinct words, anatree builds a tree that distinguishes
// each one from all the others using only questions of the form "does the
// word contain letter X", "is letter X at position P" or "does letter X
// occur at least twice (three times)", preferring trees
// that are shallow and ask as few unjustified ("hard") questions as
// possible along any root-to-leaf path.
//
//   - Split catalogue: Contains, Positional (6 slots), Double, Triple, each
//     with a hard variant (bare yes/no) and one or more soft variants (the
//     all-No branch is additionally guaranteed by a secondary letter or
//     slot requirement, so a No answer still carries information).
//   - Solver: a memoized depth-first search (Solve) over the catalogue,
//     pruned by a lower bound computed from the No branch before the Yes
//     branch is ever explored.
//   - Merge: Solve's tied optimal trees are folded into a single MergedTree
//     for a renderer (out of scope here) to draw alternatives at a shared
//     position.
//
// # Cost Algebra
//
//	type Cost struct {
//	    MaxHardNos int       // heaviest-path count of unjustified No edges
//	    MaxNos     int       // heaviest-path count of all No edges
//	    AvgHardNos float64   // hard Nos summed across all leaves, per word
//	    AvgNos     float64   // all Nos summed across all leaves, per word
//	    Depth      int       // longest path; a lone Leaf/Repeat is 1
//	}
//
// Ordering is strict lexicographic over (MaxHardNos, MaxNos, AvgHardNos,
// AvgNos, Depth); Options.PrioritizeSoftNo swaps MaxHardNos with MaxNos and
// AvgHardNos with AvgNos. See cost.go.
//
// # Options
//
//	type Options struct {
//	    AllowRepeat      bool   // name one of 2 remaining words outright
//	    PrioritizeSoftNo bool   // swap field precedence, see above
//	    Limit            uint32 // cap on cost-equal optimal trees (0=unlimited)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrEmptyInput, ErrTooManyWords, ErrNonASCIIOrEmptyWord, ErrDuplicateWord.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type Result struct {
//	    Cost      Cost
//	    Trees     []*Tree      // up to Options.Limit tied optimal trees
//	    Merged    *MergedTree  // same trees, folded into one DAG-like record
//	    Exhausted bool         // true if more ties existed beyond Limit
//	}
//
// # Limits
//
// word.MaxWords (32) bounds the input set: Mask is a uint32 bitmask, one bit
// per word, chosen over a bigger int so the hot recursive loop in solve.go
// never allocates.
package anatree
