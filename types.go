package anatree

// Options configures one Solve call. The zero value is not meaningful; use
// DefaultOptions and override fields as needed (mirrors lvlath/tsp.Options).
type Options struct {
	// AllowRepeat enables Repeat nodes: for a two-word sub-problem, naming
	// one word outright instead of asking a further split question.
	// Default: true.
	AllowRepeat bool

	// PrioritizeSoftNo swaps the cost-field precedence so that the maximum
	// of all Nos (hard+soft) dominates the hard-only maximum. Default: false.
	PrioritizeSoftNo bool

	// Limit caps the number of cost-equal optimal trees returned. Zero
	// means unlimited. Default: DefaultLimit (5).
	Limit uint32
}

// DefaultLimit is the default cap on cost-equal optimal trees returned by
// Solve when Options.Limit is left unset by the caller via DefaultOptions.
const DefaultLimit = 5

// DefaultOptions returns Options with the reference-implementation defaults:
// Repeat enabled, hard-No precedence, and a tie cap of 5.
func DefaultOptions() Options {
	return Options{
		AllowRepeat:      true,
		PrioritizeSoftNo: false,
		Limit:            DefaultLimit,
	}
}

// Cost is the externally visible 5-tuple cost of a tree. MaxHardNos
// and MaxNos are counts along the heaviest root-to-leaf path; AvgHardNos and
// AvgNos are the corresponding sums normalized by the total word count
// ("average Nos per word"); Depth is the length of the longest
// root-to-leaf path, where a lone Leaf or Repeat node has Depth 1 and each
// split level adds 1.
//
// Ordering is strict lexicographic over (MaxHardNos, MaxNos, AvgHardNos,
// AvgNos, Depth), smaller is better, unless Options.PrioritizeSoftNo swaps
// the first two and the next two fields.
type Cost struct {
	MaxHardNos int
	MaxNos     int
	AvgHardNos float64
	AvgNos     float64
	Depth      int
}

// TreeKind discriminates the three node shapes a Tree can take.
type TreeKind int

const (
	// TreeLeaf names exactly one word; the subset reaching it must contain
	// only that word.
	TreeLeaf TreeKind = iota

	// TreeRepeat names one of exactly two remaining words without asking a
	// further letter-content question; see Options.AllowRepeat.
	TreeRepeat

	// TreeSplit asks a yes/no question from the split catalogue.
	TreeSplit
)

func (k TreeKind) String() string {
	switch k {
	case TreeLeaf:
		return "Leaf"
	case TreeRepeat:
		return "Repeat"
	case TreeSplit:
		return "Split"
	default:
		return "Unknown"
	}
}

// PositionTag names what a split tests: one of the six positional slots, or
// the special tags Contains/Double/Triple. String-valued so an external
// renderer (out of scope here) can match on it directly.
type PositionTag string

const (
	TagContains        PositionTag = "Contains"
	TagDouble          PositionTag = "Double"
	TagTriple          PositionTag = "Triple"
	TagFirst           PositionTag = "First"
	TagSecond          PositionTag = "Second"
	TagThird           PositionTag = "Third"
	TagThirdFromLast   PositionTag = "ThirdFromLast"
	TagSecondFromLast  PositionTag = "SecondFromLast"
	TagLast            PositionTag = "Last"
)

// Tree is an immutable decision-tree node. Split children are shared
// references: the same *Tree may be pointed to by more than one parent
// across the returned tree set, and Go's garbage collector (not manual
// reference counting, see DESIGN.md) reclaims it once unreachable.
type Tree struct {
	Kind TreeKind

	// Word is set for TreeLeaf/TreeRepeat: the word the node names.
	Word string

	// The following fields are set for TreeSplit only. TestLetter/
	// TestPosition describe the Yes predicate; RequirementLetter/
	// RequirementPosition describe the soft all-No requirement (equal to
	// the test fields for a hard split, i.e. Hard == true).
	TestLetter          byte
	TestPosition        PositionTag
	RequirementLetter   byte
	RequirementPosition PositionTag
	Hard                bool

	Yes *Tree
	No  *Tree
}

// Result bundles everything Solve returns: the shared optimal cost, up to
// Options.Limit tied optimal trees, their merge, and whether more ties
// existed beyond the cap.
type Result struct {
	Cost      Cost
	Trees     []*Tree
	Merged    *MergedTree
	Exhausted bool
}
