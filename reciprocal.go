package anatree

import "github.com/anatree-go/anatree/word"

// reciprocalPairs is the fixed table of letters commonly confused at the
// same position (e.g. heard-aloud or handwriting lookalikes), used by the
// reciprocal-letter soft positional variant. A letter may have more
// than one reciprocal partner (e.g. 'i' pairs with both 'e' and 'l' and
// 't'), so the table is not a simple involution; it is an external input,
// not something the solver derives.
var reciprocalPairs = [...][2]byte{
	{'e', 'i'},
	{'c', 'k'},
	{'s', 'z'},
	{'i', 'l'},
	{'m', 'n'},
	{'u', 'v'},
	{'o', 'q'},
	{'c', 'g'},
	{'b', 'p'},
	{'i', 't'},
	{'r', 'e'},
	{'a', 'r'},
}

// reciprocalTable[li] is the set of letters reciprocal to letter li,
// built once at package init from reciprocalPairs.
var reciprocalTable [26]word.LetterSet

func init() {
	for _, pair := range reciprocalPairs {
		a := int8(pair[0] - 'a')
		b := int8(pair[1] - 'a')
		reciprocalTable[a] = reciprocalTable[a].With(b)
		reciprocalTable[b] = reciprocalTable[b].With(a)
	}
}

// reciprocalsOf returns the letters reciprocal to li per reciprocalPairs.
func reciprocalsOf(li int8) word.LetterSet { return reciprocalTable[li] }
