package anatree

import (
	"strings"

	"github.com/anatree-go/anatree/word"
)

// buildWords validates raw, caller-supplied words and converts them into the
// word.Word feature vectors the solver operates on.
//
// Contract:
//   - 1 <= len(raw) <= word.MaxWords.
//   - Each word is non-empty and ASCII letters only (case-insensitive).
//   - No two words may be equal after lowercasing.
//
// Complexity: O(total input length) time, O(n) extra space for the
// duplicate-detection set.
func buildWords(raw []string) ([]word.Word, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	if len(raw) > word.MaxWords {
		return nil, ErrTooManyWords
	}

	seen := make(map[string]struct{}, len(raw))
	words := make([]word.Word, len(raw))
	for i, s := range raw {
		lower, ok := lowerASCIILetters(s)
		if !ok {
			return nil, ErrNonASCIIOrEmptyWord
		}
		if _, dup := seen[lower]; dup {
			return nil, ErrDuplicateWord
		}
		seen[lower] = struct{}{}
		words[i] = word.New(lower)
	}

	return words, nil
}

// lowerASCIILetters lowercases s and reports ok=false if s is empty or
// contains any byte outside 'A'-'Z'/'a'-'z'.
func lowerASCIILetters(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c - 'A' + 'a')
		default:
			return "", false
		}
	}

	return b.String(), true
}
