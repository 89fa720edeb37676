package anatree

import "errors"

// Input-validation sentinels. Do not wrap with fmt.Errorf where a sentinel
// suffices; callers are expected to compare with errors.Is.
var (
	// ErrEmptyInput is returned when the word list is empty.
	ErrEmptyInput = errors.New("anatree: word list is empty")

	// ErrTooManyWords is returned when the word list exceeds word.MaxWords (32).
	ErrTooManyWords = errors.New("anatree: too many words (max 32)")

	// ErrNonASCIIOrEmptyWord is returned when a word is empty or contains a
	// byte outside ASCII letters (A-Z, a-z).
	ErrNonASCIIOrEmptyWord = errors.New("anatree: word is empty or contains non-ASCII-letter characters")

	// ErrDuplicateWord is returned when two input words are identical after
	// case folding.
	ErrDuplicateWord = errors.New("anatree: duplicate word")
)

// errInternalInvariant is raised only when the solver cannot find any
// legal candidate for a sub-problem that should always have one (the split
// catalogue's exception rules exist precisely to guarantee a split remains
// available whenever two or more distinct words remain). It should never
// surface in a correctly functioning build; its presence in a test failure
// points at a solver bug, not a bad input.
var errInternalInvariant = errors.New("anatree: internal invariant violation")
