// Package word holds the fundamental, read-only primitives the anatree
// solver is built on: the per-word feature vector (letter content, letter
// positions, doubled/tripled letters) and the word-set bitmask that every
// sub-problem in the solver is keyed on.
//
// Mirrors the role lvlath/core plays for the graph packages: a small,
// dependency-free layer of data that every higher-level package imports but
// that never imports anything back.
//
//	word/       — this package: Word features + Mask bitmask arithmetic
//	(root)      — split catalogue, constraint propagation, solver, tree merge
//
// Nothing here performs validation of raw user input (ASCII-ness, emptiness,
// duplicates); that is the caller's responsibility (see the root package's
// validate.go), because those are solve-call-level policy decisions, not
// properties of a single word.
package word
