package attention

import "errors"

// Sentinel errors returned by head and multi-head construction and compute.
// All contract violations are detected synchronously, before any
// computation runs; a Compute call either returns a fully formed result
// or one of these (wrapped with detail via %w).
var (
	// ErrShapeMismatch reports a dimension inconsistency among inputs,
	// weights, or mask.
	ErrShapeMismatch = errors.New("attention: shape mismatch")

	// ErrEmptyHeadSet reports a multi-head construction with zero heads.
	ErrEmptyHeadSet = errors.New("attention: empty head set")

	// ErrInvalidDimension reports an invalid construction-time
	// configuration: embedding dimension < 1 or bad axis roles.
	ErrInvalidDimension = errors.New("attention: invalid dimension")
)
