package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core. Retryable dead-ends inside the search
// (a failed backtracking branch, a rejected removal candidate) are handled
// locally and never reach these.
var (
	// ErrInvalidGrid marks malformed input: out-of-range cell values.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrGenerationFailed means the complete-grid fill exhausted its retry budget.
	ErrGenerationFailed = errors.New("complete grid generation failed")
	// ErrGenerationExhausted means the puzzle assembly loop ran out of attempts.
	ErrGenerationExhausted = errors.New("puzzle generation attempts exhausted")
	// ErrInvalidDifficulty marks an unknown difficulty name.
	ErrInvalidDifficulty = errors.New("unknown difficulty")
	// ErrValidationFailed marks an imported puzzle that breaks a contract:
	// illegal placements, puzzle/solution mismatch, or a non-unique solution.
	ErrValidationFailed = errors.New("puzzle validation failed")
	// ErrUnsupportedFormat marks an unknown export/import format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

func invalidGridValue(r, c int, v uint8) error {
	return fmt.Errorf("%w: value %d at r=%d c=%d", ErrInvalidGrid, v, r, c)
}
