package generator

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/rng"
	"svw.info/sudokugen/internal/solver"
)

// fillAttempts bounds the perturbed-seed retries of Complete.
const fillAttempts = 10

// CompleteGridGenerator produces fully solved grids via seeded randomized
// backtracking. The same seed always yields the same grid.
type CompleteGridGenerator struct{}

func NewCompleteGridGenerator() *CompleteGridGenerator { return &CompleteGridGenerator{} }

// Complete fills an empty grid from the seed. On search exhaustion it
// retries with seed+attempt up to fillAttempts times before reporting
// ErrGenerationFailed.
func (cg *CompleteGridGenerator) Complete(ctx context.Context, seed int64) (*domain.Grid, error) {
	for attempt := 0; attempt < fillAttempts; attempt++ {
		var g domain.Grid
		if fillFrom(ctx, &g, 0, seed+int64(attempt)) {
			return &g, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: seed %d after %d attempts", domain.ErrGenerationFailed, seed, fillAttempts)
}

// fillFrom fills cells idx..80 in row-major order. The candidate order at
// cell idx is the seeded shuffle of 1..9 under seed+idx, which is what makes
// the whole fill a pure function of the seed. Failing branches zero their
// cell before returning.
func fillFrom(ctx context.Context, g *domain.Grid, idx int, seed int64) bool {
	if ctx.Err() != nil {
		return false
	}
	if idx == 81 {
		return true
	}
	r, c := idx/9, idx%9
	digits := rng.Digits(seed + int64(idx))
	for _, v := range digits {
		if solver.IsAllowed(g, r, c, v) {
			g[r][c] = v
			if fillFrom(ctx, g, idx+1, seed) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}
