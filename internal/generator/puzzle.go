package generator

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/rng"
)

// DefaultMaxAttempts bounds the assembly loop: complete grid, symmetry
// pick, carve, clue-count check.
const DefaultMaxAttempts = 50

// symmetries is the fixed list the orchestrator picks from per attempt.
var symmetries = [...]domain.Symmetry{
	domain.SymmetryCentral,
	domain.SymmetryHorizontal,
	domain.SymmetryVertical,
	domain.SymmetryDiagonal,
	domain.SymmetryRotational,
	domain.SymmetryNone,
}

// PuzzleGenerator assembles playable puzzles: it picks a target clue count
// inside the difficulty band, drives the complete-grid filler and the
// symmetric reducer, and retries until the clue count lands in range.
// Every random draw derives from the seed, so the same (difficulty, seed)
// reproduces the same puzzle, solution, symmetry, and clue count.
type PuzzleGenerator struct {
	Complete    *CompleteGridGenerator
	Reducer     *SymmetricReducer
	MaxAttempts int
}

// NewPuzzleGenerator wires a generator that uses the given solver for
// uniqueness checks during reduction.
func NewPuzzleGenerator(s ports.Solver) *PuzzleGenerator {
	return &PuzzleGenerator{
		Complete:    NewCompleteGridGenerator(),
		Reducer:     NewSymmetricReducer(s),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Generate creates a puzzle with a unique solution and a clue count inside
// the difficulty's band. Exhausting the attempt budget is a hard failure:
// no out-of-band puzzle is ever returned.
func (g *PuzzleGenerator) Generate(ctx context.Context, difficulty domain.Difficulty, seed int64) (*domain.PuzzleResult, ports.Stats, error) {
	start := time.Now()
	band, err := domain.BandFor(difficulty)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	targetClues := band.MinClues + rng.Intn(seed, band.MaxClues-band.MinClues+1)
	cellsToRemove := 81 - targetClues

	var stats ports.Stats
	for attempt := 0; attempt < g.maxAttempts(); attempt++ {
		attemptSeed := seed + int64(attempt)
		complete, err := g.Complete.Complete(ctx, attemptSeed)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, stats, ctxErr
			}
			continue // a failed fill burns one attempt
		}
		sym := symmetries[rng.Intn(attemptSeed+1000, len(symmetries))]
		red, st, err := g.Reducer.Reduce(ctx, complete, cellsToRemove, sym, attemptSeed)
		stats.Nodes += st.Nodes
		if err != nil {
			stats.Duration = time.Since(start)
			return nil, stats, err
		}
		clues := 81 - red.Removed
		if !band.Contains(clues) {
			continue
		}
		stats.Duration = time.Since(start)
		return &domain.PuzzleResult{
			Seed:        seed,
			Difficulty:  difficulty,
			Puzzle:      red.Puzzle,
			Solution:    red.Solution,
			ClueCount:   clues,
			Symmetry:    sym,
			GeneratedAt: time.Now().UTC(),
		}, stats, nil
	}
	stats.Duration = time.Since(start)
	return nil, stats, fmt.Errorf("%w: difficulty %v seed %d after %d attempts",
		domain.ErrGenerationExhausted, difficulty, seed, g.maxAttempts())
}

func (g *PuzzleGenerator) maxAttempts() int {
	if g.MaxAttempts > 0 {
		return g.MaxAttempts
	}
	return DefaultMaxAttempts
}
