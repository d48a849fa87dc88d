package generator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/rng"
)

// SymmetricReducer carves cells out of a complete grid, whole symmetry
// orbits at a time, keeping only removals that preserve solution
// uniqueness. Greedy and order-sensitive: a committed removal is never
// revisited, so the final clue count depends on the shuffle order.
type SymmetricReducer struct {
	Solver ports.Solver
}

func NewSymmetricReducer(s ports.Solver) *SymmetricReducer {
	return &SymmetricReducer{Solver: s}
}

// Reduction is the outcome of one carve pass. Solution is the untouched
// complete grid; Removed may fall short of the request when no further
// symmetric removal keeps the solution unique.
type Reduction struct {
	Puzzle   domain.Grid
	Solution domain.Grid
	Removed  int
}

// Reduce removes up to cellsToRemove cells from complete under the
// symmetry. Removal priority is the seeded shuffle of all 81 positions.
// An orbit is skipped when any member is already empty (a partial removal
// would break the symmetry of the empty-cell pattern), committed when the
// puzzle stays uniquely solvable, and restored in full otherwise.
func (sr *SymmetricReducer) Reduce(ctx context.Context, complete *domain.Grid, cellsToRemove int, sym domain.Symmetry, seed int64) (Reduction, ports.Stats, error) {
	red := Reduction{Puzzle: *complete, Solution: *complete}
	var stats ports.Stats

	positions := make([]domain.Position, 81)
	for i := range positions {
		positions[i] = domain.PositionAt(i)
	}
	order := rng.Shuffle(positions, seed)

	saved := make([]uint8, 0, 4)
	for _, p := range order {
		if red.Removed >= cellsToRemove {
			break
		}
		orbit := sym.Orbit(p)
		blocked := false
		for _, q := range orbit {
			if red.Puzzle[q.Row][q.Col] == 0 {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		saved = saved[:0]
		for _, q := range orbit {
			saved = append(saved, red.Puzzle[q.Row][q.Col])
			red.Puzzle[q.Row][q.Col] = 0
		}
		unique, st, err := sr.Solver.Unique(ctx, &red.Puzzle)
		stats.Nodes += st.Nodes
		stats.Duration += st.Duration
		if err != nil {
			for i, q := range orbit {
				red.Puzzle[q.Row][q.Col] = saved[i]
			}
			return Reduction{}, stats, err
		}
		if unique {
			red.Removed += len(orbit)
		} else {
			for i, q := range orbit {
				red.Puzzle[q.Row][q.Col] = saved[i]
			}
		}
	}
	return red, stats, nil
}
