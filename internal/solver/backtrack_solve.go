package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

var errUnsolvable = errors.New("unsolvable or canceled")

// solveInPlace fills g by depth-first search over row-major first-empty
// cells. Every failing branch zeroes its cell again, so a false return
// leaves g exactly as it was passed in. nodes counts candidate trials.
func solveInPlace(ctx context.Context, g *domain.Grid, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := findEmpty(g)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if IsAllowed(g, r, c, v) {
			g[r][c] = v
			if solveInPlace(ctx, g, nodes) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}

// Solve returns a solved copy of g, leaving g untouched. An unsatisfiable
// grid (or a canceled context) is an error, not a partial result.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckValues(); err != nil {
		return nil, ports.Stats{}, err
	}
	grid := *g
	nodes := 0
	if !solveInPlace(ctx, &grid, &nodes) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, fmt.Errorf("solve: %w", errUnsolvable)
	}
	return &grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
