package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

/// A grid with no valid completion.
var contradiction = domain.Grid{
	{0, 0, 0, 0, 0, 0, 0, 1, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 1, 0, 0},
	{1, 2, 3, 4, 5, 6, 0, 0, 0},
	{0, 0, 0, 1, 2, 3, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 2, 0},
	{2, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 2, 1, 0, 0, 0, 0},
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in := sample
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, &in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	// no zeros
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
	// valid by fast validator
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveLeavesInputUntouched(t *testing.T) {
	in := sample
	s := NewBacktrackingSolver()
	if _, _, err := s.Solve(context.Background(), &in); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if in != sample {
		t.Fatalf("Solve mutated its input")
	}
}

func TestSolveInPlaceRollsBackOnFailure(t *testing.T) {
	// The in-place engine must restore every cell along failing branches, so
	// an unsatisfiable grid comes back exactly as it went in.
	g := contradiction
	nodes := 0
	if solveInPlace(context.Background(), &g, &nodes) {
		t.Fatalf("contradictory grid reported solvable")
	}
	if g != contradiction {
		t.Fatalf("failed solve left the grid dirty:\n%v\nwant\n%v", g, contradiction)
	}
}

func TestSolveRejectsOutOfRangeValues(t *testing.T) {
	g := sample
	g[0][2] = 13
	s := NewBacktrackingSolver()
	if _, _, err := s.Solve(context.Background(), &g); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("want ErrInvalidGrid, got %v", err)
	}
	if _, _, err := s.Unique(context.Background(), &g); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("Unique: want ErrInvalidGrid, got %v", err)
	}
}
