package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewPuzzleGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, tc.diff, seed)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			band, _ := domain.BandFor(tc.diff)
			if !band.Contains(p.ClueCount) {
				t.Fatalf("clue count %d outside band [%d,%d]", p.ClueCount, band.MinClues, band.MaxClues)
			}
			if p.Puzzle.Clues() != p.ClueCount {
				t.Fatalf("ClueCount %d disagrees with grid clues %d", p.ClueCount, p.Puzzle.Clues())
			}
			// verify uniqueness
			ok, _, err := s.Unique(ctx, &p.Puzzle)
			if err != nil || !ok {
				t.Fatalf("puzzle for %s is not unique (err=%v)", tc.name, err)
			}
			// the puzzle must solve to exactly the packaged solution
			solved, _, err := s.Solve(ctx, &p.Puzzle)
			if err != nil || *solved != p.Solution {
				t.Fatalf("puzzle does not solve to its solution (err=%v)", err)
			}
			t.Logf("%s: clues=%d sym=%v nodes=%d dur=%v", tc.name, p.ClueCount, p.Symmetry, st.Nodes, st.Duration)
		})
	}
}

func TestGenerateSeed42EasyLandsInBand(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	g := NewPuzzleGenerator(solver.NewBacktrackingSolver())

	p, _, err := g.Generate(ctx, domain.Easy, 42)
	if err != nil {
		t.Fatalf("Generate(easy, 42): %v", err)
	}
	if p.ClueCount < 36 || p.ClueCount > 46 {
		t.Fatalf("easy seed 42: clue count %d outside [36,46]", p.ClueCount)
	}
	// re-running must reproduce the same clue count and symmetry
	q, _, err := g.Generate(ctx, domain.Easy, 42)
	if err != nil {
		t.Fatalf("Generate(easy, 42) rerun: %v", err)
	}
	if q.ClueCount != p.ClueCount || q.Symmetry != p.Symmetry {
		t.Fatalf("rerun diverged: clues %d/%d, symmetry %v/%v",
			p.ClueCount, q.ClueCount, p.Symmetry, q.Symmetry)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	g := NewPuzzleGenerator(solver.NewBacktrackingSolver())

	a, _, err := g.Generate(ctx, domain.Medium, 777)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _, err := g.Generate(ctx, domain.Medium, 777)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Puzzle != b.Puzzle || a.Solution != b.Solution ||
		a.Symmetry != b.Symmetry || a.ClueCount != b.ClueCount {
		t.Fatalf("identical (difficulty, seed) produced different results")
	}
}

func TestGenerateUnknownDifficulty(t *testing.T) {
	g := NewPuzzleGenerator(solver.NewBacktrackingSolver())
	if _, _, err := g.Generate(context.Background(), domain.Difficulty(42), 1); !errors.Is(err, domain.ErrInvalidDifficulty) {
		t.Fatalf("want ErrInvalidDifficulty, got %v", err)
	}
}

func TestGenerateWithDLXSolver(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	g := NewPuzzleGenerator(solver.NewDLXSolver())

	p, _, err := g.Generate(ctx, domain.Hard, 42)
	if err != nil {
		t.Fatalf("Generate with DLX: %v", err)
	}
	ok, _, err := solver.NewDLXSolver().Unique(ctx, &p.Puzzle)
	if err != nil || !ok {
		t.Fatalf("DLX-generated puzzle not unique (err=%v)", err)
	}
}
