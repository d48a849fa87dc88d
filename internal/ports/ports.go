package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of a search operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a grid and can test solution uniqueness. Implementations
// work on a private copy; the caller's grid is never mutated.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Generator deterministically creates new puzzles at a target difficulty.
// The same (difficulty, seed) pair always yields the same puzzle.
type Generator interface {
	Generate(ctx context.Context, difficulty domain.Difficulty, seed int64) (*domain.PuzzleResult, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.Position, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves generated puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.PuzzleResult) error
	Load(ctx context.Context, id string) (*domain.PuzzleResult, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Close() error
}
