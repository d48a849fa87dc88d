package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"svw.info/sudokugen/internal/cache"
	"svw.info/sudokugen/internal/codec"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/rng"
)

// Service is the application facade: generation (direct, daily, and
// tournament), solving, validation, hints, exchange, and persistence.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
	Cache     *cache.PuzzleCache
	Codec     *codec.Codec
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage, c *cache.PuzzleCache, cd *codec.Codec) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st, Cache: c, Codec: cd}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

// Generate returns the puzzle for (difficulty, seed), consulting the cache
// first. Generation is deterministic, so a hit and a fresh run are the
// same result; the stats are zero on a hit.
func (u *Service) Generate(ctx context.Context, d domain.Difficulty, seed int64) (*domain.PuzzleResult, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if u.Cache == nil {
		return u.Generator.Generate(ctx, d, seed)
	}
	key := cache.Key(d, seed)
	if p := u.Cache.Get(key); p != nil {
		return p, ports.Stats{}, nil
	}
	p, st, err := u.Generator.Generate(ctx, d, seed)
	if err != nil {
		return nil, st, err
	}
	u.Cache.Put(key, p)
	return p, st, nil
}

// Daily generates the puzzle of a calendar day by hashing the day string
// into a seed. The same day always maps to the same puzzle.
func (u *Service) Daily(ctx context.Context, day string, d domain.Difficulty) (*domain.PuzzleResult, ports.Stats, error) {
	return u.Generate(ctx, d, rng.DateSeed(day))
}

// Tournament generates the puzzle of a tournament level from the
// tournament's base seed.
func (u *Service) Tournament(ctx context.Context, base int64, level int, d domain.Difficulty) (*domain.PuzzleResult, ports.Stats, error) {
	return u.Generate(ctx, d, rng.TournamentSeed(base, level))
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Position, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}

// Exchange
func (u *Service) Export(p *codec.Payload, f codec.Format) ([]byte, error) {
	if u.Codec == nil {
		return nil, errNotConfigured
	}
	return u.Codec.Export(p, f)
}

func (u *Service) Import(ctx context.Context, data []byte, f codec.Format) (*codec.Payload, error) {
	if u.Codec == nil {
		return nil, errNotConfigured
	}
	return u.Codec.Import(ctx, data, f)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.PuzzleResult) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.PuzzleResult, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
