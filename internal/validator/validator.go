package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// FastValidator re-derives row/column/box bitmasks over the filled cells.
// It never re-inserts values, so a grid is judged exactly as it stands.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether g is free of row/column/box conflicts, listing
// the offending cells. Out-of-range values are malformed input and come
// back as ErrInvalidGrid rather than conflicts.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Position, error) {
	if err := g.CheckValues(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.Position, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.Position{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// IsCompleteAndValid reports whether every cell is filled and every row,
// column, and box is a permutation of 1-9.
func (v *FastValidator) IsCompleteAndValid(ctx context.Context, g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	ok, _, err := v.Validate(ctx, g)
	return err == nil && ok
}
