// Package codec serializes puzzles for exchange and validates what comes
// back in. Three representations are supported: a structured JSON object,
// a flat 81-character digit string (row-major, 0 for empty), and a raw
// 9x9 JSON array.
package codec

import (
	"context"
	"encoding/json"
	"fmt"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Format selects an exchange representation.
type Format string

const (
	FormatObject Format = "object"
	FormatString Format = "string"
	FormatArray  Format = "array"
)

// Payload is the structured exchange form. Solution and metadata are
// optional; the string and array formats carry the puzzle grid only.
type Payload struct {
	Puzzle     domain.Grid  `json:"puzzle"`
	Solution   *domain.Grid `json:"solution,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	Symmetry   string       `json:"symmetry,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
}

// Codec exports and imports puzzles. Import runs the full validation
// gauntlet, which needs a solver for the uniqueness check.
type Codec struct {
	Solver    ports.Solver
	Validator ports.Validator
}

func New(s ports.Solver, v ports.Validator) *Codec {
	return &Codec{Solver: s, Validator: v}
}

// Export serializes p in the given format.
func (c *Codec) Export(p *Payload, f Format) ([]byte, error) {
	switch f {
	case FormatObject:
		return json.Marshal(p)
	case FormatString:
		return []byte(GridString(&p.Puzzle)), nil
	case FormatArray:
		return json.Marshal(p.Puzzle)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
}

// Import parses data in the given format and validates it: value range,
// placement legality, puzzle/solution agreement when a solution is
// supplied, and solution uniqueness. Any violation fails the import.
func (c *Codec) Import(ctx context.Context, data []byte, f Format) (*Payload, error) {
	var p Payload
	switch f {
	case FormatObject:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGrid, err)
		}
	case FormatString:
		g, err := ParseGridString(string(data))
		if err != nil {
			return nil, err
		}
		p.Puzzle = g
	case FormatArray:
		if err := json.Unmarshal(data, &p.Puzzle); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGrid, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
	}
	if err := c.validate(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Codec) validate(ctx context.Context, p *Payload) error {
	if err := p.Puzzle.CheckValues(); err != nil {
		return err
	}
	ok, conflicts, err := c.Validator.Validate(ctx, &p.Puzzle)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d conflicting placements", domain.ErrValidationFailed, len(conflicts))
	}
	if p.Solution != nil {
		if err := p.Solution.CheckValues(); err != nil {
			return err
		}
		ok, _, err := c.Validator.Validate(ctx, p.Solution)
		if err != nil {
			return err
		}
		if !ok || p.Solution.Clues() != 81 {
			return fmt.Errorf("%w: solution is not a complete legal grid", domain.ErrValidationFailed)
		}
		for r := 0; r < 9; r++ {
			for col := 0; col < 9; col++ {
				if v := p.Puzzle[r][col]; v != 0 && v != p.Solution[r][col] {
					return fmt.Errorf("%w: puzzle cell (%d,%d)=%d contradicts solution %d",
						domain.ErrValidationFailed, r, col, v, p.Solution[r][col])
				}
			}
		}
	}
	unique, _, err := c.Solver.Unique(ctx, &p.Puzzle)
	if err != nil {
		return err
	}
	if !unique {
		return fmt.Errorf("%w: puzzle does not have a unique solution", domain.ErrValidationFailed)
	}
	return nil
}

// GridString renders g as 81 row-major digits, 0 for empty.
func GridString(g *domain.Grid) string {
	buf := make([]byte, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			buf = append(buf, '0'+g[r][c])
		}
	}
	return string(buf)
}

// ParseGridString is the inverse of GridString.
func ParseGridString(s string) (domain.Grid, error) {
	var g domain.Grid
	if len(s) != 81 {
		return g, fmt.Errorf("%w: grid string has %d characters, want 81", domain.ErrInvalidGrid, len(s))
	}
	for i := 0; i < 81; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return g, fmt.Errorf("%w: non-digit %q at index %d", domain.ErrInvalidGrid, ch, i)
		}
		g[i/9][i%9] = ch - '0'
	}
	return g, nil
}
