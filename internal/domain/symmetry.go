package domain

import (
	"fmt"
	"strings"
)

// Symmetry names the geometric constraint used when carving cells out of a
// complete grid. Cells are removed in whole orbits so the pattern of empty
// cells keeps the symmetry.
type Symmetry int

const (
	SymmetryCentral Symmetry = iota
	SymmetryHorizontal
	SymmetryVertical
	SymmetryDiagonal
	SymmetryRotational
	SymmetryNone
)

func (s Symmetry) String() string {
	switch s {
	case SymmetryCentral:
		return "central"
	case SymmetryHorizontal:
		return "horizontal"
	case SymmetryVertical:
		return "vertical"
	case SymmetryDiagonal:
		return "diagonal"
	case SymmetryRotational:
		return "rotational"
	case SymmetryNone:
		return "none"
	}
	return fmt.Sprintf("symmetry(%d)", int(s))
}

// ParseSymmetry maps a name to a Symmetry.
func ParseSymmetry(s string) (Symmetry, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "central":
		return SymmetryCentral, true
	case "horizontal":
		return SymmetryHorizontal, true
	case "vertical":
		return SymmetryVertical, true
	case "diagonal":
		return SymmetryDiagonal, true
	case "rotational":
		return SymmetryRotational, true
	case "none":
		return SymmetryNone, true
	}
	return 0, false
}

// MarshalText encodes the symmetry by name for JSON payloads.
func (s Symmetry) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a symmetry name.
func (s *Symmetry) UnmarshalText(b []byte) error {
	v, ok := ParseSymmetry(string(b))
	if !ok {
		return fmt.Errorf("unknown symmetry %q", string(b))
	}
	*s = v
	return nil
}

// Orbit returns p and every position linked to it under the symmetry,
// de-duplicated. Cells on a symmetry axis (or the grid center) map to
// themselves and collapse, so the orbit size varies from 1 to 4.
func (s Symmetry) Orbit(p Position) []Position {
	r, c := p.Row, p.Col
	linked := []Position{p}
	switch s {
	case SymmetryCentral:
		linked = append(linked, Position{8 - r, 8 - c})
	case SymmetryHorizontal:
		linked = append(linked, Position{r, 8 - c})
	case SymmetryVertical:
		linked = append(linked, Position{8 - r, c})
	case SymmetryDiagonal:
		linked = append(linked, Position{c, r})
	case SymmetryRotational:
		linked = append(linked,
			Position{c, 8 - r},
			Position{8 - r, 8 - c},
			Position{8 - c, r},
		)
	case SymmetryNone:
	}
	orbit := linked[:0]
	for _, q := range linked {
		dup := false
		for _, kept := range orbit {
			if kept == q {
				dup = true
				break
			}
		}
		if !dup {
			orbit = append(orbit, q)
		}
	}
	return orbit
}
