package domain

// Grid is a 9x9 Sudoku board; 0 marks an empty cell.
// It is a value type, so assignment copies the whole board.
type Grid [9][9]uint8

// Position identifies a cell on the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index returns the row-major cell index in [0,81).
func (p Position) Index() int { return p.Row*9 + p.Col }

// Box returns the 3x3 box index in [0,9).
func (p Position) Box() int { return (p.Row/3)*3 + p.Col/3 }

// PositionAt is the inverse of Position.Index.
func PositionAt(idx int) Position { return Position{Row: idx / 9, Col: idx % 9} }

// Clues counts the filled cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CheckValues reports ErrInvalidGrid if any cell holds a value outside {0..9}.
// Dimensions are fixed by the type, so value range is the only shape check.
func (g *Grid) CheckValues() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return invalidGridValue(r, c, g[r][c])
			}
		}
	}
	return nil
}
