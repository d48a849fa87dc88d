package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c) is filled
//          81..161 -> row r has number v
//          162..242-> col c has number v
//          243..323-> box b has number v, b = (r/3)*3 + (c/3)
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxSize  = 9
	dlxCells = dlxSize * dlxSize // 81
	dlxCols  = 4 * dlxCells      // 324
	dlxRows  = dlxCells * dlxSize // 729 (r,c,v)

	colCellFilled = 0
	colRowHasNum  = 81
	colColHasNum  = 162
	colBoxHasNum  = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	candidate             int // 0..728 identifies the (r,c,v) row
}

type dlxColumn struct {
	dlxNode
	size    int
	covered bool
}

// matrix is one fully linked exact-cover instance. Building it is cheap
// relative to the search, so each Solve/Unique call gets a fresh one.
type matrix struct {
	cols      [dlxCols]*dlxColumn
	rowHead   [dlxRows]*dlxNode
	chosen    [dlxCells]*dlxNode
	chosenLen int
	nodes     int
	uncovered int // count of still-uncovered constraint columns
}

func newMatrix() *matrix {
	m := &matrix{}
	for i := 0; i < dlxCols; i++ {
		col := &dlxColumn{}
		col.up = &col.dlxNode
		col.down = &col.dlxNode
		m.cols[i] = col
	}
	m.uncovered = dlxCols

	for r := 0; r < dlxSize; r++ {
		for c := 0; c < dlxSize; c++ {
			for v := 1; v <= dlxSize; v++ {
				cand := candidateIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range candidateColumns(r, c, v) {
					col := m.cols[colID]
					n := &dlxNode{col: col, candidate: cand}
					// vertical insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring over the candidate's 4 nodes
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rowHead[cand] = first
			}
		}
	}
	return m
}

func candidateIndex(r, c, v int) int {
	return (r*dlxSize+c)*dlxSize + (v - 1) // 0..728
}

func candidateColumns(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		colCellFilled + r*dlxSize + c,
		colRowHasNum + r*dlxSize + (v - 1),
		colColHasNum + c*dlxSize + (v - 1),
		colBoxHasNum + box*dlxSize + (v - 1),
	}
}

func (m *matrix) cover(col *dlxColumn) {
	if !col.covered {
		col.covered = true
		m.uncovered--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *matrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if col.covered {
		col.covered = false
		m.uncovered++
	}
}

// chooseColumn picks the uncovered constraint with the fewest candidates.
func (m *matrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, col := range m.cols {
		if !col.covered {
			if best == nil || col.size < best.size {
				best = col
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

// search counts exact covers until limit is reached. Returns true when the
// search should unwind (limit hit or context canceled).
func (m *matrix) search(ctx context.Context, depth, limit int, found *int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if m.uncovered == 0 {
		m.chosenLen = depth
		*found++
		return *found >= limit
	}

	col := m.chooseColumn()
	if col == nil || col.size == 0 {
		return false
	}
	m.cover(col)
	for r := col.down; r != &col.dlxNode; r = r.down {
		m.nodes++
		m.chosen[depth] = r
		for j := r.right; j != r; j = j.right {
			if !j.col.covered {
				m.cover(j.col)
			}
		}
		if m.search(ctx, depth+1, limit, found) {
			for j := r.left; j != r; j = j.left {
				m.uncover(j.col)
			}
			m.uncover(col)
			return true
		}
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
	}
	m.uncover(col)
	return false
}

// applyGivens selects the candidate row of every filled cell, covering its
// four constraint columns as if chosen at the top of the search.
func (m *matrix) applyGivens(g *domain.Grid) error {
	for r := 0; r < dlxSize; r++ {
		for c := 0; c < dlxSize; c++ {
			v := int(g[r][c])
			if v == 0 {
				continue
			}
			head := m.rowHead[candidateIndex(r, c, v)]
			for j := head; ; j = j.right {
				m.cover(j.col)
				if j.right == head {
					break
				}
			}
		}
	}
	return nil
}

// count builds a matrix for g and counts solutions up to limit.
func (s *DLXSolver) count(ctx context.Context, g *domain.Grid, limit int) (*matrix, int, error) {
	if err := g.CheckValues(); err != nil {
		return nil, 0, err
	}
	m := newMatrix()
	if err := m.applyGivens(g); err != nil {
		return nil, 0, err
	}
	found := 0
	_ = m.search(ctx, 0, limit, &found)
	if err := ctx.Err(); err != nil {
		return m, found, err
	}
	return m, found, nil
}

func (s *DLXSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	m, found, err := s.count(ctx, g, 1)
	if err != nil {
		return nil, statsOf(m, start), err
	}
	if found < 1 {
		return nil, statsOf(m, start), fmt.Errorf("solve: %w", errUnsolvable)
	}
	out := *g
	for i := 0; i < m.chosenLen; i++ {
		r, c, v := decodeCandidate(m.chosen[i].candidate)
		out[r][c] = uint8(v)
	}
	return &out, statsOf(m, start), nil
}

func (s *DLXSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	m, found, err := s.count(ctx, g, 2) // stop the moment a second cover appears
	if err != nil {
		return false, statsOf(m, start), err
	}
	return found == 1, statsOf(m, start), nil
}

func statsOf(m *matrix, start time.Time) ports.Stats {
	st := ports.Stats{Duration: time.Since(start)}
	if m != nil {
		st.Nodes = m.nodes
	}
	return st
}

func decodeCandidate(cand int) (r, c, v int) {
	cell := cand / dlxSize
	return cell / dlxSize, cell % dlxSize, cand%dlxSize + 1
}
