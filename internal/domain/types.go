package domain

import "time"

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []Position   `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// PuzzleResult is one generated puzzle together with its frozen solution.
// It is immutable after construction: regenerating with the same
// (difficulty, seed) must reproduce Puzzle, Solution, Symmetry and
// ClueCount exactly. ID and GeneratedAt are assigned outside the
// deterministic path and excluded from that contract.
type PuzzleResult struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Puzzle     Grid       `json:"puzzle"`
	Solution   Grid       `json:"solution"`
	ClueCount  int        `json:"clueCount"`
	Symmetry   Symmetry   `json:"symmetry"`
	GeneratedAt time.Time `json:"generatedAt"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	ClueCount  int        `json:"clueCount,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}
