package domain

import (
	"fmt"
	"strings"
)

// Difficulty labels a target clue band.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a name to a Difficulty. Unknown names fail closed
// rather than defaulting to a band.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Band is the inclusive clue-count range for a difficulty.
type Band struct {
	MinClues int `json:"minClues"`
	MaxClues int `json:"maxClues"`
}

// Contains reports whether a clue count lands inside the band.
func (b Band) Contains(clues int) bool {
	return clues >= b.MinClues && clues <= b.MaxClues
}

var bands = map[Difficulty]Band{
	Easy:   {MinClues: 36, MaxClues: 46},
	Medium: {MinClues: 32, MaxClues: 35},
	Hard:   {MinClues: 28, MaxClues: 31},
	Expert: {MinClues: 22, MaxClues: 27},
}

// BandFor returns the fixed clue band for a difficulty.
func BandFor(d Difficulty) (Band, error) {
	b, ok := bands[d]
	if !ok {
		return Band{}, fmt.Errorf("%w: %v", ErrInvalidDifficulty, d)
	}
	return b, nil
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
	StrategyXWing                       // advanced fish (placeholder for cap)
)
