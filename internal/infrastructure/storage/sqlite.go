package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"svw.info/sudokugen/internal/codec"
	"svw.info/sudokugen/internal/domain"
)

// SQLite persists puzzle results in a single-table SQLite database. Grids
// are stored as 81-character digit strings, the same representation the
// codec uses on the wire.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and migrates the
// schema. ":memory:" is supported for tests.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id           TEXT PRIMARY KEY,
		seed         INTEGER NOT NULL,
		difficulty   TEXT NOT NULL,
		clue_count   INTEGER NOT NULL,
		symmetry     TEXT NOT NULL,
		puzzle       TEXT NOT NULL,
		solution     TEXT NOT NULL,
		name         TEXT DEFAULT '',
		notes        TEXT DEFAULT '',
		generated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_puzzles_difficulty ON puzzles(difficulty);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) Save(ctx context.Context, p *domain.PuzzleResult) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO puzzles
			(id, seed, difficulty, clue_count, symmetry, puzzle, solution, name, notes, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Seed, p.Difficulty.String(), p.ClueCount, p.Symmetry.String(),
		codec.GridString(&p.Puzzle), codec.GridString(&p.Solution),
		p.Name, p.Notes, p.GeneratedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.PuzzleResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seed, difficulty, clue_count, symmetry, puzzle, solution, name, notes, generated_at
		FROM puzzles WHERE id = ?`, id)

	var p domain.PuzzleResult
	var diff, sym, puz, sol, generatedAt string
	err := row.Scan(&p.ID, &p.Seed, &diff, &p.ClueCount, &sym, &puz, &sol, &p.Name, &p.Notes, &generatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	if p.Difficulty, err = domain.ParseDifficulty(diff); err != nil {
		return nil, err
	}
	if v, ok := domain.ParseSymmetry(sym); ok {
		p.Symmetry = v
	}
	if p.Puzzle, err = codec.ParseGridString(puz); err != nil {
		return nil, err
	}
	if p.Solution, err = codec.ParseGridString(sol); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339Nano, generatedAt); err == nil {
		p.GeneratedAt = t
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, difficulty, clue_count, generated_at
		FROM puzzles ORDER BY generated_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var diff, generatedAt string
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.ClueCount, &generatedAt); err != nil {
			return nil, err
		}
		if m.Difficulty, err = domain.ParseDifficulty(diff); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, generatedAt); err == nil {
			m.GeneratedAt = t
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }
