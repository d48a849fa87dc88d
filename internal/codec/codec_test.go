package codec

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/validator"
)

// A well-posed puzzle and its unique solution.
var puzzle = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func newCodec() *Codec {
	return New(solver.NewBacktrackingSolver(), validator.New())
}

func TestStringRoundTrip(t *testing.T) {
	c := newCodec()
	out, err := c.Export(&Payload{Puzzle: puzzle}, FormatString)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(out) != 81 {
		t.Fatalf("string export has %d bytes", len(out))
	}
	back, err := c.Import(context.Background(), out, FormatString)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if back.Puzzle != puzzle {
		t.Fatalf("round trip changed the grid")
	}
}

func TestObjectRoundTripWithSolution(t *testing.T) {
	c := newCodec()
	sol := solution
	out, err := c.Export(&Payload{Puzzle: puzzle, Solution: &sol, Difficulty: "medium"}, FormatObject)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	back, err := c.Import(context.Background(), out, FormatObject)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if back.Puzzle != puzzle || back.Solution == nil || *back.Solution != solution || back.Difficulty != "medium" {
		t.Fatalf("object round trip lost data")
	}
}

func TestArrayRoundTrip(t *testing.T) {
	c := newCodec()
	out, err := c.Export(&Payload{Puzzle: puzzle}, FormatArray)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	back, err := c.Import(context.Background(), out, FormatArray)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if back.Puzzle != puzzle {
		t.Fatalf("array round trip changed the grid")
	}
}

func TestUnknownFormat(t *testing.T) {
	c := newCodec()
	if _, err := c.Export(&Payload{Puzzle: puzzle}, Format("xml")); !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("Export: want ErrUnsupportedFormat, got %v", err)
	}
	if _, err := c.Import(context.Background(), []byte("x"), Format("xml")); !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("Import: want ErrUnsupportedFormat, got %v", err)
	}
}

func TestImportRejectsBadShape(t *testing.T) {
	c := newCodec()
	if _, err := c.Import(context.Background(), []byte("123"), FormatString); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("short string: want ErrInvalidGrid, got %v", err)
	}
	bad := make([]byte, 81)
	for i := range bad {
		bad[i] = 'x'
	}
	if _, err := c.Import(context.Background(), bad, FormatString); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("non-digits: want ErrInvalidGrid, got %v", err)
	}
}

func TestImportRejectsIllegalPlacements(t *testing.T) {
	c := newCodec()
	g := puzzle
	g[0][2] = 5 // duplicates the 5 in row 0
	data, _ := c.Export(&Payload{Puzzle: g}, FormatArray)
	if _, err := c.Import(context.Background(), data, FormatArray); !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("want ErrValidationFailed, got %v", err)
	}
}

func TestImportRejectsSolutionMismatch(t *testing.T) {
	c := newCodec()
	g := puzzle
	g[2][0] = 2 // legal placement, but the solution has 1 here
	sol := solution
	data, err := c.Export(&Payload{Puzzle: g, Solution: &sol}, FormatObject)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, err := c.Import(context.Background(), data, FormatObject); !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("want ErrValidationFailed, got %v", err)
	}
}

func TestImportRejectsNonUniquePuzzle(t *testing.T) {
	c := newCodec()
	g := solution
	// blank an unavoidable rectangle: two completions remain
	g[0][3], g[0][4], g[3][3], g[3][4] = 0, 0, 0, 0
	data, _ := c.Export(&Payload{Puzzle: g}, FormatArray)
	if _, err := c.Import(context.Background(), data, FormatArray); !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("want ErrValidationFailed, got %v", err)
	}
}

func TestImportRejectsIncompleteSolution(t *testing.T) {
	c := newCodec()
	sol := solution
	sol[8][8] = 0
	data, _ := c.Export(&Payload{Puzzle: puzzle, Solution: &sol}, FormatObject)
	if _, err := c.Import(context.Background(), data, FormatObject); !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("want ErrValidationFailed, got %v", err)
	}
}
