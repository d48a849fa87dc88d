package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/sudokugen/internal/validator"
)

func TestCompleteProducesValidFullGrid(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cg := NewCompleteGridGenerator()

	for _, seed := range []int64{0, 1, 42, -17, 99999} {
		g, err := cg.Complete(ctx, seed)
		if err != nil {
			t.Fatalf("Complete(seed=%d): %v", seed, err)
		}
		if !validator.New().IsCompleteAndValid(ctx, g) {
			t.Fatalf("Complete(seed=%d) produced an invalid grid:\n%v", seed, *g)
		}
	}
}

func TestCompleteRowsColsBoxesArePermutations(t *testing.T) {
	ctx := context.Background()
	g, err := NewCompleteGridGenerator().Complete(ctx, 42)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	for i := 0; i < 9; i++ {
		var row, col, box [10]bool
		for j := 0; j < 9; j++ {
			row[g[i][j]] = true
			col[g[j][i]] = true
			box[g[(i/3)*3+j/3][(i%3)*3+j%3]] = true
		}
		for v := 1; v <= 9; v++ {
			if !row[v] || !col[v] || !box[v] {
				t.Fatalf("unit %d misses value %d", i, v)
			}
		}
	}
}

func TestCompleteIsDeterministic(t *testing.T) {
	ctx := context.Background()
	cg := NewCompleteGridGenerator()
	a, err := cg.Complete(ctx, 1234)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	b, err := cg.Complete(ctx, 1234)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if *a != *b {
		t.Fatalf("same seed produced different grids")
	}
	c, err := cg.Complete(ctx, 1235)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if *a == *c {
		t.Fatalf("adjacent seeds produced identical grids")
	}
}

func TestCompleteHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewCompleteGridGenerator().Complete(ctx, 42); err == nil {
		t.Fatalf("canceled context should not produce a grid")
	}
}
