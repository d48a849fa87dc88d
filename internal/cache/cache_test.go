package cache

import (
	"errors"
	"testing"

	"svw.info/sudokugen/internal/domain"
)

func result(seed int64) *domain.PuzzleResult {
	return &domain.PuzzleResult{Seed: seed, Difficulty: domain.Easy}
}

func TestKey(t *testing.T) {
	if got := Key(domain.Easy, 42); got != "easy:42" {
		t.Fatalf("Key = %q", got)
	}
	if Key(domain.Easy, 42) == Key(domain.Medium, 42) {
		t.Fatalf("difficulties must not collide")
	}
}

func TestPutGet(t *testing.T) {
	c := New(10)
	if c.Size() != 0 {
		t.Fatalf("new cache not empty")
	}
	if c.Get("easy:1") != nil {
		t.Fatalf("unexpected hit")
	}
	c.Put("easy:1", result(1))
	if got := c.Get("easy:1"); got == nil || got.Seed != 1 {
		t.Fatalf("miss after Put")
	}
	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Size != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestFIFOEviction(t *testing.T) {
	c := New(2)
	c.Put("a", result(1))
	c.Put("b", result(2))
	c.Put("c", result(3)) // evicts "a", the oldest entry
	if c.Get("a") != nil {
		t.Fatalf("oldest entry survived eviction")
	}
	if c.Get("b") == nil || c.Get("c") == nil {
		t.Fatalf("newer entries evicted")
	}
	if st := c.Stats(); st.Evictions != 1 || st.Size != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestPutExistingKeyDoesNotEvict(t *testing.T) {
	c := New(2)
	c.Put("a", result(1))
	c.Put("b", result(2))
	c.Put("a", result(9)) // overwrite, no eviction
	if c.Get("b") == nil {
		t.Fatalf("overwrite evicted a live entry")
	}
	if got := c.Get("a"); got == nil || got.Seed != 9 {
		t.Fatalf("overwrite lost")
	}
}

func TestGetOrCompute(t *testing.T) {
	c := New(4)
	calls := 0
	compute := func() (*domain.PuzzleResult, error) {
		calls++
		return result(7), nil
	}
	for i := 0; i < 3; i++ {
		if _, err := c.GetOrCompute("k", compute); err != nil {
			t.Fatalf("GetOrCompute: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("compute ran %d times, want 1", calls)
	}
	boom := errors.New("boom")
	_, err := c.GetOrCompute("bad", func() (*domain.PuzzleResult, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("error not passed through: %v", err)
	}
	if c.Get("bad") != nil {
		t.Fatalf("failed compute was cached")
	}
}

func TestClear(t *testing.T) {
	c := New(4)
	c.Put("a", result(1))
	c.Clear()
	if c.Size() != 0 || c.Get("a") != nil {
		t.Fatalf("Clear left entries behind")
	}
}
