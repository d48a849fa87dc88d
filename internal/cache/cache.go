// Package cache memoizes generated puzzles. Generation for a given
// (difficulty, seed) pair is deterministic, so a cached result is
// indistinguishable from a regenerated one; caching only saves the search.
package cache

import (
	"fmt"
	"sync"

	"svw.info/sudokugen/internal/domain"
)

// Key derives the cache key for a generation request. Daily and tournament
// puzzles funnel through the same derivation after their seed is computed,
// which is what makes cached calendar puzzles reproducible.
func Key(d domain.Difficulty, seed int64) string {
	return fmt.Sprintf("%s:%d", d, seed)
}

// PuzzleCache is a bounded, mutex-guarded FIFO cache of puzzle results.
// It is injected into the orchestrating service rather than held globally,
// so generation stays testable without shared state.
type PuzzleCache struct {
	mu        sync.RWMutex
	entries   map[string]*domain.PuzzleResult
	order     []string // insertion order, oldest first
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// New creates a cache with the given maximum size. When full, the oldest
// entry is evicted. maxSize 0 means unbounded.
func New(maxSize int) *PuzzleCache {
	return &PuzzleCache{
		entries: make(map[string]*domain.PuzzleResult),
		maxSize: maxSize,
	}
}

// Get retrieves a cached result, or nil.
func (c *PuzzleCache) Get(key string) *domain.PuzzleResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[key]; ok {
		c.hits++
		return p
	}
	c.misses++
	return nil
}

// Put stores a result, evicting the oldest entry if the cache is full.
func (c *PuzzleCache) Put(key string, p *domain.PuzzleResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		c.entries[key] = p
		return
	}
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.evictions++
	}
	c.entries[key] = p
	c.order = append(c.order, key)
}

// GetOrCompute retrieves from cache or computes and caches the result.
// Errors from compute are passed through uncached.
func (c *PuzzleCache) GetOrCompute(key string, compute func() (*domain.PuzzleResult, error)) (*domain.PuzzleResult, error) {
	if p := c.Get(key); p != nil {
		return p, nil
	}
	p, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(key, p)
	return p, nil
}

// Clear removes all entries.
func (c *PuzzleCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*domain.PuzzleResult)
	c.order = nil
}

// Size returns the current number of cached entries.
func (c *PuzzleCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats describes cache effectiveness.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns a snapshot of the cache counters.
func (c *PuzzleCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return Stats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   rate,
	}
}
