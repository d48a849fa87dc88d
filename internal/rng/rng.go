// Package rng provides the seeded pseudo-randomness behind puzzle
// generation. Every function is a pure function of its seed, so any draw in
// the generation pipeline can be replayed bit-for-bit from the seed alone.
package rng

import "math"

// Value maps a seed to a pseudo-random value in [0,1).
// Sine-based: the fractional part of a scaled sine spreads nearby seeds
// across the unit interval. No hidden state, no entropy.
func Value(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	f := x - math.Floor(x)
	if f >= 1 { // guard against rounding at the boundary
		f = 0
	}
	return f
}

// Intn maps a seed to an integer in [0,n). n must be positive.
func Intn(seed int64, n int) int {
	return int(Value(seed) * float64(n))
}

// Shuffle returns a new slice holding a seeded Fisher-Yates permutation of
// seq. The swap index at step i draws from Value(seed+i), so the same seed
// and length always produce the same permutation. The input is not modified.
func Shuffle[T any](seq []T, seed int64) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		j := Intn(seed+int64(i), i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Digits returns 1..9 shuffled under the seed. This is the candidate
// ordering used by the complete-grid filler.
func Digits(seed int64) [9]uint8 {
	digits := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	var out [9]uint8
	copy(out[:], Shuffle(digits, seed))
	return out
}
