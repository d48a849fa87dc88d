package rng

// DateSeed hashes a day string (e.g. "2024-01-01") into a non-negative
// seed with the rolling hash h = (h<<5) - h + byte, wrapped to 32-bit
// signed range. Cached daily puzzles are keyed by this value, so the
// arithmetic must stay bit-exact.
func DateSeed(day string) int64 {
	var h int32
	for i := 0; i < len(day); i++ {
		h = h<<5 - h + int32(day[i])
	}
	if h < 0 {
		// int32 min negates to itself; its magnitude still fits in int64.
		return -int64(h)
	}
	return int64(h)
}

// TournamentSeed derives the per-level seed of a tournament from its base
// seed. Level steps of 1000 keep the derived generation sequences apart.
func TournamentSeed(base int64, level int) int64 {
	return base + int64(level)*1000
}
