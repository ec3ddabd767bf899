// Package queens - deterministic RNG policy for tie-breaks and restarts.
//
// All randomness flows through a single *rand.Rand built here: same seed,
// identical boards and tie-break choices across platforms. No time-based
// sources anywhere; reproducible benchmarking only requires re-seeding
// before a batch of trials.
package queens

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
