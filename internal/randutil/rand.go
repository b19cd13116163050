// Package randutil centralises how RNGs are seeded so that every
// simulation is reproducible from a single int64 seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. rand/v2's PCG wants two well-mixed 64-bit seeds; mixing here
// means callers can pass small sequential seeds without correlated
// streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// GameSeed derives the seed for the nth game of a run. The derivation
// depends only on the run seed and the game index, so results are
// identical regardless of how games are spread across workers.
func GameSeed(runSeed int64, index int) int64 {
	return int64(mix(uint64(runSeed)) + uint64(index)*goldenRatio64)
}

// mix is splitmix64's finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
