package montecarlo

import "math/rand"

// defaultSeed replaces a zero seed so that the zero Options value is still
// reproducible.
const defaultSeed int64 = 1

// normalizeSeed applies the seed==0 policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, giving well-separated seeds for consecutive streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG returns the private stream of trial t.
// math/rand.Rand is not goroutine-safe; each trial owns its stream.
func trialRNG(seed int64, t int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(t))))
}
