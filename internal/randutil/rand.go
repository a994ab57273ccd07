// Package randutil derives reproducible random sources from a single seed.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's PCG
// wants two 64-bit words, so both are derived from the one seed here and
// every caller gets the same sequence for the same value.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream under base. The
// simulator uses it to give each game its own RNG regardless of which worker
// ends up playing it.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base) + uint64(n)*goldenRatio64))
}

// Seed returns seed unchanged unless it is zero, in which case a fresh seed
// is drawn from crypto/rand so that "no seed" still yields a loggable value.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return int64(rand.Uint64())
	}
	s := int64(binary.LittleEndian.Uint64(buf[:]))
	if s == 0 {
		s = 1
	}
	return s
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
