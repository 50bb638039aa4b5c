package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Pattern returns a standard bit pattern for a format with the given exponent
// and significand widths (hidden bit included in sigWidth).
func (r *RNG) Pattern(expWidth, sigWidth int) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.patternLocked(expWidth, sigWidth)
}

// Patterns returns n bit patterns, see Pattern.
func (r *RNG) Patterns(n, expWidth, sigWidth int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.patternLocked(expWidth, sigWidth)
	}
	return out
}

// Int64 returns a pseudo-random int64 biased toward small magnitudes and the
// extremes of the int32 and int64 ranges.
func (r *RNG) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.rand.Intn(6) {
	case 0:
		return int64(r.rand.Intn(2001)) - 1000
	case 1:
		return int64(int32(r.rand.Uint32()))
	case 2:
		return []int64{0, 1, -1, 1<<31 - 1, -1 << 31, 1<<63 - 1, -1 << 63}[r.rand.Intn(7)]
	case 3:
		// Values with a short significand and a large shift round exactly.
		return int64(r.rand.Intn(1<<20)) << uint(r.rand.Intn(40))
	}
	return int64(r.rand.Uint64())
}

func (r *RNG) patternLocked(expWidth, sigWidth int) uint64 {
	fracBits := uint(sigWidth - 1)
	fracMask := uint64(1)<<fracBits - 1
	expMax := uint64(1)<<uint(expWidth) - 1
	bias := expMax >> 1

	var sign uint64
	if r.rand.Intn(2) == 1 {
		sign = 1 << (uint(expWidth) + fracBits)
	}
	pack := func(exp, fract uint64) uint64 {
		return sign | exp<<fracBits | fract&fracMask
	}

	switch r.rand.Intn(16) {
	case 0:
		return pack(0, 0)
	case 1:
		return pack(0, r.fractionLocked(fracBits)|1)
	case 2:
		return pack(0, 1)
	case 3:
		return pack(0, fracMask)
	case 4:
		return pack(1, r.fractionLocked(fracBits))
	case 5:
		return pack(expMax-1, fracMask)
	case 6:
		return pack(expMax, 0)
	case 7:
		// quiet NaN
		return pack(expMax, 1<<(fracBits-1)|r.fractionLocked(fracBits))
	case 8:
		// signaling NaN
		return pack(expMax, (r.fractionLocked(fracBits)&(fracMask>>1))|1)
	case 9, 10, 11:
		// Near one, where cancellation and rounding carries are common.
		span := uint64(2*sigWidth + 4)
		exp := bias - span/2 + uint64(r.rand.Int63n(int64(span)))
		return pack(exp, r.fractionLocked(fracBits))
	case 12:
		// Near the top of the range.
		return pack(expMax-1-uint64(r.rand.Intn(3)), r.fractionLocked(fracBits))
	case 13:
		// Near the bottom of the normal range.
		return pack(1+uint64(r.rand.Intn(3)), r.fractionLocked(fracBits))
	}
	return pack(1+uint64(r.rand.Int63n(int64(expMax-1))), r.fractionLocked(fracBits))
}

// fractionLocked returns fraction bits drawn from a mix of uniform values and
// structured patterns (runs of ones, single bits) that exercise rounding ties
// and carries.
func (r *RNG) fractionLocked(fracBits uint) uint64 {
	mask := uint64(1)<<fracBits - 1
	switch r.rand.Intn(4) {
	case 0:
		return mask
	case 1:
		return 1 << uint(r.rand.Intn(int(fracBits)))
	case 2:
		// A run of ones starting at a random position.
		lo := uint(r.rand.Intn(int(fracBits)))
		return mask &^ (1<<lo - 1)
	}
	return r.rand.Uint64() & mask
}
