// Package wide provides the 128-bit unsigned arithmetic the fused
// multiply-add and square-root datapaths need for their exact intermediates.
package wide

import "math/bits"

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// From64 widens v.
func From64(v uint64) Uint128 { return Uint128{Lo: v} }

// Mul64 returns the full product of a and b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Hi|u.Lo == 0 }

// Cmp returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Add returns u+v modulo 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, c := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, c)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u-v modulo 2^128.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, b := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Lsh returns u<<n.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	}
	return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
}

// Rsh returns u>>n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	}
	return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
}

// RshJam returns u>>n with bit 0 set when any bit shifted out was set.
func (u Uint128) RshJam(n uint) Uint128 {
	if n == 0 {
		return u
	}
	out := u.Rsh(n)
	if !u.Sub(out.Lsh(n)).IsZero() {
		out.Lo |= 1
	}
	return out
}

// Len returns the minimum number of bits needed to represent u.
func (u Uint128) Len() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// Jam64 narrows u to 64 bits by shifting it right just enough to fit,
// jamming the discarded bits into bit 0. It returns the narrowed value and
// the shift applied.
func (u Uint128) Jam64() (uint64, uint) {
	n := u.Len()
	if n <= 64 {
		return u.Lo, 0
	}
	s := uint(n - 64)
	return u.RshJam(s).Lo, s
}
