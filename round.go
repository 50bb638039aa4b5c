package hardfloat

import "math/bits"

// Round rounds the exact value (-1)^sign * sig * 2^exp to f.
//
// It is the entry point to the rounding engine for callers that compute their
// own extended intermediates. sig may carry any number of bits; callers that
// have discarded low-order bits must OR a one into bit 0 of sig when any
// discarded bit was set ("jamming") so the result stays correctly rounded.
func (f Format) Round(sign bool, exp int, sig uint64, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm)
	return f.round(sign, exp+63, sig, rm, ctl)
}

// round is the rounding engine shared by every rounded operation. The
// magnitude is sig * 2^(exp-63); sig need not be normalized and its bit 0 may
// be a jammed sticky bit.
func (f Format) round(sign bool, exp int, sig uint64, rm RoundingMode, ctl Control) (Rec, Flags) {
	if sig == 0 {
		return f.zero(sign), 0
	}
	nz := bits.LeadingZeros64(sig)
	sig <<= uint(nz)
	exp -= nz

	p := int(f.sigWidth)
	emin := f.emin()

	tiny := exp < emin
	if tiny && ctl&TininessAfterRounding != 0 {
		q, _ := roundSig(sig, 64-p, sign, rm)
		if q == 1<<p {
			tiny = exp+1 < emin
		}
	}

	// Below the normal range precision shrinks: the rounding position is
	// pinned to the subnormal grid.
	shift := 64 - p
	qexp := exp - (p - 1)
	if exp < emin {
		shift += emin - exp
		qexp = emin - (p - 1)
	}
	q, inexact := roundSig(sig, shift, sign, rm)

	var flags Flags
	if inexact {
		flags |= Inexact
		if tiny {
			flags |= Underflow
		}
	}
	if q == 0 {
		return f.zero(sign), flags
	}

	// Carry out of the top bit: the significand was all ones.
	n := bits.Len64(q)
	if n > p {
		q >>= 1
		qexp++
		n--
	}
	e := qexp + n - 1
	if e > f.emax() {
		flags |= Overflow | Inexact
		if overflowsToInfinity(sign, rm) {
			return f.infinity(sign), flags
		}
		return f.maxFinite(sign), flags
	}
	return f.pack(sign, uint64(e+f.recBias()), q<<uint(p-n)), flags
}

// overflowsToInfinity reports whether an overflowing result of the given sign
// becomes infinity (true) or the largest finite value (false).
func overflowsToInfinity(sign bool, rm RoundingMode) bool {
	switch rm {
	case NearEven, NearMaxMag:
		return true
	case MinMag:
		return false
	case Min:
		return sign
	case Max:
		return !sign
	}
	panic(&ErrInvalidRoundingMode{Mode: int(rm)})
}

// roundSig rounds sig to an integer after discarding its low shift bits, in
// the direction rm selects for a value of the given sign. shift may exceed 64,
// in which case every bit lies strictly below the halfway point.
func roundSig(sig uint64, shift int, sign bool, rm RoundingMode) (q uint64, inexact bool) {
	var rem, half uint64
	switch {
	case shift <= 0:
		return sig, false
	case shift < 64:
		q = sig >> uint(shift)
		rem = sig & (1<<uint(shift) - 1)
		half = 1 << uint(shift-1)
	case shift == 64:
		rem = sig
		half = 1 << 63
	default:
		rem = sig
		half = 0
	}
	if rem == 0 {
		return q, false
	}

	cmp := 1
	switch {
	case half == 0:
		cmp = -1
	case rem < half:
		cmp = -1
	case rem == half:
		cmp = 0
	}

	var up bool
	switch rm {
	case NearEven:
		up = cmp > 0 || (cmp == 0 && q&1 == 1)
	case NearMaxMag:
		up = cmp >= 0
	case MinMag:
		up = false
	case Min:
		up = sign
	case Max:
		up = !sign
	default:
		panic(&ErrInvalidRoundingMode{Mode: int(rm)})
	}
	if up {
		q++
	}
	return q, true
}

// shiftRightJam shifts v right by n, ORing every bit shifted out into bit 0
// of the result.
func shiftRightJam(v uint64, n int) uint64 {
	switch {
	case n <= 0:
		return v
	case n >= 64:
		if v != 0 {
			return 1
		}
		return 0
	}
	out := v >> uint(n)
	if v<<uint(64-n) != 0 {
		out |= 1
	}
	return out
}
