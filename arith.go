package hardfloat

import "math/bits"

// Add returns a+b.
func (f Format) Add(a, b Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	return f.AddSub(false, a, b, rm, ctl)
}

// Sub returns a-b.
func (f Format) Sub(a, b Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	return f.AddSub(true, a, b, rm, ctl)
}

// AddSub returns a+b, or a-b when subOp is set.
func (f Format) AddSub(subOp bool, a, b Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm, a, b)
	x, y := f.unpack(a), f.unpack(b)
	if subOp {
		y.sign = !y.sign
	}

	switch {
	case x.nan || y.nan:
		return f.propagateNaN(ctl, a, b), f.signalingFlags(a, b)
	case x.inf && y.inf && x.sign != y.sign:
		return f.DefaultNaN(), Invalid
	case x.inf:
		return f.infinity(x.sign), 0
	case y.inf:
		return f.infinity(y.sign), 0
	case x.zero && y.zero:
		if x.sign != y.sign {
			return f.zero(rm == Min), 0
		}
		return f.zero(x.sign), 0
	case x.zero:
		return f.round(y.sign, y.exp, y.sig, rm, ctl)
	case y.zero:
		return f.round(x.sign, x.exp, x.sig, rm, ctl)
	}

	if y.exp > x.exp || (y.exp == x.exp && y.sig > x.sig) {
		x, y = y, x
	}
	// Two bits of headroom for the carry; the significands occupy at most 53
	// bits so the low bits left free act as guard and round bits, and the
	// alignment shift jams everything further down into bit 0.
	xs := x.sig >> 2
	ys := shiftRightJam(y.sig>>2, x.exp-y.exp)

	var sig uint64
	if x.sign == y.sign {
		sig = xs + ys
	} else {
		sig = xs - ys
	}
	if sig == 0 {
		return f.zero(rm == Min), 0
	}
	return f.round(x.sign, x.exp+2, sig, rm, ctl)
}

// Mul returns a*b.
func (f Format) Mul(a, b Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm, a, b)
	x, y := f.unpack(a), f.unpack(b)
	sign := x.sign != y.sign

	switch {
	case x.nan || y.nan:
		return f.propagateNaN(ctl, a, b), f.signalingFlags(a, b)
	case (x.inf && y.zero) || (x.zero && y.inf):
		return f.DefaultNaN(), Invalid
	case x.inf || y.inf:
		return f.infinity(sign), 0
	case x.zero || y.zero:
		return f.zero(sign), 0
	}

	// Both significands are normalized to bit 63, so the 128-bit product lies
	// in [2^126, 2^128) and the high word keeps more than enough bits.
	hi, lo := bits.Mul64(x.sig, y.sig)
	if lo != 0 {
		hi |= 1
	}
	return f.round(sign, x.exp+y.exp+1, hi, rm, ctl)
}
