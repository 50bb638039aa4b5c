package hardfloat

import "github.com/hupe1980/hardfloat/internal/wide"

// Div returns a/b.
//
// The quotient is developed one bit per step by a restoring radix-2
// recurrence to SigWidth+2 bits; the final partial remainder supplies an
// exact sticky bit, so the rounded result is correct in every mode.
func (f Format) Div(a, b Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm, a, b)
	x, y := f.unpack(a), f.unpack(b)
	sign := x.sign != y.sign

	switch {
	case x.nan || y.nan:
		return f.propagateNaN(ctl, a, b), f.signalingFlags(a, b)
	case x.inf && y.inf:
		return f.DefaultNaN(), Invalid
	case x.inf:
		return f.infinity(sign), 0
	case y.inf:
		return f.zero(sign), 0
	case x.zero && y.zero:
		return f.DefaultNaN(), Invalid
	case y.zero:
		return f.infinity(sign), DivideByZero
	case x.zero:
		return f.zero(sign), 0
	}

	p := int(f.sigWidth)
	num := x.sig >> uint(64-p)
	den := y.sig >> uint(64-p)
	e := x.exp - y.exp
	if num < den {
		num <<= 1
		e--
	}
	q, rem := divDigits(num, den, p+2)
	sig := q << 1
	if rem != 0 {
		sig |= 1
	}
	return f.round(sign, e-p-2+63, sig, rm, ctl)
}

// divDigits returns floor(num * 2^(n-1) / den) and a value that is nonzero
// exactly when the division leaves a remainder. It requires
// den <= num < 2*den.
func divDigits(num, den uint64, n int) (q, rem uint64) {
	r := num
	for range n {
		q <<= 1
		if r >= den {
			r -= den
			q |= 1
		}
		r <<= 1
	}
	return q, r
}

// Sqrt returns the square root of a. sqrt(-0) is -0; any other negative
// operand is invalid.
func (f Format) Sqrt(a Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm, a)
	x := f.unpack(a)

	switch {
	case x.nan:
		return f.propagateNaN(ctl, a), f.signalingFlags(a)
	case x.zero:
		return f.zero(x.sign), 0
	case x.sign:
		return f.DefaultNaN(), Invalid
	case x.inf:
		return f.infinity(false), 0
	}

	// a = m * 2^k with k even, so sqrt(a) = sqrt(m * 4^t) * 2^(k/2 - t).
	p := int(f.sigWidth)
	m := x.sig >> uint(64-p)
	k := x.exp - (p - 1)
	if k&1 != 0 {
		m <<= 1
		k--
	}
	// 4^t with t >= (p+3)/2 leaves at least p+2 root bits.
	t := (p + 4) / 2
	root, inexact := sqrtDigits(wide.From64(m).Lsh(uint(2 * t)))
	sig := root << 1
	if inexact {
		sig |= 1
	}
	return f.round(false, (k-2*t)/2-1+63, sig, rm, ctl)
}

// sqrtDigits returns floor(sqrt(n)) by the restoring bit-pair recurrence and
// whether a remainder was left.
func sqrtDigits(n wide.Uint128) (root uint64, inexact bool) {
	var r uint64
	for i := 63; i >= 0; i-- {
		r = r<<2 | n.Rsh(uint(2*i)).Lo&3
		t := root<<2 | 1
		root <<= 1
		if r >= t {
			r -= t
			root |= 1
		}
	}
	return root, r != 0
}
