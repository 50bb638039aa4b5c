package hardfloat

import "github.com/hupe1980/hardfloat/internal/wide"

// MulAddOp selects the signs of the fused multiply-add terms.
type MulAddOp uint8

const (
	// SubAddend computes a*b - c.
	SubAddend MulAddOp = 1 << iota
	// NegateProduct computes -(a*b) + c.
	NegateProduct
)

// FMA returns a*b + c rounded once.
func (f Format) FMA(a, b, c Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	return f.MulAdd(0, a, b, c, rm, ctl)
}

// MulAdd returns (+/-)a*b (+/-)c, signs chosen by op, with a single rounding.
//
// 0*inf raises invalid even when c is a quiet NaN.
func (f Format) MulAdd(op MulAddOp, a, b, c Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm, a, b, c)
	x, y, z := f.unpack(a), f.unpack(b), f.unpack(c)
	prodSign := x.sign != y.sign
	if op&NegateProduct != 0 {
		prodSign = !prodSign
	}
	if op&SubAddend != 0 {
		z.sign = !z.sign
	}
	zeroTimesInf := (x.inf && y.zero) || (x.zero && y.inf)

	switch {
	case x.nan || y.nan || z.nan:
		flags := f.signalingFlags(a, b, c)
		if zeroTimesInf {
			flags = Invalid
		}
		return f.propagateNaN(ctl, a, b, c), flags
	case zeroTimesInf:
		return f.DefaultNaN(), Invalid
	case x.inf || y.inf:
		if z.inf && z.sign != prodSign {
			return f.DefaultNaN(), Invalid
		}
		return f.infinity(prodSign), 0
	case z.inf:
		return f.infinity(z.sign), 0
	case x.zero || y.zero:
		if !z.zero {
			return f.round(z.sign, z.exp, z.sig, rm, ctl)
		}
		if prodSign != z.sign {
			return f.zero(rm == Min), 0
		}
		return f.zero(z.sign), 0
	}

	// Exact product with its leading one moved to bit 125. The product of two
	// significands of at most 53 bits has at least 22 trailing zeros, so the
	// shift loses nothing.
	const top = 125
	prod := wide.Mul64(x.sig, y.sig)
	lead := prod.Len() - 1
	prod = prod.Rsh(uint(lead - top))
	pexp := x.exp + y.exp + lead - 126

	if z.zero {
		sig, sh := prod.Jam64()
		return f.round(prodSign, pexp-top+int(sh)+63, sig, rm, ctl)
	}

	addend := wide.From64(z.sig).Lsh(top - 63)

	big, small := prod, addend
	bigSign, smallSign := prodSign, z.sign
	bigExp, smallExp := pexp, z.exp
	if smallExp > bigExp || (smallExp == bigExp && small.Cmp(big) > 0) {
		big, small = small, big
		bigSign, smallSign = smallSign, bigSign
		bigExp, smallExp = smallExp, bigExp
	}
	small = small.RshJam(uint(bigExp - smallExp))

	var sum wide.Uint128
	if bigSign == smallSign {
		sum = big.Add(small)
	} else {
		sum = big.Sub(small)
	}
	if sum.IsZero() {
		return f.zero(rm == Min), 0
	}
	sig, sh := sum.Jam64()
	return f.round(bigSign, bigExp-top+int(sh)+63, sig, rm, ctl)
}
