package hardfloat

import (
	"fmt"
	"math/bits"
)

// Class is the IEEE-754 class of a value.
type Class uint8

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinity
	ClassQuietNaN
	ClassSignalingNaN
)

var classNames = [...]string{
	ClassZero:         "zero",
	ClassSubnormal:    "subnormal",
	ClassNormal:       "normal",
	ClassInfinity:     "infinity",
	ClassQuietNaN:     "qnan",
	ClassSignalingNaN: "snan",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Encode converts a standard bit pattern into its recoded form.
//
// Subnormal inputs are normalized: the fraction is shifted until its leading
// one drops into the implicit position and the recoded exponent is lowered to
// match, so finite nonzero values all share one exponent/significand shape.
func (f Format) Encode(b uint64) (Rec, error) {
	if err := f.check(); err != nil {
		return Rec{}, err
	}
	if w := uint(f.Width()); w < 64 && b>>w != 0 {
		return Rec{}, &ErrWidth{Format: f.name, Width: int(w), Bits: b}
	}
	return f.encode(b), nil
}

// MustEncode is like Encode but panics on malformed input.
func (f Format) MustEncode(b uint64) Rec {
	r, err := f.Encode(b)
	if err != nil {
		panic(err)
	}
	return r
}

func (f Format) encode(b uint64) Rec {
	fb := f.fracBits()
	sign := b>>(f.expWidth+fb)&1 != 0
	expIn := b >> fb & (1<<f.expWidth - 1)
	fract := b & f.fracMask()

	switch {
	case expIn == 0 && fract == 0:
		return f.zero(sign)
	case expIn == 0:
		// Shift past the leading one so it becomes the implicit bit.
		norm := uint(bits.LeadingZeros64(fract)) - (64 - fb) + 1
		e := f.emin() - int(norm) + f.recBias()
		return f.pack(sign, uint64(e), fract<<norm)
	case expIn == 1<<f.expWidth-1:
		if fract == 0 {
			return f.infinity(sign)
		}
		return f.pack(sign, codeNaN<<(f.expWidth-2), fract)
	default:
		e := int(expIn) - f.emax() + f.recBias()
		return f.pack(sign, uint64(e), fract)
	}
}

// Decode converts a recoded value back into its standard bit pattern.
//
// Decode is the exact inverse of Encode for every value Valid accepts.
// Values whose exponent lies below the normal range are denormalized; bits of
// a non-canonical value that the standard format cannot hold are truncated
// (see DecodeRounded for a rounding decode).
func (f Format) Decode(r Rec) uint64 {
	f.mustFit(r)
	fb := f.fracBits()
	var sign uint64
	if f.recSign(r) {
		sign = 1 << (f.expWidth + fb)
	}
	expMax := uint64(1<<f.expWidth - 1)

	switch f.code(r) {
	case codeZero:
		return sign
	case codeInf:
		return sign | expMax<<fb
	case codeNaN:
		return sign | expMax<<fb | f.recFract(r)
	}

	e := int(f.recExp(r)) - f.recBias()
	if e >= f.emin() {
		return sign | uint64(e+f.emax())<<fb&(expMax<<fb) | f.recFract(r)
	}
	shift := uint(f.emin() - e)
	return sign | (1<<fb|f.recFract(r))>>shift
}

// DecodeRounded decodes r through the rounding engine. Canonical values
// decode exactly with no flags raised; a non-canonical value carrying more
// precision than its exponent allows is rounded, raising inexact and, when
// tiny, underflow.
func (f Format) DecodeRounded(r Rec, rm RoundingMode, ctl Control) (uint64, Flags) {
	f.mustOperands(rm, r)
	x := f.unpack(r)
	if !x.finite() || x.zero {
		return f.Decode(r), 0
	}
	out, flags := f.round(x.sign, x.exp, x.sig, rm, ctl)
	return f.Decode(out), flags
}

// EncodeSlice encodes src into dst. dst must have length >= len(src).
func (f Format) EncodeSlice(dst []Rec, src []uint64) error {
	if err := f.check(); err != nil {
		return err
	}
	if len(dst) < len(src) {
		return &ErrLengthMismatch{Operand: "dst", Expected: len(src), Actual: len(dst)}
	}
	for i, b := range src {
		r, err := f.Encode(b)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		dst[i] = r
	}
	return nil
}

// DecodeSlice decodes src into dst. dst must have length >= len(src).
func (f Format) DecodeSlice(dst []uint64, src []Rec) error {
	if err := f.check(); err != nil {
		return err
	}
	if len(dst) < len(src) {
		return &ErrLengthMismatch{Operand: "dst", Expected: len(src), Actual: len(dst)}
	}
	for i, r := range src {
		if !f.fits(r) {
			return fmt.Errorf("element %d: %w", i, &ErrMalformedRec{Format: f.name, Rec: r, Reason: "exceeds recoded width"})
		}
		dst[i] = f.Decode(r)
	}
	return nil
}

// Valid reports whether r is a canonical recoded value of f, i.e. one that
// Encode can produce.
func (f Format) Valid(r Rec) error {
	if err := f.check(); err != nil {
		return err
	}
	malformed := func(reason string) error {
		return &ErrMalformedRec{Format: f.name, Rec: r, Reason: reason}
	}
	if !f.fits(r) {
		return malformed(fmt.Sprintf("exceeds %d bits", f.RecWidth()))
	}
	lowExp := f.recExp(r) & (1<<(f.expWidth-2) - 1)
	fract := f.recFract(r)

	switch f.code(r) {
	case codeZero:
		if fract != 0 || lowExp != f.zeroExp() {
			return malformed("non-canonical zero")
		}
		return nil
	case codeInf:
		if fract != 0 || lowExp != 0 {
			return malformed("non-canonical infinity")
		}
		return nil
	case codeNaN:
		if lowExp != 0 {
			return malformed("non-canonical NaN exponent")
		}
		if fract == 0 {
			return malformed("NaN without fraction bits")
		}
		return nil
	}

	e := int(f.recExp(r)) - f.recBias()
	minSub := f.emin() - int(f.fracBits())
	switch {
	case e > f.emax():
		return malformed("exponent above normal range")
	case e < minSub:
		return malformed("exponent below subnormal range")
	case e < f.emin():
		if fract&(1<<uint(f.emin()-e)-1) != 0 {
			return malformed("subnormal with unrepresentable low bits")
		}
	}
	return nil
}

// Classify returns the IEEE class of r.
func (f Format) Classify(r Rec) Class {
	f.mustFit(r)
	switch f.code(r) {
	case codeZero:
		return ClassZero
	case codeInf:
		return ClassInfinity
	case codeNaN:
		if f.recFract(r)&f.quietBit() != 0 {
			return ClassQuietNaN
		}
		return ClassSignalingNaN
	}
	if int(f.recExp(r))-f.recBias() < f.emin() {
		return ClassSubnormal
	}
	return ClassNormal
}

// IsNaN reports whether r is a NaN of either kind.
func (f Format) IsNaN(r Rec) bool { return f.code(r) == codeNaN }

// IsSignalingNaN reports whether r is a signaling NaN.
func (f Format) IsSignalingNaN(r Rec) bool {
	return f.IsNaN(r) && f.recFract(r)&f.quietBit() == 0
}

// IsZero reports whether r is a zero of either sign.
func (f Format) IsZero(r Rec) bool { return f.code(r) == codeZero }

// IsInf reports whether r is an infinity of either sign.
func (f Format) IsInf(r Rec) bool { return f.code(r) == codeInf }

// Signbit reports whether the sign bit of r is set.
func (f Format) Signbit(r Rec) bool { return f.recSign(r) }

// Same reports whether a and b denote the same value: any two NaNs are the
// same, zeros are the same when their signs match regardless of unused
// exponent bits, everything else must match bit for bit.
func (f Format) Same(a, b Rec) bool {
	switch ca, cb := f.code(a), f.code(b); {
	case ca == codeNaN || cb == codeNaN:
		return ca == cb
	case ca == codeZero || cb == codeZero:
		return ca == cb && f.recSign(a) == f.recSign(b)
	}
	return a == b
}

// Negate flips the sign of r. No flags are raised, not even for signaling
// NaNs.
func (f Format) Negate(r Rec) Rec {
	f.mustFit(r)
	if p := f.signPos(); p >= 64 {
		r.Hi ^= 1 << (p - 64)
	} else {
		r.Lo ^= 1 << p
	}
	return r
}

// Abs clears the sign of r without raising flags.
func (f Format) Abs(r Rec) Rec {
	if f.Signbit(r) {
		return f.Negate(r)
	}
	return r
}

// raw is an unpacked operand or an unrounded intermediate. For finite nonzero
// values the magnitude is sig * 2^(exp-63); unpacked operands keep sig
// normalized with bit 63 set so exp is the true unbiased exponent.
type raw struct {
	sign bool
	nan  bool
	inf  bool
	zero bool
	exp  int
	sig  uint64
}

func (x raw) finite() bool { return !x.nan && !x.inf }

func (f Format) unpack(r Rec) raw {
	x := raw{sign: f.recSign(r)}
	switch f.code(r) {
	case codeZero:
		x.zero = true
	case codeInf:
		x.inf = true
	case codeNaN:
		x.nan = true
	default:
		fb := f.fracBits()
		x.exp = int(f.recExp(r)) - f.recBias()
		x.sig = (1<<fb | f.recFract(r)) << (63 - fb)
	}
	return x
}
