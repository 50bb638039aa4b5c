package hardfloat

import "fmt"

// Format describes a binary interchange format by its exponent width and its
// significand width (the significand width includes the hidden bit).
//
// Layout of the standard encoding, high to low:
//
//	sign:  1 bit
//	exp:   ExpWidth bits
//	fract: SigWidth-1 bits
//
// Layout of the recoded encoding, high to low:
//
//	sign:  1 bit
//	exp:   ExpWidth+1 bits
//	fract: SigWidth-1 bits
type Format struct {
	name     string
	expWidth uint
	sigWidth uint
}

var (
	// F16 is IEEE-754 binary16.
	F16 = Format{name: "f16", expWidth: 5, sigWidth: 11}
	// BF16 is the bfloat16 format (binary32 truncated to 16 bits).
	BF16 = Format{name: "bf16", expWidth: 8, sigWidth: 8}
	// F32 is IEEE-754 binary32.
	F32 = Format{name: "f32", expWidth: 8, sigWidth: 24}
	// F64 is IEEE-754 binary64.
	F64 = Format{name: "f64", expWidth: 11, sigWidth: 53}
)

const (
	minExpWidth = 3
	maxExpWidth = 11
	minSigWidth = 3
	maxSigWidth = 53
)

// NewFormat returns a Format with the given field widths.
//
// The recoded exponent must be able to hold the smallest subnormal without
// colliding with the zero class, which limits SigWidth to 2^(ExpWidth-2)+3.
func NewFormat(expWidth, sigWidth int) (Format, error) {
	if expWidth < minExpWidth || expWidth > maxExpWidth ||
		sigWidth < minSigWidth || sigWidth > maxSigWidth ||
		sigWidth-3 > 1<<(expWidth-2) {
		return Format{}, &ErrUnsupportedFormat{ExpWidth: expWidth, SigWidth: sigWidth}
	}
	return Format{
		name:     fmt.Sprintf("e%ds%d", expWidth, sigWidth),
		expWidth: uint(expWidth),
		sigWidth: uint(sigWidth),
	}, nil
}

// check rejects formats that did not come from NewFormat or the predefined
// variables, most notably the zero value.
func (f Format) check() error {
	if f.expWidth < minExpWidth || f.sigWidth < minSigWidth {
		return &ErrUnsupportedFormat{ExpWidth: int(f.expWidth), SigWidth: int(f.sigWidth)}
	}
	return nil
}

// Name returns a short name for the format ("f32", "e5s11", ...).
func (f Format) Name() string { return f.name }

// String implements fmt.Stringer.
func (f Format) String() string { return f.name }

// ExpWidth returns the width of the standard exponent field.
func (f Format) ExpWidth() int { return int(f.expWidth) }

// SigWidth returns the significand precision, hidden bit included.
func (f Format) SigWidth() int { return int(f.sigWidth) }

// Width returns the width of the standard encoding in bits.
func (f Format) Width() int { return int(f.expWidth + f.sigWidth) }

// RecWidth returns the width of the recoded encoding in bits.
func (f Format) RecWidth() int { return int(f.expWidth+f.sigWidth) + 1 }

func (f Format) fracBits() uint { return f.sigWidth - 1 }

func (f Format) fracMask() uint64 { return 1<<f.fracBits() - 1 }

func (f Format) quietBit() uint64 { return 1 << (f.fracBits() - 1) }

// emin and emax are the unbiased exponents of the smallest and largest
// normal numbers.
func (f Format) emin() int { return 2 - 1<<(f.expWidth-1) }

func (f Format) emax() int { return 1<<(f.expWidth-1) - 1 }

// recBias maps an unbiased exponent onto the recoded exponent field.
func (f Format) recBias() int { return 1 << f.expWidth }

// Rec is a recoded floating-point value. Bits [0,64) of the recoded encoding
// live in Lo and bits at or above 64 in Hi; only formats whose recoded width
// exceeds 64 bits (F64) use Hi.
//
// A Rec carries no format tag: the Format whose methods receive it decides how
// its bits are read.
type Rec struct {
	Hi uint64
	Lo uint64
}

// String renders the recoded bits as upper-case hexadecimal.
func (r Rec) String() string {
	if r.Hi != 0 {
		return fmt.Sprintf("%X%016X", r.Hi, r.Lo)
	}
	return fmt.Sprintf("%X", r.Lo)
}

func (f Format) signPos() uint { return f.expWidth + f.sigWidth }

func (f Format) pack(sign bool, exp, fract uint64) Rec {
	r := Rec{Lo: exp<<f.fracBits() | fract&f.fracMask()}
	if sign {
		if p := f.signPos(); p >= 64 {
			r.Hi = 1 << (p - 64)
		} else {
			r.Lo |= 1 << p
		}
	}
	return r
}

func (f Format) recSign(r Rec) bool {
	if p := f.signPos(); p >= 64 {
		return r.Hi>>(p-64)&1 != 0
	}
	return r.Lo>>f.signPos()&1 != 0
}

func (f Format) recExp(r Rec) uint64 {
	return r.Lo >> f.fracBits() & (1<<(f.expWidth+1) - 1)
}

func (f Format) recFract(r Rec) uint64 { return r.Lo & f.fracMask() }

// fits reports whether r has no bits set above the recoded width.
func (f Format) fits(r Rec) bool {
	w := uint(f.RecWidth())
	if w > 64 {
		return r.Hi>>(w-64) == 0
	}
	return r.Hi == 0 && (w == 64 || r.Lo>>w == 0)
}

// class codes held by the top three bits of the recoded exponent.
const (
	codeZero = 0
	codeInf  = 6
	codeNaN  = 7
)

func (f Format) code(r Rec) uint64 { return f.recExp(r) >> (f.expWidth - 2) }

// zeroExp is the exponent pattern Encode produces for zeros: the subnormal
// normalization applied to an all-zero fraction, with the class bits cleared.
func (f Format) zeroExp() uint64 {
	e := 1<<(f.expWidth-1) + 1 - int(f.fracBits())
	return uint64(e) & (1<<(f.expWidth-2) - 1)
}

func (f Format) zero(sign bool) Rec { return f.pack(sign, f.zeroExp(), 0) }

func (f Format) infinity(sign bool) Rec {
	return f.pack(sign, codeInf<<(f.expWidth-2), 0)
}

func (f Format) maxFinite(sign bool) Rec {
	return f.pack(sign, uint64(f.emax()+f.recBias()), f.fracMask())
}

// DefaultNaN returns the canonical quiet NaN: positive, with only the quiet
// bit of the fraction set.
func (f Format) DefaultNaN() Rec {
	return f.pack(false, codeNaN<<(f.expWidth-2), f.quietBit())
}
