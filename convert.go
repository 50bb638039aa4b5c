package hardfloat

import "fmt"

// IntWidth is the width of an integer operand or result.
type IntWidth uint8

const (
	Int32 IntWidth = 32
	Int64 IntWidth = 64
)

func (w IntWidth) valid() bool { return w == Int32 || w == Int64 }

func (w IntWidth) mask() uint64 {
	if w == Int64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

// FromInt converts the w-bit integer held in v, read as two's complement when
// signed is set, to f.
func (f Format) FromInt(v uint64, signed bool, w IntWidth, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm)
	if !w.valid() {
		panic(&ErrWidth{Format: fmt.Sprintf("int%d", w), Width: 64, Bits: v})
	}
	if v&^w.mask() != 0 {
		panic(&ErrWidth{Format: fmt.Sprintf("int%d", w), Width: int(w), Bits: v})
	}
	neg := signed && v>>(w-1)&1 != 0
	mag := v
	if neg {
		mag = -v & w.mask()
	}
	return f.fromInt(neg, mag, rm, ctl)
}

// FromInt32 converts v to f.
func (f Format) FromInt32(v int32, rm RoundingMode, ctl Control) (Rec, Flags) {
	return f.FromInt(uint64(uint32(v)), true, Int32, rm, ctl)
}

// FromInt64 converts v to f.
func (f Format) FromInt64(v int64, rm RoundingMode, ctl Control) (Rec, Flags) {
	return f.FromInt(uint64(v), true, Int64, rm, ctl)
}

// FromUint32 converts v to f.
func (f Format) FromUint32(v uint32, rm RoundingMode, ctl Control) (Rec, Flags) {
	return f.FromInt(uint64(v), false, Int32, rm, ctl)
}

// FromUint64 converts v to f.
func (f Format) FromUint64(v uint64, rm RoundingMode, ctl Control) (Rec, Flags) {
	return f.FromInt(v, false, Int64, rm, ctl)
}

func (f Format) fromInt(neg bool, mag uint64, rm RoundingMode, ctl Control) (Rec, Flags) {
	if mag == 0 {
		return f.zero(false), 0
	}
	return f.round(neg, 63, mag, rm, ctl)
}

// ToInt converts r to a w-bit integer, returned as its bit pattern in the
// low w bits.
//
// NaNs and values whose rounded result does not fit raise invalid and
// saturate: signed results go to the maximum (NaN, positive) or minimum
// (negative); unsigned results go to all ones (NaN, positive) or zero
// (negative). Otherwise inexact is raised when rounding changed the value.
func (f Format) ToInt(r Rec, signed bool, w IntWidth, rm RoundingMode) (uint64, Flags) {
	f.mustOperands(rm, r)
	if !w.valid() {
		panic(&ErrWidth{Format: fmt.Sprintf("int%d", w), Width: 64})
	}
	x := f.unpack(r)

	saturate := func(neg bool) (uint64, Flags) {
		switch {
		case signed && neg:
			return 1 << (w - 1), Invalid
		case signed:
			return 1<<(w-1) - 1, Invalid
		case neg:
			return 0, Invalid
		}
		return w.mask(), Invalid
	}

	switch {
	case x.nan:
		return saturate(false)
	case x.inf:
		return saturate(x.sign)
	case x.zero:
		return 0, 0
	}

	// The magnitude is sig * 2^(exp-63).
	var mag uint64
	var inexact bool
	switch {
	case x.exp > 63:
		return saturate(x.sign)
	case x.exp == 63:
		mag = x.sig
	default:
		mag, inexact = roundSig(x.sig, 63-x.exp, x.sign, rm)
	}

	switch {
	case signed && !x.sign && mag > 1<<(w-1)-1:
		return saturate(false)
	case signed && x.sign && mag > 1<<(w-1):
		return saturate(true)
	case !signed && x.sign && mag != 0:
		return saturate(true)
	case !signed && mag > w.mask():
		return saturate(false)
	}

	out := mag
	if x.sign {
		out = -mag & w.mask()
	}
	if inexact {
		return out, Inexact
	}
	return out, 0
}

// ToInt32 converts r to an int32.
func (f Format) ToInt32(r Rec, rm RoundingMode) (int32, Flags) {
	v, flags := f.ToInt(r, true, Int32, rm)
	return int32(uint32(v)), flags
}

// ToInt64 converts r to an int64.
func (f Format) ToInt64(r Rec, rm RoundingMode) (int64, Flags) {
	v, flags := f.ToInt(r, true, Int64, rm)
	return int64(v), flags
}

// ToUint32 converts r to a uint32.
func (f Format) ToUint32(r Rec, rm RoundingMode) (uint32, Flags) {
	v, flags := f.ToInt(r, false, Int32, rm)
	return uint32(v), flags
}

// ToUint64 converts r to a uint64.
func (f Format) ToUint64(r Rec, rm RoundingMode) (uint64, Flags) {
	return f.ToInt(r, false, Int64, rm)
}

// Convert converts r from f to the format to, rounding when to is narrower.
// A signaling NaN raises invalid; NaN payloads keep their high-order bits.
func (f Format) Convert(to Format, r Rec, rm RoundingMode, ctl Control) (Rec, Flags) {
	f.mustOperands(rm, r)
	if err := to.check(); err != nil {
		panic(err)
	}
	x := f.unpack(r)

	switch {
	case x.nan:
		flags := f.signalingFlags(r)
		if ctl&DefaultNaN != 0 {
			return to.DefaultNaN(), flags
		}
		fract := f.recFract(r)
		if from, dst := f.fracBits(), to.fracBits(); dst < from {
			fract >>= from - dst
		} else {
			fract <<= dst - from
		}
		return to.pack(x.sign, codeNaN<<(to.expWidth-2), fract|to.quietBit()), flags
	case x.inf:
		return to.infinity(x.sign), 0
	case x.zero:
		return to.zero(x.sign), 0
	}
	return to.round(x.sign, x.exp, x.sig, rm, ctl)
}
