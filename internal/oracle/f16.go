package oracle

const (
	f16SignMask uint16 = 0x8000
	f16ExpMask  uint16 = 0x7C00

	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF
)

// F16ToF32 widens a binary16 bit pattern to binary32. Widening is exact.
func F16ToF32(h uint16) uint32 {
	sign := uint32(h&f16SignMask) << 16
	exp := uint32(h&f16ExpMask) >> 10
	frac := uint32(h & 0x03FF)

	switch exp {
	case 0:
		if frac == 0 {
			return sign
		}
		// Half subnormals have an exponent of -14 and no implicit leading 1.
		e := int32(-14)
		for frac&0x0400 == 0 {
			frac <<= 1
			e--
		}
		frac &= 0x03FF
		return sign | uint32(127+e)<<23 | frac<<13
	case 0x1F:
		return sign | f32ExpMask | frac<<13
	}
	return sign | (exp-15+127)<<23 | frac<<13
}

// F32ToF16 narrows a binary32 bit pattern to binary16, round to nearest-even.
// NaNs map to a quiet NaN keeping the payload's high bits.
func F32ToF16(bits uint32) uint16 {
	sign := uint16(bits>>16) & f16SignMask
	exp := int32((bits & f32ExpMask) >> 23)
	frac := bits & f32FracMask

	if exp == 0xFF {
		if frac == 0 {
			return sign | f16ExpMask
		}
		return sign | f16ExpMask | 0x0200 | uint16(frac>>13)
	}
	// binary32 subnormals are far below half the smallest binary16 subnormal.
	if exp == 0 {
		return sign
	}

	e16 := exp - 127 + 15
	if e16 >= 0x1F {
		return sign | f16ExpMask
	}

	if e16 <= 0 {
		if e16 < -10 {
			return sign
		}
		mant := frac | 0x00800000
		shift := uint32(1-e16) + 13
		m := mant >> shift
		remainder := mant & (uint32(1)<<shift - 1)
		half := uint32(1) << (shift - 1)
		if remainder > half || (remainder == half && m&1 == 1) {
			m++
		}
		return sign | uint16(m)
	}

	m := frac >> 13
	remainder := frac & 0x1FFF
	if remainder > 0x1000 || (remainder == 0x1000 && m&1 == 1) {
		m++
		if m == 0x0400 {
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | f16ExpMask
			}
		}
	}
	return sign | uint16(e16)<<10 | uint16(m)
}
