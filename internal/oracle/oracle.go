package oracle

import "math"

// F64 operations on standard binary64 bit patterns, round to nearest-even.

func AddF64(a, b uint64) uint64 { return f64(math.Float64frombits(a) + math.Float64frombits(b)) }
func SubF64(a, b uint64) uint64 { return f64(math.Float64frombits(a) - math.Float64frombits(b)) }
func MulF64(a, b uint64) uint64 { return f64(math.Float64frombits(a) * math.Float64frombits(b)) }
func DivF64(a, b uint64) uint64 { return f64(math.Float64frombits(a) / math.Float64frombits(b)) }
func SqrtF64(a uint64) uint64   { return f64(math.Sqrt(math.Float64frombits(a))) }

// FMAF64 returns a*b+c with one rounding.
func FMAF64(a, b, c uint64) uint64 {
	x, y, z := math.Float64frombits(a), math.Float64frombits(b), math.Float64frombits(c)
	// The software math.FMA computes x*y + z when z is zero, which turns a
	// negative product that underflows to -0 into +0.
	if z == 0 && x != 0 && y != 0 {
		return f64(x * y)
	}
	return f64(math.FMA(x, y, z))
}

// F32 operations on standard binary32 bit patterns, round to nearest-even.
// The explicit float32 conversions keep the compiler from fusing or widening.

func AddF32(a, b uint32) uint32 { return f32(float32(math.Float32frombits(a) + math.Float32frombits(b))) }
func SubF32(a, b uint32) uint32 { return f32(float32(math.Float32frombits(a) - math.Float32frombits(b))) }
func MulF32(a, b uint32) uint32 { return f32(float32(math.Float32frombits(a) * math.Float32frombits(b))) }
func DivF32(a, b uint32) uint32 { return f32(float32(math.Float32frombits(a) / math.Float32frombits(b))) }

// SqrtF32 rounds the binary64 square root to binary32. binary64 carries more
// than twice the binary32 precision plus two bits, so the double rounding is
// harmless.
func SqrtF32(a uint32) uint32 {
	return f32(float32(math.Sqrt(float64(math.Float32frombits(a)))))
}

// F64ToF32 narrows a binary64 pattern to binary32.
func F64ToF32(a uint64) uint32 { return f32(float32(math.Float64frombits(a))) }

// F32ToF64 widens a binary32 pattern to binary64.
func F32ToF64(a uint32) uint64 { return f64(float64(math.Float32frombits(a))) }

// Int64ToF64 converts v to binary64.
func Int64ToF64(v int64) uint64 { return f64(float64(v)) }

// Cmp returns the native ordering of two binary64 patterns: lt, eq and
// whether they are ordered at all.
func Cmp(a, b uint64) (lt, eq, ordered bool) {
	x, y := math.Float64frombits(a), math.Float64frombits(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return false, false, false
	}
	return x < y, x == y, true
}

func f64(v float64) uint64 { return math.Float64bits(v) }
func f32(v float32) uint32 { return math.Float32bits(v) }
