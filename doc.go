// Package hardfloat is a bit-exact software model of a hardware IEEE-754
// floating-point unit.
//
// Values move through the unit in a recoded form one bit wider than the
// standard interchange encoding. The recoded exponent carries the value's
// class in its top three bits (000 zero, 110 infinity, 111 NaN) and
// subnormal inputs are normalized on the way in, so every finite nonzero
// operand has the same exponent/significand shape and the datapaths never
// special-case subnormals.
//
// # Quick Start
//
//	a := hardfloat.F32.MustEncode(0x3F800000) // 1.0
//	b := hardfloat.F32.MustEncode(0x00000000) // +0.0
//	q, flags := hardfloat.F32.Div(a, b, hardfloat.NearEven, hardfloat.DefaultControl)
//	fmt.Printf("%08X %s\n", hardfloat.F32.Decode(q), flags) // 7F800000 divbyzero
//
// # Formats
//
// F16, BF16, F32 and F64 are predefined; NewFormat builds other widths.
// A Rec carries no format tag: callers pair each value with the Format
// whose methods interpret it.
//
// # Exceptions
//
// IEEE exceptions are results, not errors. Every operation returns the Flags
// it raised and nothing else; sticky accumulation across calls is the
// caller's job (see Accumulator). Go errors and panics are reserved for
// malformed input: bit patterns wider than their format, rounding modes
// outside 0..4, mismatched batch lengths.
//
// # Rounding
//
// All rounded results go through one rounding engine that implements the
// five IEEE rounding modes, overflow to infinity or the largest finite value,
// gradual underflow with tininess detected before or after rounding
// (see Control), and the rule that exact results never raise inexact.
//
// # Concurrency
//
// Every operation is a pure function of its arguments and is safe for
// unrestricted concurrent use. Evaluator applies an operation across slices
// in parallel.
package hardfloat
