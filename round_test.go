package hardfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTies(t *testing.T) {
	tests := []struct {
		name  string
		sign  bool
		sig   uint64
		rm    RoundingMode
		want  uint64
		flags Flags
	}{
		{"even down", false, 1<<24 + 1, NearEven, 0x3F800000, Inexact},
		{"even up", false, 1<<24 + 3, NearEven, 0x3F800002, Inexact},
		{"max mag", false, 1<<24 + 1, NearMaxMag, 0x3F800001, Inexact},
		{"min mag", false, 1<<24 + 1, MinMag, 0x3F800000, Inexact},
		{"max", false, 1<<24 + 1, Max, 0x3F800001, Inexact},
		{"min", false, 1<<24 + 1, Min, 0x3F800000, Inexact},
		{"negative min", true, 1<<24 + 1, Min, 0xBF800001, Inexact},
		{"negative max", true, 1<<24 + 1, Max, 0xBF800000, Inexact},
		{"negative max mag", true, 1<<24 + 1, NearMaxMag, 0xBF800001, Inexact},
		{"exact", false, 1 << 24, NearEven, 0x3F800000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, flags := F32.Round(tt.sign, -24, tt.sig, tt.rm, DefaultControl)
			assert.Equal(t, tt.want, F32.Decode(r), "got %08X", F32.Decode(r))
			assert.Equal(t, tt.flags, flags)
		})
	}
}

func TestRoundExactNeverInexact(t *testing.T) {
	for _, rm := range RoundingModes {
		r, flags := F32.Round(false, 0, 3, rm, DefaultControl)
		assert.Equal(t, uint64(0x40400000), F32.Decode(r))
		assert.Zero(t, flags, rm.String())

		// Smallest subnormal: tiny but exact, so no underflow.
		r, flags = F32.Round(false, -149, 1, rm, DefaultControl)
		assert.Equal(t, uint64(0x00000001), F32.Decode(r))
		assert.Zero(t, flags, rm.String())
	}
}

func TestRoundOverflow(t *testing.T) {
	const (
		posInf = 0x7F800000
		posMax = 0x7F7FFFFF
		negInf = 0xFF800000
		negMax = 0xFF7FFFFF
	)
	tests := []struct {
		rm  RoundingMode
		pos uint64
		neg uint64
	}{
		{NearEven, posInf, negInf},
		{NearMaxMag, posInf, negInf},
		{MinMag, posMax, negMax},
		{Min, posMax, negInf},
		{Max, posInf, negMax},
	}

	for _, tt := range tests {
		t.Run(tt.rm.String(), func(t *testing.T) {
			r, flags := F32.Round(false, 128, 1, tt.rm, DefaultControl)
			assert.Equal(t, tt.pos, F32.Decode(r))
			assert.Equal(t, Overflow|Inexact, flags)

			r, flags = F32.Round(true, 128, 1, tt.rm, DefaultControl)
			assert.Equal(t, tt.neg, F32.Decode(r))
			assert.Equal(t, Overflow|Inexact, flags)
		})
	}
}

func TestRoundTininess(t *testing.T) {
	// (2^25-1) * 2^-151 lies just below the smallest normal and rounds up to
	// it: tiny before rounding, not tiny after.
	r, flags := F32.Round(false, -151, 1<<25-1, NearEven, TininessAfterRounding)
	assert.Equal(t, uint64(0x00800000), F32.Decode(r))
	assert.Equal(t, Inexact, flags)

	r, flags = F32.Round(false, -151, 1<<25-1, NearEven, 0)
	assert.Equal(t, uint64(0x00800000), F32.Decode(r))
	assert.Equal(t, Underflow|Inexact, flags)
}

func TestRoundUnderflowToZero(t *testing.T) {
	r, flags := F32.Round(false, -200, 1, NearEven, DefaultControl)
	assert.True(t, F32.IsZero(r))
	assert.False(t, F32.Signbit(r))
	assert.Equal(t, Underflow|Inexact, flags)

	r, flags = F32.Round(false, -200, 1, Max, DefaultControl)
	assert.Equal(t, uint64(0x00000001), F32.Decode(r))
	assert.Equal(t, Underflow|Inexact, flags)

	r, _ = F32.Round(true, -200, 1, NearEven, DefaultControl)
	assert.Equal(t, uint64(0x80000000), F32.Decode(r))
}

func TestRoundZeroKeepsSign(t *testing.T) {
	r, flags := F32.Round(true, 0, 0, NearEven, DefaultControl)
	assert.Equal(t, uint64(0x80000000), F32.Decode(r))
	assert.Zero(t, flags)
	assert.NoError(t, F32.Valid(r))
}

func TestRoundInvalidModePanics(t *testing.T) {
	assert.PanicsWithError(t, "invalid rounding mode: 5", func() {
		F32.Round(false, 0, 1, RoundingMode(5), DefaultControl)
	})
}

func TestRoundSig(t *testing.T) {
	q, inexact := roundSig(0b1011, 2, false, NearEven)
	assert.Equal(t, uint64(0b11), q)
	assert.True(t, inexact)

	q, inexact = roundSig(0b1010, 2, false, NearEven)
	assert.Equal(t, uint64(0b10), q)
	assert.True(t, inexact)

	q, inexact = roundSig(1<<63, 64, false, NearMaxMag)
	assert.Equal(t, uint64(1), q)
	assert.True(t, inexact)

	q, inexact = roundSig(1<<63, 70, false, NearMaxMag)
	assert.Zero(t, q)
	assert.True(t, inexact)

	q, inexact = roundSig(1, 70, true, Min)
	assert.Equal(t, uint64(1), q)
	assert.True(t, inexact)

	q, inexact = roundSig(0b1100, 2, false, Max)
	assert.Equal(t, uint64(0b11), q)
	assert.False(t, inexact)
}

func TestShiftRightJam(t *testing.T) {
	assert.Equal(t, uint64(0b101), shiftRightJam(0b10100, 2))
	assert.Equal(t, uint64(0b101), shiftRightJam(0b10001, 2))
	assert.Equal(t, uint64(1), shiftRightJam(1<<63, 64))
	assert.Equal(t, uint64(0), shiftRightJam(0, 100))
	assert.Equal(t, uint64(7), shiftRightJam(7, 0))
}
