package hardfloat

import (
	"testing"

	"github.com/hupe1980/hardfloat/internal/oracle"
	"github.com/hupe1980/hardfloat/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt(t *testing.T) {
	tests := []struct {
		name  string
		f     Format
		conv  func(f Format) (Rec, Flags)
		want  uint64
		flags Flags
	}{
		{"int32 1", F32, func(f Format) (Rec, Flags) { return f.FromInt32(1, NearEven, DefaultControl) }, 0x3F800000, 0},
		{"int32 -1", F32, func(f Format) (Rec, Flags) { return f.FromInt32(-1, NearEven, DefaultControl) }, 0xBF800000, 0},
		{"int32 0", F32, func(f Format) (Rec, Flags) { return f.FromInt32(0, NearEven, DefaultControl) }, 0x00000000, 0},
		{"int64 rne", F32, func(f Format) (Rec, Flags) { return f.FromInt64(1<<24+1, NearEven, DefaultControl) }, 0x4B800000, Inexact},
		{"int64 max", F32, func(f Format) (Rec, Flags) { return f.FromInt64(1<<24+1, Max, DefaultControl) }, 0x4B800001, Inexact},
		{"int64 min", F32, func(f Format) (Rec, Flags) { return f.FromInt64(-1<<63, NearEven, DefaultControl) }, 0xDF000000, 0},
		{"uint32 max", F64, func(f Format) (Rec, Flags) { return f.FromUint32(1<<32-1, NearEven, DefaultControl) }, 0x41EFFFFFFFE00000, 0},
		{"uint64 max", F32, func(f Format) (Rec, Flags) { return f.FromUint64(1<<64-1, NearEven, DefaultControl) }, 0x5F800000, Inexact},
		{"uint64 max minMag", F32, func(f Format) (Rec, Flags) { return f.FromUint64(1<<64-1, MinMag, DefaultControl) }, 0x5F7FFFFF, Inexact},
		{"f16 overflow", F16, func(f Format) (Rec, Flags) { return f.FromInt32(70000, NearEven, DefaultControl) }, 0x7C00, Overflow | Inexact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, flags := tt.conv(tt.f)
			assert.Equal(t, tt.want, tt.f.Decode(r), "got %X", tt.f.Decode(r))
			assert.Equal(t, tt.flags, flags)
		})
	}
}

func TestFromIntWidthViolation(t *testing.T) {
	assert.Panics(t, func() { F32.FromInt(1<<32, true, Int32, NearEven, DefaultControl) })
	assert.Panics(t, func() { F32.FromInt(1, true, IntWidth(16), NearEven, DefaultControl) })
	assert.NotPanics(t, func() { F32.FromInt(1<<32-1, true, Int32, NearEven, DefaultControl) })
}

func TestFromInt64AgainstNative(t *testing.T) {
	rng := testutil.NewRNG(11)
	for range 20000 {
		v := rng.Int64()
		r, _ := F64.FromInt64(v, NearEven, DefaultControl)
		require.Equal(t, oracle.Int64ToF64(v), F64.Decode(r), "%d", v)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		f      Format
		in     uint64
		signed bool
		w      IntWidth
		rm     RoundingMode
		want   uint64
		flags  Flags
	}{
		{"2.5 rne", F32, 0x40200000, true, Int32, NearEven, 2, Inexact},
		{"2.5 maxMag", F32, 0x40200000, true, Int32, NearMaxMag, 3, Inexact},
		{"-2.5 min", F32, 0xC0200000, true, Int32, Min, 0xFFFFFFFD, Inexact},
		{"-2.5 minMag", F32, 0xC0200000, true, Int64, MinMag, 0xFFFFFFFFFFFFFFFE, Inexact},
		{"2^31 int32", F32, 0x4F000000, true, Int32, NearEven, 0x7FFFFFFF, Invalid},
		{"-2^31 int32", F32, 0xCF000000, true, Int32, NearEven, 0x80000000, 0},
		{"2^32 uint32", F32, 0x4F800000, false, Int32, NearEven, 0xFFFFFFFF, Invalid},
		{"-1 uint32", F32, 0xBF800000, false, Int32, NearEven, 0, Invalid},
		{"-0.25 uint32", F32, 0xBE800000, false, Int32, NearEven, 0, Inexact},
		{"-0.25 uint32 min", F32, 0xBE800000, false, Int32, Min, 0, Invalid},
		{"nan int32", F32, 0xFFC00000, true, Int32, NearEven, 0x7FFFFFFF, Invalid},
		{"nan uint64", F32, 0x7FC00000, false, Int64, NearEven, 0xFFFFFFFFFFFFFFFF, Invalid},
		{"-inf int64", F32, 0xFF800000, true, Int64, NearEven, 0x8000000000000000, Invalid},
		{"2^63 int64", F64, 0x43E0000000000000, true, Int64, NearEven, 0x7FFFFFFFFFFFFFFF, Invalid},
		{"-2^63 int64", F64, 0xC3E0000000000000, true, Int64, NearEven, 0x8000000000000000, 0},
		{"2^63 uint64", F64, 0x43E0000000000000, false, Int64, NearEven, 0x8000000000000000, 0},
		{"-0 uint32", F64, 0x8000000000000000, false, Int32, NearEven, 0, 0},
		{"tiny max", F64, 0x0000000000000001, true, Int32, Max, 1, Inexact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags := tt.f.ToInt(tt.f.MustEncode(tt.in), tt.signed, tt.w, tt.rm)
			assert.Equal(t, tt.want, got, "got %X", got)
			assert.Equal(t, tt.flags, flags)
		})
	}
}

func TestToIntTyped(t *testing.T) {
	v32, flags := F32.ToInt32(f32(0xC0200000), NearEven)
	assert.Equal(t, int32(-2), v32)
	assert.Equal(t, Inexact, flags)

	v64, _ := F64.ToInt64(F64.MustEncode(0xC3E0000000000000), NearEven)
	assert.Equal(t, int64(-1<<63), v64)

	u32, flags := F32.ToUint32(f32(0x4F7FFFFF), NearEven)
	assert.Equal(t, uint32(0xFFFFFF00), u32)
	assert.Zero(t, flags)

	u64, _ := F32.ToUint64(f32(0x3F800000), NearEven)
	assert.Equal(t, uint64(1), u64)
}

func TestConvertAgainstNative(t *testing.T) {
	rng := testutil.NewRNG(5)

	t.Run("f64 to f32", func(t *testing.T) {
		for _, b := range rng.Patterns(20000, 11, 53) {
			r, _ := F64.Convert(F32, F64.MustEncode(b), NearEven, DefaultControl)
			want := F32.MustEncode(uint64(oracle.F64ToF32(b)))
			require.True(t, F32.Same(want, r), "%016x -> %08x", b, F32.Decode(r))
		}
	})

	t.Run("f32 to f64", func(t *testing.T) {
		for _, b := range rng.Patterns(20000, 8, 24) {
			r, flags := F32.Convert(F64, F32.MustEncode(b), NearEven, DefaultControl)
			want := F64.MustEncode(oracle.F32ToF64(uint32(b)))
			require.True(t, F64.Same(want, r), "%08x -> %016x", b, F64.Decode(r))
			require.False(t, flags.Has(Inexact))
		}
	})

	t.Run("f32 to f16", func(t *testing.T) {
		for _, b := range rng.Patterns(20000, 8, 24) {
			r, _ := F32.Convert(F16, F32.MustEncode(b), NearEven, DefaultControl)
			want := F16.MustEncode(uint64(oracle.F32ToF16(uint32(b))))
			require.True(t, F16.Same(want, r), "%08x -> %04x", b, F16.Decode(r))
		}
	})

	t.Run("f16 to f32 exhaustive", func(t *testing.T) {
		for b := uint64(0); b < 1<<16; b++ {
			r, _ := F16.Convert(F32, F16.MustEncode(b), NearEven, DefaultControl)
			want := F32.MustEncode(uint64(oracle.F16ToF32(uint16(b))))
			require.True(t, F32.Same(want, r), "%04x -> %08x", b, F32.Decode(r))
		}
	})
}

func TestConvertNaN(t *testing.T) {
	r, flags := F32.Convert(F64, f32(0x7F800001), NearEven, DefaultControl)
	assert.Equal(t, uint64(0x7FF8000020000000), F64.Decode(r))
	assert.Equal(t, Invalid, flags)

	r, flags = F64.Convert(F32, F64.MustEncode(0xFFF8000000000001), NearEven, DefaultControl)
	assert.Equal(t, uint64(0xFFC00000), F32.Decode(r))
	assert.Zero(t, flags)

	r, _ = F64.Convert(F32, F64.MustEncode(0xFFF8000000000001), NearEven, DefaultControl|DefaultNaN)
	assert.Equal(t, F32.DefaultNaN(), r)
}

func TestConvertUnderflow(t *testing.T) {
	r, flags := F64.Convert(F32, F64.MustEncode(0x0000000000000001), NearEven, DefaultControl)
	assert.Equal(t, uint64(0), F32.Decode(r))
	assert.Equal(t, Underflow|Inexact, flags)

	r, flags = F64.Convert(BF16, F64.MustEncode(0x3FF0000000000000), NearEven, DefaultControl)
	assert.Equal(t, uint64(0x3F80), BF16.Decode(r))
	assert.Zero(t, flags)
}
