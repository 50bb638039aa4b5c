package hardfloat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "overflow|inexact", (Overflow | Inexact).String())
	assert.Equal(t, "invalid|divbyzero|overflow|underflow|inexact", AllFlags.String())
}

func TestFlagsBits(t *testing.T) {
	assert.Equal(t, Flags(0x01), Inexact)
	assert.Equal(t, Flags(0x02), Underflow)
	assert.Equal(t, Flags(0x04), Overflow)
	assert.Equal(t, Flags(0x08), DivideByZero)
	assert.Equal(t, Flags(0x10), Invalid)

	assert.True(t, (Overflow | Inexact).Has(Overflow))
	assert.False(t, Inexact.Has(Overflow|Inexact))
}

func TestAccumulator(t *testing.T) {
	var acc Accumulator
	assert.Zero(t, acc.Load())

	var wg sync.WaitGroup
	for _, fl := range []Flags{Inexact, Underflow, Overflow, DivideByZero, Invalid} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				acc.Raise(fl)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, AllFlags, acc.Load())
	assert.Equal(t, AllFlags, acc.Clear())
	assert.Zero(t, acc.Load())
}

func TestRoundingModes(t *testing.T) {
	for i, rm := range RoundingModes {
		got, err := ParseRoundingMode(i)
		require.NoError(t, err)
		assert.Equal(t, rm, got)
		assert.True(t, rm.Valid())
	}
	assert.Equal(t, "near_even", NearEven.String())
	assert.Equal(t, "near_maxMag", NearMaxMag.String())
	assert.Equal(t, "invalid", RoundingMode(9).String())

	_, err := ParseRoundingMode(5)
	assert.ErrorIs(t, err, ErrContractViolation)
	_, err = ParseRoundingMode(-1)
	var rme *ErrInvalidRoundingMode
	assert.ErrorAs(t, err, &rme)
	assert.Equal(t, -1, rme.Mode)
}
