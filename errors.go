package hardfloat

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation is matched (via errors.Is) by every error that
	// reports malformed caller input. IEEE exceptions are never errors; they
	// are reported through Flags.
	ErrContractViolation = errors.New("hardfloat: contract violation")
)

// ErrWidth indicates a standard bit pattern with bits set above the width of
// its format.
type ErrWidth struct {
	Format string
	Width  int
	Bits   uint64
}

func (e *ErrWidth) Error() string {
	return fmt.Sprintf("%s: bit pattern %#x exceeds %d bits", e.Format, e.Bits, e.Width)
}

func (e *ErrWidth) Unwrap() error { return ErrContractViolation }

// ErrMalformedRec indicates a recoded value that is not a valid encoding for
// its format.
type ErrMalformedRec struct {
	Format string
	Rec    Rec
	Reason string
}

func (e *ErrMalformedRec) Error() string {
	return fmt.Sprintf("%s: malformed recoded value %s: %s", e.Format, e.Rec, e.Reason)
}

func (e *ErrMalformedRec) Unwrap() error { return ErrContractViolation }

// ErrInvalidRoundingMode indicates a rounding-mode enumerant outside 0..4.
type ErrInvalidRoundingMode struct {
	Mode int
}

func (e *ErrInvalidRoundingMode) Error() string {
	return fmt.Sprintf("invalid rounding mode: %d", e.Mode)
}

func (e *ErrInvalidRoundingMode) Unwrap() error { return ErrContractViolation }

// ErrUnsupportedFormat indicates field widths NewFormat cannot model.
type ErrUnsupportedFormat struct {
	ExpWidth int
	SigWidth int
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format: exponent width %d, significand width %d", e.ExpWidth, e.SigWidth)
}

func (e *ErrUnsupportedFormat) Unwrap() error { return ErrContractViolation }

// ErrLengthMismatch indicates operand slices of different lengths.
type ErrLengthMismatch struct {
	Operand  string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("operand %s: length mismatch: expected %d, got %d", e.Operand, e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrContractViolation }

// mustOperands panics when a pure operation receives malformed input. These
// are caller bugs, not IEEE conditions.
func (f Format) mustOperands(rm RoundingMode, ops ...Rec) {
	if !rm.Valid() {
		panic(&ErrInvalidRoundingMode{Mode: int(rm)})
	}
	f.mustFit(ops...)
}

func (f Format) mustFit(ops ...Rec) {
	if err := f.check(); err != nil {
		panic(err)
	}
	for _, r := range ops {
		if !f.fits(r) {
			panic(&ErrMalformedRec{Format: f.name, Rec: r, Reason: fmt.Sprintf("exceeds %d bits", f.RecWidth())})
		}
	}
}
