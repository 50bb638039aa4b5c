package hardfloat

import (
	"strings"
	"sync/atomic"
)

// Flags is the IEEE-754 exception flag word returned by every operation.
//
// Bit assignment matches the conformance vectors:
//
//	bit0 inexact
//	bit1 underflow
//	bit2 overflow
//	bit3 divide-by-zero (infinite result from finite operands)
//	bit4 invalid
type Flags uint8

const (
	Inexact Flags = 1 << iota
	Underflow
	Overflow
	DivideByZero
	Invalid
)

// AllFlags is the set of every defined flag bit.
const AllFlags = Inexact | Underflow | Overflow | DivideByZero | Invalid

var flagNames = [...]struct {
	flag Flags
	name string
}{
	{Invalid, "invalid"},
	{DivideByZero, "divbyzero"},
	{Overflow, "overflow"},
	{Underflow, "underflow"},
	{Inexact, "inexact"},
}

// Has reports whether every bit of mask is raised.
func (fl Flags) Has(mask Flags) bool { return fl&mask == mask }

// String renders the raised flags, most severe first, e.g. "overflow|inexact".
func (fl Flags) String() string {
	if fl == 0 {
		return "none"
	}
	var sb strings.Builder
	for _, n := range flagNames {
		if fl&n.flag == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(n.name)
	}
	return sb.String()
}

// Accumulator is a caller-held sticky flag register. Operations never touch
// it themselves; callers that want IEEE sticky semantics across a sequence of
// calls raise each call's flags into it.
//
// The zero value is ready to use and safe for concurrent use.
type Accumulator struct {
	v atomic.Uint32
}

// Raise ORs fl into the register.
func (a *Accumulator) Raise(fl Flags) {
	if fl != 0 {
		a.v.Or(uint32(fl))
	}
}

// Load returns the accumulated flags.
func (a *Accumulator) Load() Flags { return Flags(a.v.Load()) }

// Clear resets the register and returns the flags it held.
func (a *Accumulator) Clear() Flags { return Flags(a.v.Swap(0)) }
