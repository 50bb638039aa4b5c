package hardfloat

import "fmt"

// Comparison is the outcome of comparing two values. All three fields are
// false when the operands are unordered (at least one is a NaN).
type Comparison struct {
	LT bool
	EQ bool
	GT bool
}

// Unordered reports whether the comparison involved a NaN.
func (c Comparison) Unordered() bool { return !c.LT && !c.EQ && !c.GT }

// CompareOp selects a predicate derived from Compare. The numeric values are
// the wire selectors of the conformance vectors.
type CompareOp uint8

const (
	OpLT CompareOp = iota
	OpLE
	OpEQ
)

func (op CompareOp) String() string {
	switch op {
	case OpLT:
		return "lt"
	case OpLE:
		return "le"
	case OpEQ:
		return "eq"
	}
	return "invalid"
}

// Compare orders a against b.
//
// Any NaN operand makes the pair unordered. Invalid is raised when either
// operand is a signaling NaN, or when signaling is set and the pair is
// unordered. +0 and -0 compare equal.
func (f Format) Compare(a, b Rec, signaling bool) (Comparison, Flags) {
	f.mustFit(a, b)
	x, y := f.unpack(a), f.unpack(b)
	if x.nan || y.nan {
		var flags Flags
		if signaling || f.IsSignalingNaN(a) || f.IsSignalingNaN(b) {
			flags = Invalid
		}
		return Comparison{}, flags
	}
	switch c := orderedCmp(x, y); {
	case c < 0:
		return Comparison{LT: true}, 0
	case c > 0:
		return Comparison{GT: true}, 0
	}
	return Comparison{EQ: true}, 0
}

// ComparePredicate evaluates one of the lt/le/eq predicates.
func (f Format) ComparePredicate(a, b Rec, op CompareOp, signaling bool) (bool, Flags) {
	c, flags := f.Compare(a, b, signaling)
	switch op {
	case OpLT:
		return c.LT, flags
	case OpLE:
		return c.LT || c.EQ, flags
	case OpEQ:
		return c.EQ, flags
	}
	panic(fmt.Errorf("%w: unknown compare op %d", ErrContractViolation, op))
}

// Eq is the IEEE compareQuietEqual predicate.
func (f Format) Eq(a, b Rec) (bool, Flags) { return f.ComparePredicate(a, b, OpEQ, false) }

// Lt is the IEEE compareSignalingLess predicate.
func (f Format) Lt(a, b Rec) (bool, Flags) { return f.ComparePredicate(a, b, OpLT, true) }

// Le is the IEEE compareSignalingLessEqual predicate.
func (f Format) Le(a, b Rec) (bool, Flags) { return f.ComparePredicate(a, b, OpLE, true) }

// EqSignaling is the IEEE compareSignalingEqual predicate.
func (f Format) EqSignaling(a, b Rec) (bool, Flags) { return f.ComparePredicate(a, b, OpEQ, true) }

// LtQuiet is the IEEE compareQuietLess predicate.
func (f Format) LtQuiet(a, b Rec) (bool, Flags) { return f.ComparePredicate(a, b, OpLT, false) }

// LeQuiet is the IEEE compareQuietLessEqual predicate.
func (f Format) LeQuiet(a, b Rec) (bool, Flags) { return f.ComparePredicate(a, b, OpLE, false) }

// Min returns the IEEE 754-2019 minimumNumber of a and b: a quiet NaN operand
// is ignored in favor of the other operand, a signaling NaN raises invalid,
// and -0 is less than +0.
func (f Format) Min(a, b Rec, ctl Control) (Rec, Flags) {
	return f.minMax(a, b, ctl, true)
}

// Max returns the IEEE 754-2019 maximumNumber of a and b.
func (f Format) Max(a, b Rec, ctl Control) (Rec, Flags) {
	return f.minMax(a, b, ctl, false)
}

func (f Format) minMax(a, b Rec, ctl Control, wantMin bool) (Rec, Flags) {
	f.mustFit(a, b)
	var flags Flags
	if f.IsSignalingNaN(a) || f.IsSignalingNaN(b) {
		flags = Invalid
	}
	aNaN, bNaN := f.IsNaN(a), f.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return f.propagateNaN(ctl, a, b), flags
	case aNaN:
		return b, flags
	case bNaN:
		return a, flags
	}

	x, y := f.unpack(a), f.unpack(b)
	c := orderedCmp(x, y)
	if c == 0 && x.zero && y.zero {
		// -0 orders below +0 here.
		if x.sign != wantMin {
			return b, flags
		}
		return a, flags
	}
	if (c <= 0) == wantMin {
		return a, flags
	}
	return b, flags
}

// orderedCmp returns -1, 0 or +1 as x is less than, equal to or greater than
// y. Neither operand may be a NaN.
func orderedCmp(x, y raw) int {
	if x.zero && y.zero {
		return 0
	}
	if x.sign != y.sign {
		if x.sign {
			return -1
		}
		return 1
	}
	c := magnitudeCmp(x, y)
	if x.sign {
		return -c
	}
	return c
}

func magnitudeCmp(x, y raw) int {
	switch {
	case x.inf || y.inf:
		return boolCmp(x.inf, y.inf)
	case x.zero || y.zero:
		return boolCmp(y.zero, x.zero)
	case x.exp != y.exp:
		if x.exp < y.exp {
			return -1
		}
		return 1
	case x.sig != y.sig:
		if x.sig < y.sig {
			return -1
		}
		return 1
	}
	return 0
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
