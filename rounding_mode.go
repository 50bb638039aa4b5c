package hardfloat

// RoundingMode selects how an inexact result is rounded. The set is fixed by
// IEEE-754; the numeric values are the ones used on the wire by conformance
// vectors.
type RoundingMode uint8

const (
	// NearEven rounds to nearest, ties to even. IEEE default.
	NearEven RoundingMode = iota
	// MinMag rounds toward zero.
	MinMag
	// Min rounds toward negative infinity.
	Min
	// Max rounds toward positive infinity.
	Max
	// NearMaxMag rounds to nearest, ties away from zero.
	NearMaxMag
)

var roundingModeNames = [...]string{
	NearEven:   "near_even",
	MinMag:     "minMag",
	Min:        "min",
	Max:        "max",
	NearMaxMag: "near_maxMag",
}

// RoundingModes lists every rounding mode in wire order.
var RoundingModes = []RoundingMode{NearEven, MinMag, Min, Max, NearMaxMag}

// Valid reports whether rm is one of the five named modes.
func (rm RoundingMode) Valid() bool { return rm <= NearMaxMag }

func (rm RoundingMode) String() string {
	if !rm.Valid() {
		return "invalid"
	}
	return roundingModeNames[rm]
}

// ParseRoundingMode converts a wire enumerant (0..4) into a RoundingMode.
func ParseRoundingMode(v int) (RoundingMode, error) {
	if v < 0 || v > int(NearMaxMag) {
		return 0, &ErrInvalidRoundingMode{Mode: v}
	}
	return RoundingMode(v), nil
}

// Control carries the implementation options that IEEE-754 leaves open.
type Control uint8

const (
	// TininessAfterRounding detects tininess after rounding to the target
	// precision with an unbounded exponent. When clear, tininess is detected
	// before rounding.
	TininessAfterRounding Control = 1 << iota
	// DefaultNaN makes every NaN result the canonical default NaN instead of
	// propagating the payload of a NaN operand.
	DefaultNaN
)

// DefaultControl detects tininess after rounding and propagates NaN payloads.
const DefaultControl = TininessAfterRounding
