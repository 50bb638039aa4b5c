package hardfloat

import "runtime"

// Capabilities describes the host's native floating-point features. The
// arithmetic in this package never depends on them; the Evaluator reports
// them so results can be compared against native execution with the right
// expectations.
type Capabilities struct {
	Arch string
	// FMA is set when the host has a fused multiply-add instruction.
	FMA bool
	// HalfPrecision is set when the host has native binary16 arithmetic.
	HalfPrecision bool
	// BFloat16 is set when the host has native bfloat16 instructions.
	BFloat16 bool
}

var hostCapabilities = Capabilities{Arch: runtime.GOARCH}

// HostCapabilities returns the features detected at startup.
func HostCapabilities() Capabilities { return hostCapabilities }
