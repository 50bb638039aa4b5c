//go:build arm64

package hardfloat

import "golang.org/x/sys/cpu"

func init() {
	// FMADD is part of the base ARMv8 floating-point unit.
	hostCapabilities.FMA = cpu.ARM64.HasFP
	hostCapabilities.HalfPrecision = cpu.ARM64.HasFPHP
}
