//go:build amd64

package hardfloat

import "golang.org/x/sys/cpu"

func init() {
	hostCapabilities.FMA = cpu.X86.HasFMA
	hostCapabilities.BFloat16 = cpu.X86.HasAVX512BF16
}
