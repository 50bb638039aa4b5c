// Package testutil provides testing utilities for hardfloat.
//
// This package is intended for use in tests and benchmarks only.
// It generates operand bit patterns in the style of IEEE conformance
// generators: rather than uniform bits, which almost never hit the cases
// that matter, it biases toward zeros, subnormals, range boundaries,
// infinities, NaNs and values close to one another.
//
// # Operand Generation
//
//	rng := testutil.NewRNG(seed)
//	a := rng.Pattern(8, 24)          // one binary32 bit pattern
//	ops := rng.Patterns(1000, 11, 53) // binary64 operands
package testutil
