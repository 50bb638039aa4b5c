// Package oracle computes reference results with the host's native IEEE
// arithmetic.
//
// Go's float32 and float64 operations are correctly rounded to nearest-even,
// and math.Sqrt and math.FMA are correctly rounded as well, so they serve as
// an independent check of values (not flags, and not NaN payloads) in
// randomized tests. Binary16 has no native Go type; FromFloat32 narrows to it
// in software.
package oracle
