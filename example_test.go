package hardfloat_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/hardfloat"
)

// Example_divideByZero shows the exception flags returned by an operation.
func Example_divideByZero() {
	a := hardfloat.F32.MustEncode(0x3F800000) // 1.0
	b := hardfloat.F32.MustEncode(0x00000000) // +0.0

	q, flags := hardfloat.F32.Div(a, b, hardfloat.NearEven, hardfloat.DefaultControl)
	fmt.Printf("%08X %s\n", hardfloat.F32.Decode(q), flags)
	// Output: 7F800000 divbyzero
}

// Example_accumulator collects sticky flags across a sequence of operations.
func Example_accumulator() {
	f := hardfloat.F32
	var acc hardfloat.Accumulator

	maxF := f.MustEncode(0x7F7FFFFF)
	sum, flags := f.Add(maxF, maxF, hardfloat.NearEven, hardfloat.DefaultControl)
	acc.Raise(flags)

	_, flags = f.Sub(sum, sum, hardfloat.NearEven, hardfloat.DefaultControl)
	acc.Raise(flags)

	fmt.Println(acc.Load())
	// Output: invalid|overflow|inexact
}

// Example_evaluator adds two slices element-wise.
func Example_evaluator() {
	f := hardfloat.F32
	a := make([]hardfloat.Rec, 2)
	b := make([]hardfloat.Rec, 2)
	if err := f.EncodeSlice(a, []uint64{0x3F800000, 0x40000000}); err != nil {
		log.Fatal(err)
	}
	if err := f.EncodeSlice(b, []uint64{0x40400000, 0x7F7FFFFF}); err != nil {
		log.Fatal(err)
	}

	ev := hardfloat.NewEvaluator(f, hardfloat.WithConcurrency(2))
	res, err := ev.Binary(context.Background(), hardfloat.OpAdd, a, b, hardfloat.NearEven)
	if err != nil {
		log.Fatal(err)
	}

	out := make([]uint64, len(res.Out))
	if err := f.DecodeSlice(out, res.Out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%08X %08X %s\n", out[0], out[1], res.Sticky)
	// Output: 40800000 7F7FFFFF inexact
}
