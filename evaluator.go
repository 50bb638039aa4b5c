package hardfloat

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// BinaryOp selects a two-operand operation for batch evaluation.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMin
	OpMax
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	}
	return fmt.Sprintf("BinaryOp(%d)", uint8(op))
}

// BatchResult holds the per-element results of a batch evaluation.
type BatchResult struct {
	Out   []Rec
	Flags []Flags
	// Sticky is the OR of every element's flags.
	Sticky Flags
}

// CompareResult holds the per-element results of a batch comparison.
type CompareResult struct {
	Out    []Comparison
	Flags  []Flags
	Sticky Flags
}

// Evaluator applies one operation element-wise over operand slices, fanning
// chunks of the slices out to a bounded set of goroutines. Every element is
// an independent pure call, so results do not depend on the concurrency
// settings.
type Evaluator struct {
	format Format
	opts   options
	logger *Logger
}

// NewEvaluator creates an Evaluator for values of format f.
func NewEvaluator(f Format, optFns ...Option) *Evaluator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	e := &Evaluator{
		format: f,
		opts:   opts,
		logger: opts.logger.WithFormat(f),
	}
	e.logger.LogCapabilities(context.Background(), HostCapabilities())
	return e
}

// Format returns the format the Evaluator operates on.
func (e *Evaluator) Format() Format { return e.format }

// Binary evaluates op(a[i], b[i]) for every i.
func (e *Evaluator) Binary(ctx context.Context, op BinaryOp, a, b []Rec, rm RoundingMode) (*BatchResult, error) {
	var fn func(x, y Rec) (Rec, Flags)
	f, ctl := e.format, e.opts.control
	switch op {
	case OpAdd:
		fn = func(x, y Rec) (Rec, Flags) { return f.Add(x, y, rm, ctl) }
	case OpSub:
		fn = func(x, y Rec) (Rec, Flags) { return f.Sub(x, y, rm, ctl) }
	case OpMul:
		fn = func(x, y Rec) (Rec, Flags) { return f.Mul(x, y, rm, ctl) }
	case OpDiv:
		fn = func(x, y Rec) (Rec, Flags) { return f.Div(x, y, rm, ctl) }
	case OpMin:
		fn = func(x, y Rec) (Rec, Flags) { return f.Min(x, y, ctl) }
	case OpMax:
		fn = func(x, y Rec) (Rec, Flags) { return f.Max(x, y, ctl) }
	default:
		return nil, fmt.Errorf("%w: unknown binary op %d", ErrContractViolation, op)
	}
	if err := sameLength(a, "b", b); err != nil {
		return nil, err
	}
	out, flags, sticky, err := evaluate(ctx, e, op.String(), &rm, len(a), [][]Rec{a, b},
		func(i int) (Rec, Flags) { return fn(a[i], b[i]) })
	if err != nil {
		return nil, err
	}
	return &BatchResult{Out: out, Flags: flags, Sticky: sticky}, nil
}

// Sqrt evaluates the square root of every element of a.
func (e *Evaluator) Sqrt(ctx context.Context, a []Rec, rm RoundingMode) (*BatchResult, error) {
	f, ctl := e.format, e.opts.control
	out, flags, sticky, err := evaluate(ctx, e, "sqrt", &rm, len(a), [][]Rec{a},
		func(i int) (Rec, Flags) { return f.Sqrt(a[i], rm, ctl) })
	if err != nil {
		return nil, err
	}
	return &BatchResult{Out: out, Flags: flags, Sticky: sticky}, nil
}

// MulAdd evaluates the fused multiply-add selected by op for every i.
func (e *Evaluator) MulAdd(ctx context.Context, op MulAddOp, a, b, c []Rec, rm RoundingMode) (*BatchResult, error) {
	if err := sameLength(a, "b", b); err != nil {
		return nil, err
	}
	if err := sameLength(a, "c", c); err != nil {
		return nil, err
	}
	f, ctl := e.format, e.opts.control
	out, flags, sticky, err := evaluate(ctx, e, "muladd", &rm, len(a), [][]Rec{a, b, c},
		func(i int) (Rec, Flags) { return f.MulAdd(op, a[i], b[i], c[i], rm, ctl) })
	if err != nil {
		return nil, err
	}
	return &BatchResult{Out: out, Flags: flags, Sticky: sticky}, nil
}

// Convert converts every element of a to the format to.
func (e *Evaluator) Convert(ctx context.Context, to Format, a []Rec, rm RoundingMode) (*BatchResult, error) {
	if err := to.check(); err != nil {
		return nil, err
	}
	f, ctl := e.format, e.opts.control
	out, flags, sticky, err := evaluate(ctx, e, "convert_"+to.Name(), &rm, len(a), [][]Rec{a},
		func(i int) (Rec, Flags) { return f.Convert(to, a[i], rm, ctl) })
	if err != nil {
		return nil, err
	}
	return &BatchResult{Out: out, Flags: flags, Sticky: sticky}, nil
}

// Compare orders a[i] against b[i] for every i.
func (e *Evaluator) Compare(ctx context.Context, a, b []Rec, signaling bool) (*CompareResult, error) {
	if err := sameLength(a, "b", b); err != nil {
		return nil, err
	}
	f := e.format
	out, flags, sticky, err := evaluate(ctx, e, "compare", nil, len(a), [][]Rec{a, b},
		func(i int) (Comparison, Flags) { return f.Compare(a[i], b[i], signaling) })
	if err != nil {
		return nil, err
	}
	return &CompareResult{Out: out, Flags: flags, Sticky: sticky}, nil
}

func sameLength(a []Rec, name string, other []Rec) error {
	if len(other) != len(a) {
		return &ErrLengthMismatch{Operand: name, Expected: len(a), Actual: len(other)}
	}
	return nil
}

// evaluate runs fn over [0, n) in chunks. Operands are range-checked at the
// boundary so malformed input surfaces as an error instead of a panic inside
// a worker. rm is nil for operations that do not round.
func evaluate[T any](
	ctx context.Context,
	e *Evaluator,
	op string,
	rm *RoundingMode,
	n int,
	operands [][]Rec,
	fn func(i int) (T, Flags),
) ([]T, []Flags, Flags, error) {
	start := time.Now()
	out := make([]T, n)
	flags := make([]Flags, n)
	var sticky Accumulator

	logger := e.logger
	if rm != nil {
		logger = logger.WithRoundingMode(*rm)
	}

	err := func() error {
		if err := e.format.check(); err != nil {
			return err
		}
		if rm != nil && !rm.Valid() {
			return &ErrInvalidRoundingMode{Mode: int(*rm)}
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.opts.concurrency)
		for lo := 0; lo < n; lo += e.opts.chunkSize {
			hi := min(lo+e.opts.chunkSize, n)
			g.Go(func() error {
				if err := e.acquire(gctx, hi-lo); err != nil {
					return err
				}
				defer e.release()
				var local Flags
				for i := lo; i < hi; i++ {
					for k, ops := range operands {
						if !e.format.fits(ops[i]) {
							return fmt.Errorf("operand %d, element %d: %w", k, i,
								&ErrMalformedRec{Format: e.format.name, Rec: ops[i], Reason: "exceeds recoded width"})
						}
					}
					out[i], flags[i] = fn(i)
					local |= flags[i]
				}
				sticky.Raise(local)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		return ctx.Err()
	}()

	elapsed := time.Since(start)
	e.opts.metricsCollector.RecordBatch(op, n, sticky.Load(), elapsed, err)
	logger.LogBatch(ctx, op, n, sticky.Load(), err)
	if err != nil {
		return nil, nil, 0, err
	}
	if e.opts.accumulator != nil {
		e.opts.accumulator.Raise(sticky.Load())
	}
	return out, flags, sticky.Load(), nil
}

func (e *Evaluator) acquire(ctx context.Context, n int) error {
	if e.opts.limiter != nil {
		if err := e.opts.limiter.WaitN(ctx, n); err != nil {
			return err
		}
	}
	if e.opts.workers != nil {
		return e.opts.workers.Acquire(ctx, 1)
	}
	return ctx.Err()
}

func (e *Evaluator) release() {
	if e.opts.workers != nil {
		e.opts.workers.Release(1)
	}
}
