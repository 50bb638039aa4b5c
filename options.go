package hardfloat

import (
	"runtime"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const defaultChunkSize = 4096

type options struct {
	concurrency      int
	chunkSize        int
	control          Control
	accumulator      *Accumulator
	logger           *Logger
	metricsCollector MetricsCollector
	workers          *semaphore.Weighted
	limiter          *rate.Limiter
}

func defaultOptions() options {
	return options{
		concurrency:      runtime.GOMAXPROCS(0),
		chunkSize:        defaultChunkSize,
		control:          DefaultControl,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures an Evaluator.
type Option func(*options)

// WithConcurrency bounds the number of chunks evaluated at once.
//
// If n <= 0, GOMAXPROCS is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithChunkSize sets how many elements one worker evaluates per task.
//
// If n <= 0, a default of 4096 is used.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = defaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithControl sets the Control word passed to every operation.
func WithControl(ctl Control) Option {
	return func(o *options) {
		o.control = ctl
	}
}

// WithAccumulator raises every batch's sticky flags into acc.
//
// The accumulator stays owned by the caller: the Evaluator only ORs into it,
// so one accumulator can collect flags across many batches and evaluators.
func WithAccumulator(acc *Accumulator) Option {
	return func(o *options) {
		o.accumulator = acc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for batch evaluations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hardfloat.BasicMetricsCollector{}
//	ev := hardfloat.NewEvaluator(hardfloat.F32, hardfloat.WithMetricsCollector(metrics))
//	// ... evaluate batches ...
//	fmt.Println(metrics.Stats().InvalidBatches)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithWorkerBudget makes every chunk hold one unit of sem while it runs, so
// several Evaluators sharing sem never run more than its weight in chunks
// at once. WithConcurrency still bounds each Evaluator on its own.
func WithWorkerBudget(sem *semaphore.Weighted) Option {
	return func(o *options) {
		o.workers = sem
	}
}

// WithRateLimiter throttles evaluation to the limiter's rate in elements per
// second. Each chunk waits for one token per element, so the limiter's burst
// must be at least the chunk size (see WithChunkSize) or the batch fails.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}
