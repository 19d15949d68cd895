package sweep

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"applause-ising/internal/curve"
	"applause-ising/pkg/rng"
)

// Progress is one append-only monitoring event, emitted after a pair's sweep
// finishes. Sends never block; a slow consumer just misses events.
type Progress struct {
	Pair    Pair
	Elapsed time.Duration
}

// Orchestrator fans the Cartesian product of coupling and field values out to
// a worker pool, one temperature sweep per (J, h) pair. Pairs share no
// mutable state, so any worker count yields the same curves.
type Orchestrator struct {
	Workers  int
	Log      logrus.FieldLogger
	Progress chan<- Progress
}

// NewOrchestrator returns an orchestrator using the given worker count.
// A count of zero or less means one worker per CPU.
func NewOrchestrator(workers int, log logrus.FieldLogger) *Orchestrator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Orchestrator{Workers: workers, Log: log}
}

// Pairs enumerates the Cartesian product of the coupling and field values in
// row-major order, assigning each pair its stream-keying index.
func Pairs(couplings, fields []float64) []Pair {
	pairs := make([]Pair, 0, len(couplings)*len(fields))
	for _, j := range couplings {
		for _, h := range fields {
			pairs = append(pairs, Pair{Index: len(pairs), J: j, H: h})
		}
	}
	return pairs
}

// Run sweeps every pair and returns the normalized curves ordered by pair
// index. Each pair draws from random streams derived from seed and its own
// index, so results are identical for any worker count or execution order.
// On cancellation the context error is returned along with the curves that
// had already completed.
func (o *Orchestrator) Run(ctx context.Context, couplings, fields []float64, params Params, seed int64) ([]*curve.Curve, error) {
	pairs := Pairs(couplings, fields)
	streams := rng.NewStreams(seed)
	controller := NewController(params)

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	type result struct {
		pair  Pair
		curve *curve.Curve
		err   error
	}

	jobs := make(chan Pair)
	results := make(chan result)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pair := range jobs {
				start := time.Now()
				c, err := controller.Run(ctx, pair, streams)
				if err == nil {
					o.emit(Progress{Pair: pair, Elapsed: time.Since(start)})
				}
				results <- result{pair: pair, curve: c, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, pair := range pairs {
			select {
			case jobs <- pair:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	byIndex := make([]*curve.Curve, len(pairs))
	var runErr error
	for res := range results {
		if res.err != nil {
			// Cancellation is the only per-pair failure; remember it but let
			// the remaining workers drain.
			runErr = res.err
			continue
		}
		res.curve.Normalize()
		o.Log.WithFields(logrus.Fields{
			"J":      res.pair.J,
			"h":      res.pair.H,
			"points": len(res.curve.Samples),
		}).Debug("pair complete")
		if res.curve.Degenerate {
			o.Log.WithFields(logrus.Fields{
				"J": res.pair.J,
				"h": res.pair.H,
			}).Warn("degenerate curve: all-zero magnetization")
		}
		byIndex[res.pair.Index] = res.curve
	}

	curves := make([]*curve.Curve, 0, len(byIndex))
	for _, c := range byIndex {
		if c != nil {
			curves = append(curves, c)
		}
	}
	if runErr == nil {
		runErr = ctx.Err()
	}
	return curves, runErr
}

func (o *Orchestrator) emit(p Progress) {
	if o.Progress == nil {
		return
	}
	select {
	case o.Progress <- p:
	default:
	}
}
