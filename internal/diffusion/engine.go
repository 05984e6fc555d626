// Package diffusion implements a Monte Carlo simulator for a drift-diffusion
// decision process. Each trial is an independent discrete-time random walk
// between two absorbing boundaries; the engine returns one row per trial with
// the simulated reaction time, the boundary that was hit (speeded response)
// and a criterion-based judgment on the same evidence sample (delayed
// response). The fitting driver bins the reaction times against empirical
// quantile cutpoints to approximate cell probabilities.
package diffusion

import (
	"log/slog"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/recmem-lab/diffusion-core/pkg/logger"
)

// DefaultSeed is the root seed used when the caller does not supply one.
const DefaultSeed uint64 = 42

// EnvNumThreads overrides the worker count, mirroring the numeric
// thread-count environment variables of common parallel runtimes.
const EnvNumThreads = "DIFFUSION_NUM_THREADS"

// Engine runs diffusion simulations. It holds no state across calls other
// than its configuration: Simulate is a pure function of (Params, root seed).
type Engine struct {
	seed     uint64
	workers  int
	maxSteps int
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed sets the root seed that per-trial streams are derived from.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithWorkers fixes the worker count. Zero means use all hardware threads,
// subject to the DIFFUSION_NUM_THREADS environment override.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithMaxSteps sets a diagnostic ceiling on steps per trial. The walk is
// unbounded by default; a near-zero drift with a wide boundary separation is
// legitimately slow, not an error. When the ceiling is set and exceeded the
// whole call fails.
func WithMaxSteps(n int) Option {
	return func(e *Engine) { e.maxSteps = n }
}

// WithLogger sets the engine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		seed:   DefaultSeed,
		logger: logger.Default,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Seed returns the engine's root seed.
func (e *Engine) Seed() uint64 {
	return e.seed
}

func (e *Engine) workerCount() int {
	if e.workers > 0 {
		return e.workers
	}
	if v := os.Getenv(EnvNumThreads); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.GOMAXPROCS(0)
}

// Simulate runs p.N independent trials and returns the N-row output table.
// Trials are partitioned into contiguous chunks executed on a fixed set of
// workers; each worker writes its disjoint row range in place, so the steady
// state needs no locking. Any worker error aborts the whole call: either a
// complete table is returned, or none.
func (e *Engine) Simulate(p Params) (Table, error) {
	pl, err := newPlan(p, e.maxSteps)
	if err != nil {
		return nil, err
	}

	workers := e.workerCount()
	if workers > p.N {
		workers = p.N
	}
	chunk := (p.N + workers - 1) / workers

	started := time.Now()
	e.logger.Debug("simulation started",
		"trials", p.N,
		"workers", workers,
		"seed", e.seed)

	out := make(Table, p.N)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > p.N {
			hi = p.N
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			errs[w] = e.simulateRange(pl, lo, hi, out)
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	e.logger.Debug("simulation completed",
		"trials", p.N,
		"elapsed", time.Since(started))
	return out, nil
}

// simulateRange runs trials [lo, hi) into the shared table. The worker owns
// one stream reseeded per trial index, one step-noise generator on top of it,
// and one set of latent samplers.
func (e *Engine) simulateRange(pl *plan, lo, hi int, out Table) error {
	src := &stream{}
	rng := mrand.New(src)
	smp := pl.samplersFor(src)

	for i := lo; i < hi; i++ {
		src.seedTrial(e.seed, i)
		tr, err := pl.runTrial(rng, smp)
		if err != nil {
			return err
		}
		out[i] = pl.classify(tr)
	}
	return nil
}

var (
	defaultMu     sync.Mutex
	defaultEngine = NewEngine()
)

// SetSeed reseeds the process-wide default engine used by Simulate. It fixes
// reproducibility for subsequent Simulate calls until the next SetSeed.
// Callers that want isolated state should construct their own Engine with
// WithSeed instead.
func SetSeed(seed uint64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = NewEngine(WithSeed(seed))
}

// Simulate runs p on the process-wide default engine.
func Simulate(p Params) (Table, error) {
	defaultMu.Lock()
	e := defaultEngine
	defaultMu.Unlock()
	return e.Simulate(p)
}
