package diffd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	diffusionv1 "github.com/recmem-lab/diffusion-core/gen/go/diffusion/v1"
	"github.com/recmem-lab/diffusion-core/internal/diffusion"
	"github.com/recmem-lab/diffusion-core/pkg/logger"
	"github.com/recmem-lab/diffusion-core/pkg/utils"
)

var (
	ErrRunNotFound  = errors.New("run not found")
	ErrRunTerminal  = errors.New("run is terminal")
	ErrRunIDMissing = errors.New("run_id is required")
)

// RunExecutor manages asynchronous run execution and per-run cancellation.
// It also holds the daemon-wide default seed used when a run input does not
// carry one.
type RunExecutor struct {
	store *RunStore

	mu              sync.Mutex
	cancels         map[string]context.CancelFunc
	defaultSeed     uint64
	defaultWorkers  int
	defaultMaxSteps int
}

func NewRunExecutor(store *RunStore) *RunExecutor {
	return &RunExecutor{
		store:       store,
		cancels:     make(map[string]context.CancelFunc),
		defaultSeed: diffusion.DefaultSeed,
	}
}

// SetSeed replaces the daemon-wide default seed. Runs whose input carries an
// explicit seed are unaffected.
func (e *RunExecutor) SetSeed(seed uint64) {
	e.mu.Lock()
	e.defaultSeed = seed
	e.mu.Unlock()
}

// DefaultSeed returns the current daemon-wide default seed.
func (e *RunExecutor) DefaultSeed() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.defaultSeed
}

// SetDefaults configures the daemon-wide worker count and step ceiling used
// when a run input leaves them at zero.
func (e *RunExecutor) SetDefaults(workers, maxSteps int) {
	e.mu.Lock()
	e.defaultWorkers = workers
	e.defaultMaxSteps = maxSteps
	e.mu.Unlock()
}

// Start begins executing a run asynchronously.
// Returns the updated run state (RUNNING) or an error.
func (e *RunExecutor) Start(runID string) (*RunRecord, error) {
	if runID == "" {
		return nil, ErrRunIDMissing
	}

	rec, ok := e.store.Get(runID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	switch rec.Run.Status {
	case diffusionv1.RunStatus_RUN_STATUS_RUNNING:
		return rec, nil
	case diffusionv1.RunStatus_RUN_STATUS_COMPLETED,
		diffusionv1.RunStatus_RUN_STATUS_FAILED,
		diffusionv1.RunStatus_RUN_STATUS_CANCELLED:
		return nil, fmt.Errorf("%w: %s", ErrRunTerminal, runID)
	}

	updated, err := e.store.SetStatus(runID, diffusionv1.RunStatus_RUN_STATUS_RUNNING, "")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	// Replace any existing cancel func (shouldn't happen for non-running, but safe).
	if old, exists := e.cancels[runID]; exists {
		old()
	}
	e.cancels[runID] = cancel
	e.mu.Unlock()

	go e.runSimulation(ctx, runID)
	return updated, nil
}

// Stop requests cancellation for a running run and marks it cancelled.
func (e *RunExecutor) Stop(runID string) (*RunRecord, error) {
	if runID == "" {
		return nil, ErrRunIDMissing
	}

	e.mu.Lock()
	cancel, ok := e.cancels[runID]
	e.mu.Unlock()

	if ok {
		cancel()
	}

	updated, err := e.store.SetStatus(runID, diffusionv1.RunStatus_RUN_STATUS_CANCELLED, "")
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (e *RunExecutor) cleanup(runID string) {
	e.mu.Lock()
	if cancel, ok := e.cancels[runID]; ok {
		cancel()
		delete(e.cancels, runID)
	}
	e.mu.Unlock()
}

func (e *RunExecutor) runSimulation(ctx context.Context, runID string) {
	defer e.cleanup(runID)

	rec, ok := e.store.Get(runID)
	if !ok {
		logger.Error("run not found", "run_id", runID)
		return
	}

	params, err := paramsFromProto(rec.Input)
	if err != nil {
		logger.Error("invalid run input", "run_id", runID, "error", err)
		if _, setErr := e.store.SetStatus(runID, diffusionv1.RunStatus_RUN_STATUS_FAILED, fmt.Sprintf("invalid input: %v", err)); setErr != nil {
			logger.Error("failed to set failed status", "run_id", runID, "error", setErr)
		}
		return
	}

	e.mu.Lock()
	seed := e.defaultSeed
	workers := e.defaultWorkers
	maxSteps := e.defaultMaxSteps
	e.mu.Unlock()
	if rec.Input.Seed != 0 {
		seed = rec.Input.Seed
	}
	if rec.Input.Workers > 0 {
		workers = int(rec.Input.Workers)
	}
	if rec.Input.MaxSteps > 0 {
		maxSteps = int(rec.Input.MaxSteps)
	}

	opts := []diffusion.Option{diffusion.WithSeed(seed)}
	if workers > 0 {
		opts = append(opts, diffusion.WithWorkers(workers))
	}
	if maxSteps > 0 {
		opts = append(opts, diffusion.WithMaxSteps(maxSteps))
	}
	eng := diffusion.NewEngine(opts...)

	logger.Info("starting run", "run_id", runID, "trials", params.N, "seed", seed)
	table, err := eng.Simulate(params)

	// A cancelled run discards its output regardless of how Simulate exited.
	if ctx.Err() != nil {
		logger.Info("run cancelled", "run_id", runID)
		return
	}
	if err != nil {
		logger.Error("run failed", "run_id", runID, "error", err)
		if _, setErr := e.store.SetStatus(runID, diffusionv1.RunStatus_RUN_STATUS_FAILED, err.Error()); setErr != nil {
			logger.Error("failed to set failed status", "run_id", runID, "error", setErr)
		}
		return
	}

	summary := summarize(table)
	if err := e.store.SetResult(runID, table, summary); err != nil {
		logger.Error("failed to set result", "run_id", runID, "error", err)
	}

	// Mark as completed if still running.
	rec, ok = e.store.Get(runID)
	if ok && rec.Run.Status == diffusionv1.RunStatus_RUN_STATUS_RUNNING {
		if _, err := e.store.SetStatus(runID, diffusionv1.RunStatus_RUN_STATUS_COMPLETED, ""); err != nil {
			logger.Error("failed to set completed status", "run_id", runID, "error", err)
		} else {
			logger.Info("run completed", "run_id", runID,
				"trials", summary.Trials,
				"mean_rt", summary.MeanRt)
		}
	}
}

// paramsFromProto converts a protobuf run input into engine parameters.
func paramsFromProto(input *diffusionv1.RunInput) (diffusion.Params, error) {
	if input == nil || input.Params == nil {
		return diffusion.Params{}, errors.New("params are required")
	}
	pb := input.Params
	p := diffusion.Params{
		N:         int(pb.N),
		A:         pb.A,
		V:         pb.V,
		SV:        pb.Sv,
		T0:        pb.T0,
		ST0:       pb.St0,
		Z:         pb.Z,
		SZ:        pb.Sz,
		S:         pb.S,
		CritUpper: pb.CritUpper,
		CritLower: pb.CritLower,
	}
	if err := p.Validate(); err != nil {
		return diffusion.Params{}, err
	}
	return p, nil
}

// summarize computes the summary statistics of a completed trial table.
func summarize(table diffusion.Table) *diffusionv1.RunSummary {
	rts := table.RTs()
	speeded := 0
	delayed := 0
	for _, row := range table {
		speeded += row.SpeededResp
		delayed += row.DelayedResp
	}

	n := len(table)
	summary := &diffusionv1.RunSummary{
		Trials: int64(n),
		MeanRt: utils.Mean(rts),
		RtP50:  utils.P50(rts),
		RtP95:  utils.P95(rts),
		RtP99:  utils.P99(rts),
	}
	if n > 0 {
		summary.SpeededUpperRate = float64(speeded) / float64(n)
		summary.DelayedPositiveRate = float64(delayed) / float64(n)
	}
	return summary
}
