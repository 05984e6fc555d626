package diffd

import (
	"fmt"
	"sync"
	"time"

	diffusionv1 "github.com/recmem-lab/diffusion-core/gen/go/diffusion/v1"
	"github.com/recmem-lab/diffusion-core/internal/diffusion"
	"github.com/recmem-lab/diffusion-core/pkg/utils"
)

// RunRecord holds everything the daemon keeps per run: the run state, the
// input it was created with, and after completion the summary plus the full
// trial table for export.
type RunRecord struct {
	Run     *diffusionv1.Run
	Input   *diffusionv1.RunInput
	Summary *diffusionv1.RunSummary
	Table   diffusion.Table
}

type RunStore struct {
	mu   sync.RWMutex
	runs map[string]*RunRecord
}

func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]*RunRecord),
	}
}

func nowUnixMs() int64 {
	return time.Now().UTC().UnixMilli()
}

func (s *RunStore) Create(runID string, input *diffusionv1.RunInput) (*RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if runID == "" {
		runID = utils.GenerateRunID()
	}
	if _, exists := s.runs[runID]; exists {
		return nil, fmt.Errorf("run already exists: %s", runID)
	}

	rec := &RunRecord{
		Run: &diffusionv1.Run{
			Id:              runID,
			Status:          diffusionv1.RunStatus_RUN_STATUS_PENDING,
			CreatedAtUnixMs: nowUnixMs(),
		},
		Input: input,
	}
	s.runs[runID] = rec
	return rec, nil
}

func (s *RunStore) Get(runID string) (*RunRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[runID]
	return rec, ok
}

func (s *RunStore) List(limit int) []*RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	out := make([]*RunRecord, 0, minInt(limit, len(s.runs)))
	for _, rec := range s.runs {
		out = append(out, rec)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func (s *RunStore) SetStatus(runID string, status diffusionv1.RunStatus, errMsg string) (*RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run not found: %s", runID)
	}

	rec.Run.Status = status
	if errMsg != "" {
		rec.Run.Error = errMsg
	}

	switch status {
	case diffusionv1.RunStatus_RUN_STATUS_RUNNING:
		if rec.Run.StartedAtUnixMs == 0 {
			rec.Run.StartedAtUnixMs = nowUnixMs()
		}
	case diffusionv1.RunStatus_RUN_STATUS_COMPLETED,
		diffusionv1.RunStatus_RUN_STATUS_FAILED,
		diffusionv1.RunStatus_RUN_STATUS_CANCELLED:
		rec.Run.EndedAtUnixMs = nowUnixMs()
	}

	return rec, nil
}

// SetResult attaches the completed trial table and its summary to a run.
func (s *RunStore) SetResult(runID string, table diffusion.Table, summary *diffusionv1.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runs[runID]
	if !ok {
		return fmt.Errorf("run not found: %s", runID)
	}
	rec.Table = table
	rec.Summary = summary
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
