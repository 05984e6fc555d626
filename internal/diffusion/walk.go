package diffusion

import (
	"fmt"
	mrand "math/rand/v2"
)

// trial is the ephemeral per-trial state; it lives only for the duration of
// one trial's integration.
type trial struct {
	evidence float64 // per-trial drift rate sample
	start    float64 // per-trial starting position
	ndt      float64 // per-trial non-decision time
	pos      float64 // current walk position
	steps    int     // discrete increments consumed before absorption
}

// runTrial draws one trial's latents and advances the walk to absorption.
// The loop condition is checked before the first increment: a starting
// point outside (0, A) is absorbed immediately with zero steps. The loop
// body must stay allocation-free; it dominates the cost of the whole engine.
func (pl *plan) runTrial(rng *mrand.Rand, smp samplers) (trial, error) {
	tr := trial{
		evidence: smp.evidence.Rand(),
		start:    smp.start.Rand(),
		ndt:      smp.ndt.Rand(),
	}
	drift := tr.evidence * dt

	tr.pos = tr.start
	for tr.pos < pl.A && tr.pos > 0 {
		if pl.maxSteps > 0 && tr.steps >= pl.maxSteps {
			return tr, fmt.Errorf("random walk exceeded %d steps without absorption (a=%g, evidence=%g)",
				pl.maxSteps, pl.A, tr.evidence)
		}
		tr.pos += drift + rng.NormFloat64()*pl.stepSD
		tr.steps++
	}
	return tr, nil
}

// classify maps a finished trial to its output row: which boundary absorbed
// the walk (speeded response), and whether the same evidence sample exceeds
// the criterion attached to that boundary (delayed response).
func (pl *plan) classify(tr trial) TrialResult {
	res := TrialResult{RT: tr.ndt + float64(tr.steps)*dt}
	if tr.pos >= pl.A {
		res.SpeededResp = 1
		if tr.evidence > pl.CritUpper {
			res.DelayedResp = 1
		}
	} else if tr.evidence > pl.CritLower {
		res.DelayedResp = 1
	}
	return res
}
