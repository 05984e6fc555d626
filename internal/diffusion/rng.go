package diffusion

import (
	mrand "math/rand/v2"
)

// stream is a counter-based PCG stream. Each worker owns one stream and
// reseeds it with (root seed, trial index) before every trial, so a trial's
// draws are a pure function of the root seed and the trial's row in the
// output table. That keeps results bit-identical no matter how the trial
// range is chunked across workers.
type stream struct {
	pcg mrand.PCG
}

// Uint64 satisfies math/rand/v2 Source, which both the step-noise generator
// and the gonum distributions draw from.
func (s *stream) Uint64() uint64 {
	return s.pcg.Uint64()
}

func (s *stream) seedTrial(root uint64, trial int) {
	s.pcg.Seed(root, uint64(trial))
}
