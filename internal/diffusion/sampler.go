package diffusion

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// rv is one stochastic input to a trial. distuv.Normal and distuv.Uniform
// satisfy it directly; constant covers the degenerate zero-spread
// configurations as an explicit branch rather than a zero-width distribution.
type rv interface {
	Rand() float64
}

type constant float64

func (c constant) Rand() float64 { return float64(c) }

// samplers bundles the three independent latent draws of one trial.
type samplers struct {
	evidence rv // drift rate / memory-strength sample
	start    rv // starting position of the walk
	ndt      rv // non-decision time offset
}

// samplersFor selects a strategy per stochastic input for a worker's stream.
// The selection happens once per worker, not once per trial.
func (pl *plan) samplersFor(src *stream) samplers {
	smp := samplers{
		evidence: constant(pl.V),
		start:    constant(pl.absStart),
		ndt:      constant(pl.T0),
	}
	if pl.SV > 0 {
		smp.evidence = distuv.Normal{Mu: pl.V, Sigma: pl.SV, Src: src}
	}
	if pl.SZ > 0 {
		smp.start = distuv.Uniform{Min: pl.absStart - pl.SZ/2, Max: pl.absStart + pl.SZ/2, Src: src}
	}
	if pl.ST0 > 0 {
		// Left-anchored convention: ndt in [t0, t0+st0]
		smp.ndt = distuv.Uniform{Min: pl.T0, Max: pl.T0 + pl.ST0, Src: src}
	}
	return smp
}
