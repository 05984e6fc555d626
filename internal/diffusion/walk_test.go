package diffusion

import (
	mrand "math/rand/v2"
	"testing"
)

func TestClassifyBoundaryCriteria(t *testing.T) {
	p := validParams()
	p.CritUpper = 0.4
	p.CritLower = -0.2
	pl, err := newPlan(p, 0)
	if err != nil {
		t.Fatalf("newPlan() returned error: %v", err)
	}

	tests := []struct {
		name        string
		tr          trial
		wantSpeeded int
		wantDelayed int
	}{
		{"upper hit, evidence above upper criterion", trial{pos: 1.02, evidence: 0.5}, 1, 1},
		{"upper hit, evidence below upper criterion", trial{pos: 1.02, evidence: 0.3}, 1, 0},
		{"upper hit, evidence at upper criterion", trial{pos: 1.0, evidence: 0.4}, 1, 0},
		{"lower hit, evidence above lower criterion", trial{pos: -0.01, evidence: 0.0}, 0, 1},
		{"lower hit, evidence below lower criterion", trial{pos: 0.0, evidence: -0.5}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := pl.classify(tt.tr)
			if res.SpeededResp != tt.wantSpeeded {
				t.Errorf("SpeededResp = %d, expected %d", res.SpeededResp, tt.wantSpeeded)
			}
			if res.DelayedResp != tt.wantDelayed {
				t.Errorf("DelayedResp = %d, expected %d", res.DelayedResp, tt.wantDelayed)
			}
		})
	}
}

func TestClassifyReactionTime(t *testing.T) {
	pl, err := newPlan(validParams(), 0)
	if err != nil {
		t.Fatalf("newPlan() returned error: %v", err)
	}

	res := pl.classify(trial{pos: 1.1, ndt: 0.25, steps: 400})
	expected := 0.25 + 400*dt
	if res.RT != expected {
		t.Errorf("RT = %g, expected %g", res.RT, expected)
	}
}

func TestRunTrialImmediateAbsorption(t *testing.T) {
	pl, err := newPlan(validParams(), 0)
	if err != nil {
		t.Fatalf("newPlan() returned error: %v", err)
	}

	src := &stream{}
	src.seedTrial(42, 0)
	rng := mrand.New(src)

	// Starting point already outside (0, a): the loop condition must be
	// checked before the first increment.
	tests := []struct {
		name  string
		start float64
	}{
		{"at upper boundary", 1.0},
		{"above upper boundary", 1.5},
		{"at lower boundary", 0.0},
		{"below lower boundary", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smp := samplers{
				evidence: constant(0),
				start:    constant(tt.start),
				ndt:      constant(0.1),
			}
			tr, err := pl.runTrial(rng, smp)
			if err != nil {
				t.Fatalf("runTrial() returned error: %v", err)
			}
			if tr.steps != 0 {
				t.Errorf("steps = %d, expected 0 for start %g", tr.steps, tt.start)
			}
			if tr.pos != tt.start {
				t.Errorf("pos = %g, expected start position %g unchanged", tr.pos, tt.start)
			}
		})
	}
}

func TestRunTrialAbsorbs(t *testing.T) {
	p := validParams()
	p.V = 3.0
	pl, err := newPlan(p, 0)
	if err != nil {
		t.Fatalf("newPlan() returned error: %v", err)
	}

	src := &stream{}
	rng := mrand.New(src)
	smp := pl.samplersFor(src)

	for i := 0; i < 50; i++ {
		src.seedTrial(42, i)
		tr, err := pl.runTrial(rng, smp)
		if err != nil {
			t.Fatalf("runTrial() returned error: %v", err)
		}
		if tr.pos > 0 && tr.pos < p.A {
			t.Fatalf("trial %d finished unabsorbed at pos %g", i, tr.pos)
		}
		if tr.steps <= 0 {
			t.Fatalf("trial %d absorbed with %d steps from an interior start", i, tr.steps)
		}
	}
}

func TestRunTrialMaxSteps(t *testing.T) {
	p := validParams()
	p.V = 0
	p.A = 50 // wide boundaries: absorption needs far more than the ceiling
	pl, err := newPlan(p, 10)
	if err != nil {
		t.Fatalf("newPlan() returned error: %v", err)
	}

	src := &stream{}
	src.seedTrial(42, 0)
	rng := mrand.New(src)
	smp := pl.samplersFor(src)

	if _, err := pl.runTrial(rng, smp); err == nil {
		t.Fatal("runTrial() expected step-ceiling error, got nil")
	}
}
