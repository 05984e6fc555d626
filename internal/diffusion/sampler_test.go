package diffusion

import "testing"

func TestSamplersDegenerate(t *testing.T) {
	p := validParams() // sv = st0 = sz = 0
	pl, err := newPlan(p, 0)
	if err != nil {
		t.Fatalf("newPlan() returned error: %v", err)
	}

	src := &stream{}
	src.seedTrial(42, 0)
	smp := pl.samplersFor(src)

	for i := 0; i < 10; i++ {
		if got := smp.evidence.Rand(); got != p.V {
			t.Fatalf("degenerate evidence draw = %g, expected %g", got, p.V)
		}
		if got := smp.start.Rand(); got != pl.absStart {
			t.Fatalf("degenerate start draw = %g, expected %g", got, pl.absStart)
		}
		if got := smp.ndt.Rand(); got != p.T0 {
			t.Fatalf("degenerate ndt draw = %g, expected %g", got, p.T0)
		}
	}
}

func TestSamplersSpread(t *testing.T) {
	p := validParams()
	p.SV = 0.3
	p.SZ = 0.2
	p.ST0 = 0.1
	pl, err := newPlan(p, 0)
	if err != nil {
		t.Fatalf("newPlan() returned error: %v", err)
	}

	src := &stream{}
	src.seedTrial(42, 0)
	smp := pl.samplersFor(src)

	varied := false
	prev := smp.evidence.Rand()
	for i := 0; i < 100; i++ {
		ev := smp.evidence.Rand()
		if ev != prev {
			varied = true
		}
		prev = ev

		start := smp.start.Rand()
		if start < pl.absStart-p.SZ/2 || start > pl.absStart+p.SZ/2 {
			t.Fatalf("start draw %g outside [%g, %g]", start, pl.absStart-p.SZ/2, pl.absStart+p.SZ/2)
		}

		ndt := smp.ndt.Rand()
		if ndt < p.T0 || ndt > p.T0+p.ST0 {
			t.Fatalf("ndt draw %g outside [%g, %g]", ndt, p.T0, p.T0+p.ST0)
		}
	}
	if !varied {
		t.Fatal("evidence draws with sv > 0 never varied")
	}
}
