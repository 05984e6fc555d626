package diffusion

import (
	"math"
	"reflect"
	"testing"

	"github.com/recmem-lab/diffusion-core/pkg/utils"
)

func TestSimulateShape(t *testing.T) {
	p := Params{N: 2000, A: 1, V: 0.5, T0: 0.3, Z: 0.5, SV: 0.3, ST0: 0.1, SZ: 0.1, S: 1}

	eng := NewEngine(WithSeed(42))
	table, err := eng.Simulate(p)
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}

	if len(table) != p.N {
		t.Fatalf("Simulate() returned %d rows, expected %d", len(table), p.N)
	}

	for i, row := range table {
		if math.IsNaN(row.RT) || math.IsInf(row.RT, 0) {
			t.Fatalf("row %d: RT is not finite: %g", i, row.RT)
		}
		if row.RT < p.T0 {
			t.Fatalf("row %d: RT %g below minimum non-decision time %g", i, row.RT, p.T0)
		}
		if row.SpeededResp != 0 && row.SpeededResp != 1 {
			t.Fatalf("row %d: SpeededResp = %d, expected 0 or 1", i, row.SpeededResp)
		}
		if row.DelayedResp != 0 && row.DelayedResp != 1 {
			t.Fatalf("row %d: DelayedResp = %d, expected 0 or 1", i, row.DelayedResp)
		}
	}
}

func TestSimulateInvalidParams(t *testing.T) {
	eng := NewEngine()

	tests := []Params{
		{N: 0, A: 1, T0: 0.3, Z: 0.5, S: 1},
		{N: 100, A: 0, T0: 0.3, Z: 0.5, S: 1},
		{N: 100, A: 1, T0: 0.3, Z: 0.5, S: 1, SV: -1},
	}
	for i, p := range tests {
		table, err := eng.Simulate(p)
		if err == nil {
			t.Errorf("case %d: Simulate() expected error, got nil", i)
		}
		if table != nil {
			t.Errorf("case %d: Simulate() returned partial table alongside error", i)
		}
	}
}

func TestSimulateReproducibility(t *testing.T) {
	p := Params{N: 5000, A: 1, V: 0.8, T0: 0.3, Z: 0.5, SV: 0.3, ST0: 0.1, SZ: 0.1, S: 1}

	a, err := NewEngine(WithSeed(1234)).Simulate(p)
	if err != nil {
		t.Fatalf("first Simulate() returned error: %v", err)
	}
	b, err := NewEngine(WithSeed(1234)).Simulate(p)
	if err != nil {
		t.Fatalf("second Simulate() returned error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs with the same seed produced different tables")
	}
}

func TestSimulateWorkerCountInvariance(t *testing.T) {
	// Streams are derived from (seed, trial index), not worker ordinal, so
	// output must be bit-identical regardless of chunking.
	p := Params{N: 3000, A: 1, V: 0.5, T0: 0.3, Z: 0.5, SV: 0.2, ST0: 0.1, S: 1}

	serial, err := NewEngine(WithSeed(42), WithWorkers(1)).Simulate(p)
	if err != nil {
		t.Fatalf("serial Simulate() returned error: %v", err)
	}
	parallel, err := NewEngine(WithSeed(42), WithWorkers(8)).Simulate(p)
	if err != nil {
		t.Fatalf("parallel Simulate() returned error: %v", err)
	}

	if !reflect.DeepEqual(serial, parallel) {
		t.Fatal("worker count changed simulation output")
	}
}

func TestSimulateDegenerateVariability(t *testing.T) {
	// With sv = sz = st0 = 0 every trial shares the same non-decision time,
	// so each RT is exactly t0 plus a whole number of steps.
	p := Params{N: 500, A: 1, V: 0.5, T0: 0.3, Z: 0.5, S: 1}

	table, err := NewEngine(WithSeed(42)).Simulate(p)
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}

	for i, row := range table {
		steps := (row.RT - p.T0) / dt
		if math.Abs(steps-math.Round(steps)) > 1e-6 {
			t.Fatalf("row %d: RT %g is not t0 plus a whole number of steps", i, row.RT)
		}
		if steps < 0 {
			t.Fatalf("row %d: negative decision time", i)
		}
	}
}

func TestSimulateMonotonicityUnderDrift(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-sample statistical test in short mode")
	}

	base := Params{N: 100000, A: 1, T0: 0.3, Z: 0.5, SV: 0.1, S: 1}

	upperRate := func(v float64) float64 {
		p := base
		p.V = v
		table, err := NewEngine(WithSeed(42)).Simulate(p)
		if err != nil {
			t.Fatalf("Simulate(v=%g) returned error: %v", v, err)
		}
		count := 0
		for _, row := range table {
			count += row.SpeededResp
		}
		return float64(count) / float64(len(table))
	}

	low := upperRate(0.1)
	high := upperRate(2.0)

	if low < 0.45 || low > 0.62 {
		t.Errorf("upper-boundary rate at v=0.1 is %g, expected near 0.5", low)
	}
	if high < 0.85 {
		t.Errorf("upper-boundary rate at v=2.0 is %g, expected well above chance", high)
	}
	if high <= low {
		t.Errorf("raising drift did not raise the upper-boundary rate: %g -> %g", low, high)
	}
}

func TestSimulateScaleSanity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-sample statistical test in short mode")
	}

	p := Params{N: 10000, A: 1, V: 1, T0: 0.3, Z: 0.5, SV: 0.3, ST0: 0.1, S: 1}

	table, err := NewEngine(WithSeed(42)).Simulate(p)
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}

	mean := utils.Mean(table.RTs())
	if mean < 0.3 || mean > 2.0 {
		t.Errorf("mean RT = %g, expected between 0.3 and 2.0", mean)
	}
}

func TestSimulateStartOutsideInterval(t *testing.T) {
	// A wide sz places most starting points outside (0, a); those trials
	// must absorb immediately, leaving RT equal to the non-decision time.
	p := Params{N: 1000, A: 1, V: 0, T0: 0.2, Z: 0.5, SZ: 10, S: 1}

	table, err := NewEngine(WithSeed(42)).Simulate(p)
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}

	immediate := 0
	for _, row := range table {
		if row.RT == p.T0 {
			immediate++
		}
	}
	if immediate == 0 {
		t.Fatal("expected some immediately-absorbed trials with sz = 10")
	}
}

func TestSimulateMaxStepsAbortsWholeCall(t *testing.T) {
	p := Params{N: 16, A: 50, V: 0, T0: 0.2, Z: 0.5, S: 1}

	table, err := NewEngine(WithSeed(42), WithMaxSteps(10)).Simulate(p)
	if err == nil {
		t.Fatal("Simulate() expected step-ceiling error, got nil")
	}
	if table != nil {
		t.Fatal("Simulate() returned partial results alongside error")
	}
}

func TestSetSeedFixesDefaultEngine(t *testing.T) {
	p := Params{N: 200, A: 1, V: 0.5, T0: 0.3, Z: 0.5, SV: 0.2, S: 1}

	SetSeed(777)
	a, err := Simulate(p)
	if err != nil {
		t.Fatalf("first Simulate() returned error: %v", err)
	}

	SetSeed(777)
	b, err := Simulate(p)
	if err != nil {
		t.Fatalf("second Simulate() returned error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatal("SetSeed did not fix default-engine output")
	}

	// Restore the package default for other tests.
	SetSeed(DefaultSeed)
}

func TestSimulateSingleTrial(t *testing.T) {
	p := Params{N: 1, A: 1, V: 0.5, T0: 0.3, Z: 0.5, S: 1}

	table, err := NewEngine(WithSeed(42), WithWorkers(4)).Simulate(p)
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("Simulate() returned %d rows, expected 1", len(table))
	}
}
