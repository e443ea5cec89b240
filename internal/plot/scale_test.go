package plot

import (
	"math"
	"testing"
)

func TestScale_Apply(t *testing.T) {
	xs := []float64{1, 10, 100}

	got, err := Linear.apply(xs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range xs {
		if got[i] != xs[i] {
			t.Errorf("linear index %d: expected %v, got %v", i, xs[i], got[i])
		}
	}

	got, err = Log.apply(xs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []float64{0, 1, 2} {
		if math.Abs(got[i]-want) > 1e-12 {
			t.Errorf("log index %d: expected %v, got %v", i, want, got[i])
		}
	}
}

func TestDecadeTicks(t *testing.T) {
	ticks := decadeTicks(1, 10000)
	want := []string{"1", "10", "100", "1000", "10000"}

	if len(ticks) != len(want) {
		t.Fatalf("expected %d ticks, got %d", len(want), len(ticks))
	}
	for i, tk := range ticks {
		if tk.Label != want[i] {
			t.Errorf("tick %d: expected label %q, got %q", i, want[i], tk.Label)
		}
		if tk.Value != float64(i) {
			t.Errorf("tick %d: expected value %d, got %v", i, i, tk.Value)
		}
	}
}

func TestDecadeTicks_PartialRange(t *testing.T) {
	ticks := decadeTicks(3, 500)
	if len(ticks) != 2 || ticks[0].Label != "10" || ticks[1].Label != "100" {
		t.Errorf("expected ticks at 10 and 100, got %+v", ticks)
	}
}

func TestScale_String(t *testing.T) {
	if Linear.String() != "linear" || Log.String() != "log" {
		t.Errorf("unexpected names %q, %q", Linear, Log)
	}
	if Scale(7).String() != "Scale(7)" {
		t.Errorf("unexpected name %q", Scale(7))
	}
}
