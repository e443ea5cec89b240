package speedup

import (
	"fmt"
	"math"
)

// Series is one computed curve: Y[i] is the speedup at X[i].
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.X)
}

// FractionSeries computes Simple over the given fractions.
func FractionSeries(ps []float64) Series {
	x := make([]float64, len(ps))
	copy(x, ps)
	return Series{
		X: x,
		Y: SimpleSeries(ps),
	}
}

// ProcessorCurve computes WithProcessors for a fixed fraction p over ns and
// labels it by p as a percentage, e.g. "25% Parallel".
func ProcessorCurve(p float64, ns []int) Series {
	return Series{
		Label: FractionLabel(p),
		X:     ToFloat(ns),
		Y:     ProcessorSeries(p, ns),
	}
}

// ProcessorCurves computes one ProcessorCurve per fraction, in order.
func ProcessorCurves(ps []float64, ns []int) []Series {
	out := make([]Series, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProcessorCurve(p, ns))
	}
	return out
}

// FractionLabel formats p as "<percent>% Parallel".
func FractionLabel(p float64) string {
	return fmt.Sprintf("%d%% Parallel", int(math.Round(p*100)))
}
