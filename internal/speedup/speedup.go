// Package speedup evaluates Amdahl's Law.
//
// Two forms are provided:
//
//   - Simple: the speedup limit 1/(1-P) for a parallel fraction P with an
//     unbounded number of processors
//   - WithProcessors: the speedup 1/(P/N + (1-P)) on N processors
//
// Every scalar function has a series counterpart that applies it
// elementwise and returns a slice of the same length and order as its input.
//
// Neither form guards its domain. Callers keep P strictly below 1 for Simple
// and N at or above 1 for WithProcessors; outside those bounds the IEEE float
// result (+Inf) is returned unchanged.
package speedup

// Simple returns the theoretical speedup 1/(1-p) when the parallel part of a
// workload runs on infinitely many processors.
//
// Requires 0 <= p < 1.
func Simple(p float64) float64 {
	return 1 / (1 - p)
}

// WithProcessors returns the speedup of a workload with parallel fraction p
// executed on n processors.
//
// Requires n >= 1. p == 0 gives 1 for every n and p == 1 gives n.
func WithProcessors(p float64, n int) float64 {
	serial := 1.0 - p
	return 1 / ((p / float64(n)) + serial)
}

// Efficiency is the speedup on n processors divided by n.
func Efficiency(p float64, n int) float64 {
	return WithProcessors(p, n) / float64(n)
}

// SimpleSeries applies Simple to every fraction in ps.
func SimpleSeries(ps []float64) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = Simple(p)
	}
	return out
}

// ProcessorSeries applies WithProcessors to every processor count in ns
// for a fixed fraction p.
func ProcessorSeries(p float64, ns []int) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = WithProcessors(p, n)
	}
	return out
}
