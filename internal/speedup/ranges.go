package speedup

// Linspace returns num evenly spaced samples over [start, stop], both
// endpoints included. num == 1 returns just start; num <= 0 returns an
// empty slice.
func Linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return []float64{}
	}

	out := make([]float64, num)
	if num == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(num-1)
	for i := 0; i < num; i++ {
		out[i] = start + float64(i)*step
	}
	// pin the endpoint so accumulated rounding never overshoots it
	out[num-1] = stop
	return out
}

// Processors returns the processor counts 1..n.
func Processors(n int) []int {
	if n < 1 {
		return []int{}
	}

	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ToFloat converts processor counts to float64 for plotting.
func ToFloat(ns []int) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = float64(n)
	}
	return out
}
