package engine

import "math"

// StdDev returns the population standard deviation (divide by N, not
// N-1) of values, or 0 for an empty slice. The optimizer uses this same
// formula for both the real and the hypothetical cost so that its
// improvement comparisons stay coherent.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}
