// Package stats carries small numeric helpers shared by the analyses.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeanValid returns the arithmetic mean of the non-NaN values in xs.
// Missing values are excluded from the mean, not treated as zero.
// Returns NaN when no valid value remains.
func MeanValid(xs []float64) float64 {
	valid := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			valid = append(valid, x)
		}
	}
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.Mean(valid, nil)
}

// SumValid returns the sum of the non-NaN values in xs.
func SumValid(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		if !math.IsNaN(x) {
			sum += x
		}
	}
	return sum
}
