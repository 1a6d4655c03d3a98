package stats

import (
	"math"
	"math/rand"
)

// Two-sample bootstrap ratio test: resample both samples with replacement,
// compare a statistic of the resamples as a ratio, and estimate how often
// sample one dominates.

// BootstrapResult holds the resampled ratio statistics and their signs.
type BootstrapResult struct {
	PValue float64
	Stats  []float64
	Signs  []int
}

// StatFunc reduces a sample to a single statistic (e.g. the mean).
type StatFunc func(sample []float64) float64

// Resample draws length values from sample with replacement.
func Resample(rng *rand.Rand, sample []float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = sample[rng.Intn(len(sample))]
	}
	return out
}

// TwoSampleBootstrap runs numSamples bootstrap iterations of statFn over both
// samples. When the second resample's statistic is positive the iteration's
// statistic is the ratio stat1/stat2 and the sign records whether it exceeds
// 1; a non-positive denominator degenerates to +Inf or 0 depending on the
// numerator. The p-value is the fraction of positive signs. Deterministic for
// a seeded rng.
func TwoSampleBootstrap(rng *rand.Rand, sample1, sample2 []float64, statFn StatFunc, numSamples int) BootstrapResult {
	res := BootstrapResult{
		Stats: make([]float64, 0, numSamples),
		Signs: make([]int, 0, numSamples),
	}
	for n := 0; n < numSamples; n++ {
		r1 := statFn(Resample(rng, sample1, len(sample1)))
		r2 := statFn(Resample(rng, sample2, len(sample2)))

		var stat float64
		var sign int
		if r2 > 0 {
			stat = r1 / r2
			if stat > 1 {
				sign = 1
			}
		} else {
			stat = 0
			if r1 > 0 {
				stat = math.Inf(1)
				sign = 1
			}
		}
		res.Stats = append(res.Stats, stat)
		res.Signs = append(res.Signs, sign)
	}

	total := 0
	for _, s := range res.Signs {
		total += s
	}
	res.PValue = float64(total) / float64(len(res.Signs))
	return res
}
