// ABOUTME: Heuristic transient detection over a mono signal
// ABOUTME: Rectified envelope, moving-average smoothing, threshold scan
package slicing

import "math"

// findTransients scans the smoothed amplitude envelope of signal and
// returns candidate slice start indices. The threshold is relative to the
// envelope peak; starts closer than the minimum gap are rejected. Returns
// [0] when the signal is empty, silent, or no crossing occurs.
func findTransients(signal []float32, sampleRate int, thresholdDB, minGapMS, windowMS float64, maxSlices int) []int {
	if len(signal) == 0 {
		return []int{0}
	}

	smoothed := smoothEnvelope(signal, sampleRate, windowMS)

	peak := 0.0
	for _, v := range smoothed {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return []int{0}
	}
	threshold := peak * math.Pow(10, thresholdDB/20.0)

	minGap := msToSamples(minGapMS, sampleRate)
	var indices []int
	last := -minGap
	for idx, value := range smoothed {
		if value >= threshold && idx-last >= minGap {
			indices = append(indices, idx)
			last = idx
			if len(indices) >= maxSlices {
				break
			}
		}
	}
	if len(indices) == 0 {
		return []int{0}
	}
	return indices
}

// smoothEnvelope rectifies the signal and applies a centered moving
// average of round(sampleRate*windowMS/1000) samples (minimum 1), with
// zero padding at the edges.
func smoothEnvelope(signal []float32, sampleRate int, windowMS float64) []float64 {
	n := len(signal)
	window := msToSamples(windowMS, sampleRate)
	if window < 1 {
		window = 1
	}

	prefix := make([]float64, n+1)
	for i, v := range signal {
		prefix[i+1] = prefix[i] + math.Abs(float64(v))
	}

	smoothed := make([]float64, n)
	half := (window - 1) / 2
	for i := 0; i < n; i++ {
		hi := i + half
		lo := hi - window + 1
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		smoothed[i] = (prefix[hi+1] - prefix[lo]) / float64(window)
	}
	return smoothed
}
