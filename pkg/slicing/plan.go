// ABOUTME: Heuristic slice planning over an audio buffer
// ABOUTME: Transient and explicit-boundary strategies with shared post-processing
package slicing

import (
	"sort"

	"github.com/ectokit/ectokit-go/pkg/audio"
)

// PlanOptions controls PlanSlices.
type PlanOptions struct {
	Strategy        string
	TargetSlices    int
	MinGapMS        float64
	ThresholdDB     float64
	WindowMS        float64
	ExplicitSeconds []float64
}

// DefaultPlanOptions returns the standard transient-detection parameters.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		Strategy:     StrategyTransient,
		TargetSlices: 16,
		MinGapMS:     DefaultMinGapMS,
		ThresholdDB:  DefaultThresholdDB,
		WindowMS:     DefaultWindowMS,
	}
}

// PlanSlices partitions buf into ordered, non-overlapping slices. The
// transient strategy detects starts on the first channel; the explicit
// strategy uses the given second offsets. The final slice always extends
// to the end of the buffer.
func PlanSlices(buf *audio.Buffer, opts PlanOptions) (*SlicePlan, error) {
	if opts.TargetSlices < 1 {
		return nil, configErrorf("target_slices must be >= 1, got %d", opts.TargetSlices)
	}
	if buf.Channels() == 0 {
		return nil, configErrorf("buffer has no channels")
	}

	// Detection uses the first channel only, not a channel average.
	mono := buf.Samples[0]

	var starts []int
	if opts.Strategy == StrategyExplicit && len(opts.ExplicitSeconds) > 0 {
		for _, s := range opts.ExplicitSeconds {
			if s < 0 {
				return nil, configErrorf("explicit_seconds must not be negative, got %g", s)
			}
		}
		starts = explicitStarts(opts.ExplicitSeconds, buf.SampleRate)
	} else {
		starts = findTransients(mono, buf.SampleRate,
			opts.ThresholdDB, opts.MinGapMS, opts.WindowMS, opts.TargetSlices)
		if starts[0] != 0 {
			starts = append([]int{0}, starts...)
		}
	}

	if len(starts) > opts.TargetSlices {
		starts = starts[:opts.TargetSlices]
	}

	totalLen := len(mono)
	if starts[len(starts)-1] >= totalLen {
		return nil, configErrorf("slice start %d exceeds buffer length %d", starts[len(starts)-1], totalLen)
	}

	var slices []Slice
	for i, start := range starts {
		stop := totalLen
		if i+1 < len(starts) {
			stop = starts[i+1]
		}
		if stop > start {
			slices = append(slices, Slice{Start: start, Stop: stop})
		}
	}
	if len(slices) == 0 {
		return nil, configErrorf("no slices could be created")
	}

	return &SlicePlan{
		Slices:     slices,
		SampleRate: buf.SampleRate,
		Mono:       buf.Mono(),
	}, nil
}

// explicitStarts converts second offsets to deduplicated, sorted sample
// indices, inserting index 0 when absent.
func explicitStarts(seconds []float64, sampleRate int) []int {
	seen := make(map[int]bool, len(seconds))
	var starts []int
	for _, s := range seconds {
		idx := secondsToSamples(s, sampleRate)
		if !seen[idx] {
			seen[idx] = true
			starts = append(starts, idx)
		}
	}
	sort.Ints(starts)
	if len(starts) == 0 || starts[0] != 0 {
		starts = append([]int{0}, starts...)
	}
	return starts
}
