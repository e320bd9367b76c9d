// ABOUTME: Manual slice planning from explicit millisecond boundaries
// ABOUTME: Validates ordering and overlap, clamps to the buffer range
package slicing

import "sort"

// ManualSlice is one explicit boundary pair from configuration. Both
// fields are required; nil marks a missing config value.
type ManualSlice struct {
	StartMS *float64
	EndMS   *float64
}

// PlanManualSlices builds a plan from explicit millisecond boundaries.
// Entries are sorted by start and must be non-overlapping after sorting.
// Boundaries are clamped to the buffer range.
func PlanManualSlices(entries []ManualSlice, sampleRate, totalLength int, mono bool) (*SlicePlan, error) {
	if totalLength < 1 {
		return nil, configErrorf("buffer is empty")
	}

	type bounds struct {
		start int
		stop  int
	}

	resolved := make([]bounds, 0, len(entries))
	for _, entry := range entries {
		if entry.StartMS == nil {
			return nil, configErrorf("manual slice is missing 'start_ms'")
		}
		if entry.EndMS == nil {
			return nil, configErrorf("manual slice is missing 'end_ms'")
		}
		start := msToSamples(*entry.StartMS, sampleRate)
		stop := msToSamples(*entry.EndMS, sampleRate)
		if stop <= start {
			return nil, configErrorf("manual slice end_ms must be greater than start_ms")
		}
		resolved = append(resolved, bounds{start: start, stop: stop})
	}

	sort.Slice(resolved, func(i, j int) bool { return resolved[i].start < resolved[j].start })

	var slices []Slice
	lastStop := 0
	for _, b := range resolved {
		if b.start < lastStop {
			return nil, configErrorf("manual slices must be non-overlapping and ordered")
		}
		start := clamp(b.start, 0, totalLength-1)
		stop := b.stop
		if stop > totalLength {
			stop = totalLength
		}
		if stop < start+1 {
			stop = start + 1
		}
		slices = append(slices, Slice{Start: start, Stop: stop})
		lastStop = stop
	}

	if len(slices) == 0 {
		return nil, configErrorf("no manual slices provided")
	}

	return &SlicePlan{Slices: slices, SampleRate: sampleRate, Mono: mono}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
