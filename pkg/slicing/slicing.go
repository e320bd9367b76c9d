// ABOUTME: Slice plan data model and error kind
// ABOUTME: Defines Slice, SlicePlan and the slice-configuration error
package slicing

import (
	"fmt"
	"math"
)

// Slice is a half-open sample range [Start, Stop) within a buffer.
type Slice struct {
	Start int
	Stop  int
}

// Length returns the slice length in samples, never negative.
func (s Slice) Length() int {
	if s.Stop < s.Start {
		return 0
	}
	return s.Stop - s.Start
}

// SlicePlan is an ordered set of non-overlapping slices for one buffer.
type SlicePlan struct {
	Slices     []Slice
	SampleRate int
	Mono       bool
}

// ConfigError reports a slicing configuration that cannot be fulfilled.
// It is the only error kind this package returns; a retry would
// reproduce the same failure.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "slice config: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// Default planning parameters.
const (
	DefaultThresholdDB = -32.0
	DefaultMinGapMS    = 40.0
	DefaultWindowMS    = 12.0
	DefaultFadeMS      = 0.0
	DefaultGainDB      = 0.0
)

// Strategy names accepted by PlanSlices.
const (
	StrategyTransient = "transient"
	StrategyExplicit  = "explicit"
)

func msToSamples(ms float64, sampleRate int) int {
	return int(math.Round(ms / 1000.0 * float64(sampleRate)))
}

func secondsToSamples(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}
