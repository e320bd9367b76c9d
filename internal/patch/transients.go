// ABOUTME: Transient marker selection for one output slice
// ABOUTME: Manual per-slice markers win over the config per-slice map
package patch

import (
	"math"
	"strconv"

	"github.com/ectokit/ectokit-go/internal/config"
)

// manualTransients converts a manual slice's transients_ms list to level-0
// sample positions. Returns nil when the slice carries no markers.
func manualTransients(ms []float64, sampleRate int) [][]int {
	if len(ms) == 0 {
		return nil
	}
	return [][]int{msListToSamples(ms, sampleRate), {}, {}}
}

// configTransients looks up heuristic-plan markers for a slice index in
// the [transients.per_slice_ms] map. Used only when the plan did not come
// from manual slices; manual slices carry their own transients_ms.
func configTransients(cfg *config.Config, sliceIdx, sampleRate int) [][]int {
	entry, ok := cfg.Transients.PerSliceMS[strconv.Itoa(sliceIdx)]
	if !ok || len(entry) == 0 {
		return [][]int{{}, {}, {}}
	}
	return [][]int{msListToSamples(entry, sampleRate), {}, {}}
}

func msListToSamples(ms []float64, sampleRate int) []int {
	out := make([]int, len(ms))
	for i, v := range ms {
		out[i] = int(math.Round(v / 1000.0 * float64(sampleRate)))
	}
	return out
}
