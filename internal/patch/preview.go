// ABOUTME: In-memory rendering of a single slice for audition
// ABOUTME: Applies the same gain/fade shaping a build would
package patch

import (
	"fmt"
	"path/filepath"

	"github.com/ectokit/ectokit-go/internal/config"
	"github.com/ectokit/ectokit-go/pkg/render"
	"github.com/ectokit/ectokit-go/pkg/slicing"
)

// RenderSlice renders one planned slice to interleaved 16-bit PCM without
// touching the filesystem. Returns the samples, channel count and sample
// rate.
func RenderSlice(cfgPath string, sliceIdx int) ([]int16, int, int, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, 0, 0, err
	}
	patchDir, err := filepath.Abs(filepath.Dir(cfgPath))
	if err != nil {
		return nil, 0, 0, err
	}

	buf, plan, manual, err := loadAndPlan(cfg, patchDir)
	if err != nil {
		return nil, 0, 0, err
	}
	if sliceIdx < 0 || sliceIdx >= len(plan.Slices) {
		return nil, 0, 0, fmt.Errorf("slice %d out of range (plan has %d slices)", sliceIdx, len(plan.Slices))
	}

	opts := renderOptions(cfg, manual)
	single := &slicing.SlicePlan{
		Slices:     []slicing.Slice{plan.Slices[sliceIdx]},
		SampleRate: plan.SampleRate,
		Mono:       plan.Mono,
	}
	var singleOpts []render.Options
	if opts != nil {
		singleOpts = []render.Options{opts[sliceIdx]}
	}

	sink := &render.MemorySink{}
	rendered, err := render.Render(buf, single, sink, cfg.Output.StartIndex+sliceIdx, cfg.Output.Variation, singleOpts)
	if err != nil {
		return nil, 0, 0, err
	}
	r := rendered[0]
	return sink.PCM[r.Name], r.Channels, plan.SampleRate, nil
}
