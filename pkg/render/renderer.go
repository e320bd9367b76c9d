// ABOUTME: Slice rendering with per-slice gain and fade shaping
// ABOUTME: Emits 16-bit PCM per slice and the device index mapping
package render

import (
	"fmt"
	"math"

	"github.com/ectokit/ectokit-go/pkg/audio"
	"github.com/ectokit/ectokit-go/pkg/slicing"
)

// Options shapes one rendered slice. The zero value renders the slice
// unchanged.
type Options struct {
	GainDB    float64
	FadeInMS  float64
	FadeOutMS float64
}

// Rendered describes one emitted slice in plan order.
type Rendered struct {
	DeviceIndex int
	Name        string
	Frames      int
	Channels    int
	PCMBytes    int
}

// Render processes every slice in the plan: copy the sample range, apply
// gain and linear fades, clip to [-1, 1], and emit 16-bit PCM through the
// sink as "{baseIndex+i}.{variation}.wav". opts must be nil or one entry
// per slice. The returned records correlate slices with device indices.
func Render(buf *audio.Buffer, plan *slicing.SlicePlan, sink Sink, baseIndex, variation int, opts []Options) ([]Rendered, error) {
	if opts == nil {
		opts = make([]Options, len(plan.Slices))
	}
	if len(opts) != len(plan.Slices) {
		return nil, &slicing.ConfigError{
			Reason: fmt.Sprintf("render options length %d does not match %d planned slices", len(opts), len(plan.Slices)),
		}
	}

	channels := buf.Channels()
	var results []Rendered
	for i, slc := range plan.Slices {
		data := copySlice(buf, slc)
		shapeSlice(data, opts[i], plan.SampleRate)

		pcm := interleave16(data)
		name := fmt.Sprintf("%d.%d.wav", baseIndex+i, variation)
		if err := sink.Put(name, pcm, channels, plan.SampleRate); err != nil {
			return nil, fmt.Errorf("failed to emit slice %s: %w", name, err)
		}

		results = append(results, Rendered{
			DeviceIndex: baseIndex + i,
			Name:        name,
			Frames:      slc.Length(),
			Channels:    channels,
			PCMBytes:    len(pcm) * 2,
		})
	}
	return results, nil
}

func copySlice(buf *audio.Buffer, slc slicing.Slice) [][]float32 {
	out := make([][]float32, buf.Channels())
	for ch := range out {
		out[ch] = append([]float32(nil), buf.Samples[ch][slc.Start:slc.Stop]...)
	}
	return out
}

// shapeSlice applies gain and fade envelopes in place.
func shapeSlice(data [][]float32, opts Options, sampleRate int) {
	frames := 0
	if len(data) > 0 {
		frames = len(data[0])
	}

	if opts.GainDB != 0 {
		gain := float32(math.Pow(10, opts.GainDB/20.0))
		for ch := range data {
			for i := range data[ch] {
				data[ch][i] *= gain
			}
		}
	}

	if opts.FadeInMS > 0 {
		fadeIn := minInt(frames, msToSamples(opts.FadeInMS, sampleRate))
		if fadeIn > 1 {
			for i := 0; i < fadeIn; i++ {
				ramp := float32(i) / float32(fadeIn-1)
				for ch := range data {
					data[ch][i] *= ramp
				}
			}
		}
	}

	if opts.FadeOutMS > 0 {
		fadeOut := minInt(frames, msToSamples(opts.FadeOutMS, sampleRate))
		if fadeOut > 1 {
			for i := 0; i < fadeOut; i++ {
				ramp := 1.0 - float32(i)/float32(fadeOut-1)
				for ch := range data {
					data[ch][frames-fadeOut+i] *= ramp
				}
			}
		}
	}
}

// interleave16 clips to [-1, 1] and converts to interleaved 16-bit PCM.
func interleave16(data [][]float32) []int16 {
	channels := len(data)
	if channels == 0 {
		return nil
	}
	frames := len(data[0])
	pcm := make([]int16, frames*channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			pcm[i*channels+ch] = audio.SampleToInt16(data[ch][i])
		}
	}
	return pcm
}

func msToSamples(ms float64, sampleRate int) int {
	return int(math.Round(ms / 1000.0 * float64(sampleRate)))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
