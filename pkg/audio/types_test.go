// ABOUTME: Tests for buffer accessors and sample conversions
// ABOUTME: Verifies clipping and bit-depth scaling
package audio

import "testing"

func TestBufferAccessors(t *testing.T) {
	buf := &Buffer{
		Samples:    [][]float32{make([]float32, 10), make([]float32, 10)},
		SampleRate: 44100,
	}

	if buf.Frames() != 10 {
		t.Errorf("expected 10 frames, got %d", buf.Frames())
	}
	if buf.Channels() != 2 {
		t.Errorf("expected 2 channels, got %d", buf.Channels())
	}
	if buf.Mono() {
		t.Error("stereo buffer reported as mono")
	}

	empty := &Buffer{}
	if empty.Frames() != 0 {
		t.Errorf("expected 0 frames for empty buffer, got %d", empty.Frames())
	}
}

func TestSampleToInt16(t *testing.T) {
	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1.0, Max16Bit},
		{-1.0, -Max16Bit},
		{2.0, Max16Bit},   // clipped
		{-3.0, -Max16Bit}, // clipped
		{0.5, 16383},
	}

	for _, tt := range tests {
		if got := SampleToInt16(tt.in); got != tt.want {
			t.Errorf("SampleToInt16(%g): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestSampleFromInt16(t *testing.T) {
	if got := SampleFromInt16(-32768); got != -1.0 {
		t.Errorf("expected -1.0, got %g", got)
	}
	if got := SampleFromInt16(0); got != 0 {
		t.Errorf("expected 0, got %g", got)
	}
}

func TestSampleFromInt(t *testing.T) {
	// 24-bit full scale
	if got := SampleFromInt(-8388608, 24); got != -1.0 {
		t.Errorf("expected -1.0 for 24-bit min, got %g", got)
	}
	if got := SampleFromInt(16384, 16); got != 0.5 {
		t.Errorf("expected 0.5, got %g", got)
	}
}
