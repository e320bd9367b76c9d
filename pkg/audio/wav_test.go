// ABOUTME: Tests for WAV writing and loading
// ABOUTME: Round-trips 16-bit PCM through go-audio and checks mono collapse
package audio

import (
	"math"
	"path/filepath"
	"testing"
)

func TestWriteAndLoadWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wav")

	pcm := []int16{0, 8192, -8192, 16384, -16384, 32767}
	if err := WriteWAV(path, pcm, 1, 8000); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	buf, err := Load(path, false)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if buf.SampleRate != 8000 {
		t.Errorf("expected sample rate 8000, got %d", buf.SampleRate)
	}
	if buf.Channels() != 1 {
		t.Fatalf("expected 1 channel, got %d", buf.Channels())
	}
	if buf.Frames() != len(pcm) {
		t.Fatalf("expected %d frames, got %d", len(pcm), buf.Frames())
	}

	for i, want := range pcm {
		got := float64(buf.Samples[0][i])
		if math.Abs(got-float64(want)/32768.0) > 1e-4 {
			t.Errorf("frame %d: expected ~%g, got %g", i, float64(want)/32768.0, got)
		}
	}
}

func TestLoadWAVForceMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")

	// L = 0.5, R = -0.5 everywhere: the mono average is ~0
	var pcm []int16
	for i := 0; i < 16; i++ {
		pcm = append(pcm, 16384, -16384)
	}
	if err := WriteWAV(path, pcm, 2, 8000); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	buf, err := Load(path, true)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !buf.Mono() {
		t.Fatalf("expected mono buffer, got %d channels", buf.Channels())
	}
	if buf.Frames() != 16 {
		t.Fatalf("expected 16 frames, got %d", buf.Frames())
	}
	for i, s := range buf.Samples[0] {
		if math.Abs(float64(s)) > 1e-4 {
			t.Errorf("frame %d: expected averaged sample near 0, got %g", i, s)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.wav"), false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ogg")
	if err := WriteWAV(path, []int16{0, 0}, 1, 8000); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := Load(path, false); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
