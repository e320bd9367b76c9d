// ABOUTME: Audio type definitions
// ABOUTME: Defines the in-memory buffer model and PCM sample conversions
package audio

// Max16Bit is the positive full-scale value of 16-bit PCM.
const Max16Bit = 32767

// Buffer holds decoded audio as float32 samples in [-1.0, 1.0],
// one slice per channel.
type Buffer struct {
	Samples    [][]float32
	SampleRate int
}

// Frames returns the number of sample frames per channel.
func (b *Buffer) Frames() int {
	if len(b.Samples) == 0 {
		return 0
	}
	return len(b.Samples[0])
}

// Channels returns the channel count.
func (b *Buffer) Channels() int {
	return len(b.Samples)
}

// Mono reports whether the buffer has exactly one channel.
func (b *Buffer) Mono() bool {
	return len(b.Samples) == 1
}

// SampleToInt16 converts a float sample to 16-bit PCM, clipping to [-1, 1].
func SampleToInt16(sample float32) int16 {
	if sample > 1.0 {
		sample = 1.0
	} else if sample < -1.0 {
		sample = -1.0
	}
	return int16(sample * Max16Bit)
}

// SampleFromInt16 converts a 16-bit PCM sample to float in [-1, 1).
func SampleFromInt16(sample int16) float32 {
	return float32(sample) / 32768.0
}

// SampleFromInt converts an integer PCM sample of the given bit depth
// to float in [-1, 1).
func SampleFromInt(sample int, bitDepth int) float32 {
	return float32(sample) / float32(int(1)<<(bitDepth-1))
}
