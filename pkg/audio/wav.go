// ABOUTME: WAV file reading and writing
// ABOUTME: Wraps go-audio/wav for 16-bit PCM slice output and source loading
package audio

import (
	"fmt"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func loadWAV(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV data: %w", err)
	}

	channels := pcm.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("WAV file has no channels: %s", path)
	}
	bitDepth := int(decoder.BitDepth)

	interleaved := make([]float32, len(pcm.Data))
	for i, sample := range pcm.Data {
		interleaved[i] = SampleFromInt(sample, bitDepth)
	}

	return &Buffer{
		Samples:    deinterleave(interleaved, channels),
		SampleRate: pcm.Format.SampleRate,
	}, nil
}

// WriteWAV writes interleaved 16-bit PCM samples to a WAV file.
func WriteWAV(path string, pcm []int16, channels, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer f.Close()

	data := make([]int, len(pcm))
	for i, sample := range pcm {
		data[i] = int(sample)
	}

	encoder := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
