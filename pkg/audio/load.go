// ABOUTME: Audio file loading with automatic decoding
// ABOUTME: Supports WAV, FLAC and MP3 sources with optional mono collapse
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/go-mp3"
	"github.com/mewkiz/flac"
)

// Load reads an audio file into a float32 Buffer. The format is chosen by
// file extension (.wav, .flac, .mp3). When forceMono is set, channels are
// averaged down to a single channel.
func Load(path string, forceMono bool) (*Buffer, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", path)
	}

	var (
		buf *Buffer
		err error
	)

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		buf, err = loadWAV(path)
	case ".flac":
		buf, err = loadFLAC(path)
	case ".mp3":
		buf, err = loadMP3(path)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .flac, .mp3)", ext)
	}
	if err != nil {
		return nil, err
	}

	if forceMono && buf.Channels() > 1 {
		buf = collapseToMono(buf)
	}

	log.Printf("Loaded %s: %d frames, %d channels, %d Hz",
		filepath.Base(path), buf.Frames(), buf.Channels(), buf.SampleRate)

	return buf, nil
}

// collapseToMono averages all channels into one.
func collapseToMono(buf *Buffer) *Buffer {
	frames := buf.Frames()
	channels := buf.Channels()
	mono := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += buf.Samples[ch][i]
		}
		mono[i] = sum / float32(channels)
	}
	return &Buffer{Samples: [][]float32{mono}, SampleRate: buf.SampleRate}
}

// deinterleave splits interleaved float samples into per-channel slices.
func deinterleave(interleaved []float32, channels int) [][]float32 {
	frames := len(interleaved) / channels
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = interleaved[i*channels+ch]
		}
	}
	return out
}

func loadMP3(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}

	// go-mp3 outputs interleaved stereo int16 bytes
	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode error: %w", err)
	}

	numSamples := len(raw) / 2
	interleaved := make([]float32, numSamples)
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		interleaved[i] = SampleFromInt16(sample16)
	}

	return &Buffer{
		Samples:    deinterleave(interleaved, 2),
		SampleRate: decoder.SampleRate(),
	}, nil
}

func loadFLAC(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	samples := make([][]float32, channels)
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac frame parse error: %w", err)
		}
		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				sample := frame.Subframes[ch].Samples[i]
				samples[ch] = append(samples[ch], SampleFromInt(int(sample), bitDepth))
			}
		}
	}

	return &Buffer{Samples: samples, SampleRate: int(info.SampleRate)}, nil
}
