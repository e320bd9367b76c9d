// ABOUTME: Output sink abstraction for rendered slices
// ABOUTME: File sink writes 16-bit WAV, memory sink backs tests and preview
package render

import (
	"path/filepath"

	"github.com/ectokit/ectokit-go/pkg/audio"
)

// Sink receives rendered slices as interleaved 16-bit PCM.
type Sink interface {
	Put(name string, pcm []int16, channels, sampleRate int) error
}

// FileSink writes each rendered slice as a WAV file under Dir.
type FileSink struct {
	Dir string
}

func (s *FileSink) Put(name string, pcm []int16, channels, sampleRate int) error {
	return audio.WriteWAV(filepath.Join(s.Dir, name), pcm, channels, sampleRate)
}

// MemorySink collects rendered slices in memory, keyed by name.
type MemorySink struct {
	Names []string
	PCM   map[string][]int16
}

func (s *MemorySink) Put(name string, pcm []int16, channels, sampleRate int) error {
	if s.PCM == nil {
		s.PCM = make(map[string][]int16)
	}
	s.Names = append(s.Names, name)
	s.PCM[name] = pcm
	return nil
}
