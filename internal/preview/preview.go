// ABOUTME: Local playback of rendered slices
// ABOUTME: Plays interleaved 16-bit PCM through oto and blocks until done
package preview

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Play renders the PCM samples through the default audio device at the
// given rate and blocks until playback drains.
func Play(pcm []int16, channels, sampleRate int) error {
	if len(pcm) == 0 {
		return fmt.Errorf("nothing to play")
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-readyChan

	raw := make([]byte, len(pcm)*2)
	for i, sample := range pcm {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(sample))
	}

	player := ctx.NewPlayer(bytes.NewReader(raw))
	player.Play()
	log.Printf("Previewing %d frames at %d Hz", len(pcm)/channels, sampleRate)

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}
