// ABOUTME: Device flag bit packing for sample metadata
// ABOUTME: Matches the firmware's 32-bit flags word and 16-bit splice word
package sampleinfo

// Flags holds the fixed-width playback fields consumed by the firmware.
type Flags struct {
	BPM            int
	PlayMode       int
	OneShot        bool
	TempoMatch     bool
	Oversampling   bool
	NumChannels    int // 0 = mono, nonzero = stereo
	Version        int
	Reserved       int
	SpliceTrigger  int
	SpliceVariable bool
}

// PackFlags packs the flags into the firmware's 32-bit word.
//
//	bits  0-8   bpm           (clamped to 0..510)
//	bits  9-11  play_mode     (0..7)
//	bit   12    one_shot
//	bit   13    tempo_match
//	bit   14    oversampling
//	bit   15    num_channels  (nonzero collapses to 1)
//	bits 16-22  version       (0..127)
//	bits 23-31  reserved      (0..511)
func (f Flags) PackFlags() uint32 {
	packed := uint32(clampInt(f.BPM, 0, 510))
	packed |= uint32(clampInt(f.PlayMode, 0, 7)) << 9
	packed |= boolBit(f.OneShot) << 12
	packed |= boolBit(f.TempoMatch) << 13
	packed |= boolBit(f.Oversampling) << 14
	if f.NumChannels != 0 {
		packed |= 1 << 15
	}
	packed |= uint32(clampInt(f.Version, 0, 0x7F)) << 16
	packed |= uint32(clampInt(f.Reserved, 0, 0x1FF)) << 23
	return packed
}

// PackSplice packs the splice trigger and variability flag into the
// firmware's 16-bit word: bits 0-14 trigger (clamped to 0..32767),
// bit 15 variable.
func (f Flags) PackSplice() uint16 {
	packed := uint16(clampInt(f.SpliceTrigger, 0, 0x7FFF))
	if f.SpliceVariable {
		packed |= 1 << 15
	}
	return packed
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
