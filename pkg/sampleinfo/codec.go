// ABOUTME: Binary encoder for firmware sample metadata records
// ABOUTME: Fixed little-endian layout with a computed-length self check
package sampleinfo

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInconsistent marks a codec precondition violation or an internal
// payload-size mismatch. It signals a defect, not a retryable condition.
var ErrInconsistent = errors.New("inconsistent sample info")

// packHeaderSize is the fixed prefix: size (4) + flags (4) + splice (2) +
// slice count (1).
const packHeaderSize = 4 + 4 + 2 + 1

// maxSlices is the slice count limit imposed by the uint8 count field.
const maxSlices = 255

// Content is one sample metadata record. SizeBytes is the PCM payload
// byte count supplied by the caller; the codec writes it verbatim and
// never derives it. The parallel slice arrays must have equal length.
// Transients hold raw positions in source sample units; Encode normalizes
// them to device units.
type Content struct {
	SizeBytes   uint32
	Flags       Flags
	SliceStarts []int32
	SliceStops  []int32
	SliceTypes  []int8
	Transients  [][]int
}

// Encode serializes the record into the firmware byte layout:
//
//	uint32  size_bytes
//	uint32  flags
//	uint16  splice_info
//	uint8   slice_num
//	int32[slice_num]  slice_starts
//	int32[slice_num]  slice_stops
//	int8[slice_num]   slice_types
//	(version >= 1 only)
//	uint16[3]  transient counts, one per level
//	uint16...  transient values, level by level
//
// The input is never mutated. The written byte count is checked against
// the independently computed length; a mismatch is an internal defect.
func Encode(content Content) ([]byte, error) {
	sliceNum := len(content.SliceStarts)
	if len(content.SliceStops) != sliceNum || len(content.SliceTypes) != sliceNum {
		return nil, fmt.Errorf("%w: slice arrays must have equal length (starts=%d stops=%d types=%d)",
			ErrInconsistent, sliceNum, len(content.SliceStops), len(content.SliceTypes))
	}
	if sliceNum > maxSlices {
		return nil, fmt.Errorf("%w: %d slices exceeds maximum %d", ErrInconsistent, sliceNum, maxSlices)
	}

	transients := normalizeTransients(content.Transients)
	expected := expectedLength(sliceNum, content.Flags.Version, transients)

	buf := bytes.NewBuffer(make([]byte, 0, expected))
	binary.Write(buf, binary.LittleEndian, content.SizeBytes)
	binary.Write(buf, binary.LittleEndian, content.Flags.PackFlags())
	binary.Write(buf, binary.LittleEndian, content.Flags.PackSplice())
	binary.Write(buf, binary.LittleEndian, uint8(sliceNum))
	binary.Write(buf, binary.LittleEndian, content.SliceStarts)
	binary.Write(buf, binary.LittleEndian, content.SliceStops)
	binary.Write(buf, binary.LittleEndian, content.SliceTypes)

	if content.Flags.Version >= 1 {
		for _, level := range transients {
			binary.Write(buf, binary.LittleEndian, uint16(len(level)))
		}
		for _, level := range transients {
			binary.Write(buf, binary.LittleEndian, level)
		}
	}

	if buf.Len() != expected {
		return nil, fmt.Errorf("%w: wrote %d bytes, expected %d", ErrInconsistent, buf.Len(), expected)
	}
	return buf.Bytes(), nil
}

// expectedLength computes the payload size from the same layout rules.
func expectedLength(sliceNum, version int, transients [][]uint16) int {
	size := packHeaderSize + sliceNum*(4+4+1)
	if version >= 1 {
		total := 0
		for _, level := range transients {
			total += len(level)
		}
		size += 2*numTransientLevels + 2*total
	}
	return size
}
