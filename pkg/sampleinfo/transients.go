// ABOUTME: Transient marker normalization to device sample units
// ABOUTME: Scales raw sample positions by 16 into three fixed levels
package sampleinfo

const (
	// maxTransients is the firmware's per-level marker capacity.
	maxTransients = 16
	// numTransientLevels is the fixed level count in the payload.
	numTransientLevels = 3
)

// normalizeTransients converts raw transient positions (source sample
// units) into device units. Per level: values <= 0 are dropped, the rest
// are integer-divided by 16; a scaled value over 0xFFFF is treated as 0
// and dropped, as is any value that scales to 0. At most maxTransients
// entries are kept per level. The result always has exactly
// numTransientLevels levels.
func normalizeTransients(levels [][]int) [][]uint16 {
	normalized := make([][]uint16, 0, numTransientLevels)
	for _, level := range levels {
		if len(normalized) == numTransientLevels {
			break
		}
		bucket := make([]uint16, 0, maxTransients)
		for _, raw := range level {
			if raw <= 0 {
				continue
			}
			scaled := raw / 16
			if scaled > 0xFFFF {
				scaled = 0
			}
			if scaled == 0 {
				continue
			}
			bucket = append(bucket, uint16(scaled))
			if len(bucket) == maxTransients {
				break
			}
		}
		normalized = append(normalized, bucket)
	}
	for len(normalized) < numTransientLevels {
		normalized = append(normalized, []uint16{})
	}
	return normalized
}
