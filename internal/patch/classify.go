// ABOUTME: Slice classification from label maps
// ABOUTME: Priority kick > snare > transient > random > default
package patch

import "github.com/ectokit/ectokit-go/internal/config"

// Slice classification codes understood by the firmware.
const (
	TypeDefault   int8 = 0
	TypeKick      int8 = 1
	TypeSnare     int8 = 2
	TypeTransient int8 = 3
	TypeRandom    int8 = 4
)

// sliceType classifies one slice index against the configured label
// sets. An index present in several labels takes the highest-priority
// classification.
func sliceType(idx int, kick, snare, transient, random config.LabelSet) int8 {
	switch {
	case kick.Contains(idx):
		return TypeKick
	case snare.Contains(idx):
		return TypeSnare
	case transient.Contains(idx):
		return TypeTransient
	case random.Contains(idx):
		return TypeRandom
	default:
		return TypeDefault
	}
}
