// ABOUTME: Tests for patch configuration loading
// ABOUTME: Strict parsing, defaults, validation and label resolution
package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
patch_name = "example_patch"
source = "source.wav"
bpm = 155

[output]
bank = "bank1"
start_index = 0
variation = 0

[flags]
play_mode = 0
one_shot = true
tempo_match = true
oversampling = false
num_channels = 0
version = 1
reserved = 0
splice_trigger = 24
splice_variable = false

[slicing]
strategy = "transient"
target_slices = 16
min_gap_ms = 35.0
threshold_db = -28.0
window_ms = 10.0

[labels]
kick = [0, 8]
snare = [4, 12]
transient = [2, 6, 10, 14]
random = "all"

[transients.per_slice_ms]
"0" = [0.0, 120.0]

[[slices]]
name = "slice_01"
start_ms = 0.0
end_ms = 420.0
gain_db = 0.0
fade_in_ms = 2.0
fade_out_ms = 6.0
transients_ms = [0.0]

[[slices]]
name = "slice_02"
start_ms = 420.0
end_ms = 780.0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.PatchName != "example_patch" {
		t.Errorf("expected patch_name example_patch, got %s", cfg.PatchName)
	}
	if *cfg.BPM != 155 {
		t.Errorf("expected bpm 155, got %d", *cfg.BPM)
	}
	if len(cfg.Slices) != 2 {
		t.Fatalf("expected 2 manual slices, got %d", len(cfg.Slices))
	}
	if cfg.Slices[0].FadeOutMS != 6.0 {
		t.Errorf("expected fade_out_ms 6.0, got %g", cfg.Slices[0].FadeOutMS)
	}
	if cfg.Slices[1].StartMS == nil || *cfg.Slices[1].StartMS != 420.0 {
		t.Error("expected slice_02 start_ms 420.0")
	}
	if got := cfg.Transients.PerSliceMS["0"]; len(got) != 2 {
		t.Errorf("expected 2 per-slice transients, got %v", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `source = "source.wav"`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *cfg.BPM != DefaultBPM {
		t.Errorf("expected default bpm %d, got %d", DefaultBPM, *cfg.BPM)
	}
	if cfg.Output.Bank != DefaultBank {
		t.Errorf("expected default bank %s, got %s", DefaultBank, cfg.Output.Bank)
	}
	if !*cfg.Flags.OneShot {
		t.Error("expected one_shot default true")
	}
	if *cfg.Flags.Version != DefaultVersion {
		t.Errorf("expected default version %d, got %d", DefaultVersion, *cfg.Flags.Version)
	}
	if *cfg.Flags.SpliceTrigger != DefaultSpliceTrigger {
		t.Errorf("expected default splice_trigger %d, got %d", DefaultSpliceTrigger, *cfg.Flags.SpliceTrigger)
	}
	if cfg.Slicing.Strategy != "transient" {
		t.Errorf("expected default strategy transient, got %s", cfg.Slicing.Strategy)
	}
	if *cfg.Slicing.TargetSlices != DefaultTargetSlices {
		t.Errorf("expected default target_slices %d, got %d", DefaultTargetSlices, *cfg.Slicing.TargetSlices)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, `
source = "source.wav"
bogus_field = 1
`))
	if err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoadRequiresSource(t *testing.T) {
	if _, err := Load(writeConfig(t, `patch_name = "x"`)); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestLoadRejectsBadStrategy(t *testing.T) {
	_, err := Load(writeConfig(t, `
source = "source.wav"

[slicing]
strategy = "psychic"
`))
	if err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestLoadRejectsBadBPM(t *testing.T) {
	if _, err := Load(writeConfig(t, "source = \"s.wav\"\nbpm = 900\n")); err == nil {
		t.Error("expected error for bpm out of range")
	}
}

func TestLoadRejectsNegativeExplicitSeconds(t *testing.T) {
	_, err := Load(writeConfig(t, `
source = "source.wav"

[slicing]
strategy = "explicit"
explicit_seconds = [-0.5, 1.0]
`))
	if err == nil {
		t.Error("expected error for negative explicit offset")
	}
}

func TestLoadRejectsNegativeFade(t *testing.T) {
	_, err := Load(writeConfig(t, `
source = "source.wav"

[[slices]]
start_ms = 0.0
end_ms = 100.0
fade_in_ms = -1.0
`))
	if err == nil {
		t.Error("expected error for negative fade")
	}
}

func TestParseLabelSet(t *testing.T) {
	set, err := ParseLabelSet("all")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !set.All || !set.Contains(99) {
		t.Error("expected \"all\" to contain every index")
	}

	set, err = ParseLabelSet([]any{int64(0), int64(8)})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !set.Contains(8) || set.Contains(5) {
		t.Error("expected index list semantics")
	}

	if _, err := ParseLabelSet("some"); err == nil {
		t.Error("expected error for unknown string value")
	}
	if _, err := ParseLabelSet([]any{"kick"}); err == nil {
		t.Error("expected error for non-integer list entry")
	}

	set, err = ParseLabelSet(nil)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if set.Contains(0) {
		t.Error("expected absent label to contain nothing")
	}
}

func TestResolvedLabels(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	kick, snare, transient, random := cfg.ResolvedLabels()
	if !kick.Contains(0) || !kick.Contains(8) {
		t.Error("expected kick to contain 0 and 8")
	}
	if !snare.Contains(4) {
		t.Error("expected snare to contain 4")
	}
	if !transient.Contains(14) {
		t.Error("expected transient to contain 14")
	}
	if !random.All {
		t.Error("expected random to be \"all\"")
	}
}
