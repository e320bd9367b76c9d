// ABOUTME: Patch configuration schema and TOML loading
// ABOUTME: Strict decoding with typed optional fields
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config describes one patch build. Optional scalar fields use pointers
// so that "absent" is distinguishable from a zero value.
type Config struct {
	PatchName string `toml:"patch_name"`
	Source    string `toml:"source"`
	BPM       *int   `toml:"bpm"`

	Output     Output        `toml:"output"`
	Flags      Flags         `toml:"flags"`
	Slicing    Slicing       `toml:"slicing"`
	Labels     Labels        `toml:"labels"`
	Transients Transients    `toml:"transients"`
	Slices     []ManualSlice `toml:"slices"`
}

// Output controls device naming of the generated files.
type Output struct {
	Bank       string `toml:"bank"`
	StartIndex int    `toml:"start_index"`
	Variation  int    `toml:"variation"`
}

// Flags mirrors the device flag fields of the metadata record.
type Flags struct {
	PlayMode       *int  `toml:"play_mode"`
	OneShot        *bool `toml:"one_shot"`
	TempoMatch     *bool `toml:"tempo_match"`
	Oversampling   *bool `toml:"oversampling"`
	NumChannels    *int  `toml:"num_channels"`
	Version        *int  `toml:"version"`
	Reserved       *int  `toml:"reserved"`
	SpliceTrigger  *int  `toml:"splice_trigger"`
	SpliceVariable *bool `toml:"splice_variable"`
}

// Slicing holds the heuristic planning parameters, used when no manual
// slices are configured.
type Slicing struct {
	Strategy        string    `toml:"strategy"`
	TargetSlices    *int      `toml:"target_slices"`
	MinGapMS        *float64  `toml:"min_gap_ms"`
	ThresholdDB     *float64  `toml:"threshold_db"`
	WindowMS        *float64  `toml:"window_ms"`
	ExplicitSeconds []float64 `toml:"explicit_seconds"`
}

// Labels maps slice classifications to slice indices. Each value is
// either a list of indices or the string "all".
type Labels struct {
	Kick      any `toml:"kick"`
	Snare     any `toml:"snare"`
	Transient any `toml:"transient"`
	Random    any `toml:"random"`
}

// Transients configures heuristic-plan transient markers per slice index.
type Transients struct {
	PerSliceMS map[string][]float64 `toml:"per_slice_ms"`
}

// ManualSlice is one explicit slice entry. StartMS and EndMS are required
// for planning; nil marks a missing field.
type ManualSlice struct {
	Name         string    `toml:"name"`
	StartMS      *float64  `toml:"start_ms"`
	EndMS        *float64  `toml:"end_ms"`
	GainDB       float64   `toml:"gain_db"`
	FadeInMS     float64   `toml:"fade_in_ms"`
	FadeOutMS    float64   `toml:"fade_out_ms"`
	TransientsMS []float64 `toml:"transients_ms"`
}

// Load reads, defaults and validates a patch configuration file.
// Unknown fields are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func unmarshalStrict(data []byte, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(cfg)
}
