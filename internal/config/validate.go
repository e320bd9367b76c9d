// ABOUTME: Eager validation of patch configuration
// ABOUTME: Rejects malformed values at load time instead of first use
package config

import (
	"fmt"

	"github.com/ectokit/ectokit-go/pkg/slicing"
)

// Validate ensures the configuration is usable. ApplyDefaults must run
// first.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if bpm := *c.BPM; bpm < 0 || bpm > 510 {
		return fmt.Errorf("bpm %d out of range 0..510", bpm)
	}
	if err := c.validateFlags(); err != nil {
		return err
	}
	if err := c.validateSlicing(); err != nil {
		return err
	}
	if err := c.validateLabels(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFlags() error {
	if v := *c.Flags.PlayMode; v < 0 || v > 7 {
		return fmt.Errorf("flags.play_mode %d out of range 0..7", v)
	}
	if v := *c.Flags.Version; v < 0 || v > 127 {
		return fmt.Errorf("flags.version %d out of range 0..127", v)
	}
	if v := *c.Flags.Reserved; v < 0 || v > 511 {
		return fmt.Errorf("flags.reserved %d out of range 0..511", v)
	}
	if v := *c.Flags.SpliceTrigger; v < 0 || v > 32767 {
		return fmt.Errorf("flags.splice_trigger %d out of range 0..32767", v)
	}
	return nil
}

func (c *Config) validateSlicing() error {
	switch c.Slicing.Strategy {
	case slicing.StrategyTransient, slicing.StrategyExplicit:
	default:
		return fmt.Errorf("slicing.strategy %q is not one of %q, %q",
			c.Slicing.Strategy, slicing.StrategyTransient, slicing.StrategyExplicit)
	}
	if v := *c.Slicing.TargetSlices; v < 1 {
		return fmt.Errorf("slicing.target_slices must be >= 1, got %d", v)
	}
	if v := *c.Slicing.MinGapMS; v < 0 {
		return fmt.Errorf("slicing.min_gap_ms must not be negative, got %g", v)
	}
	if v := *c.Slicing.WindowMS; v < 0 {
		return fmt.Errorf("slicing.window_ms must not be negative, got %g", v)
	}
	for _, s := range c.Slicing.ExplicitSeconds {
		if s < 0 {
			return fmt.Errorf("slicing.explicit_seconds must not be negative, got %g", s)
		}
	}
	for _, s := range c.Slices {
		if v := s.FadeInMS; v < 0 {
			return fmt.Errorf("slice %q: fade_in_ms must not be negative, got %g", s.Name, v)
		}
		if v := s.FadeOutMS; v < 0 {
			return fmt.Errorf("slice %q: fade_out_ms must not be negative, got %g", s.Name, v)
		}
	}
	return nil
}

func (c *Config) validateLabels() error {
	for name, raw := range map[string]any{
		"kick":      c.Labels.Kick,
		"snare":     c.Labels.Snare,
		"transient": c.Labels.Transient,
		"random":    c.Labels.Random,
	} {
		if _, err := ParseLabelSet(raw); err != nil {
			return fmt.Errorf("labels.%s: %w", name, err)
		}
	}
	return nil
}

// LabelSet is a resolved label value: either every slice index, or a
// fixed index set.
type LabelSet struct {
	All     bool
	Indices []int
}

// Contains reports whether idx belongs to the label.
func (s LabelSet) Contains(idx int) bool {
	if s.All {
		return true
	}
	for _, v := range s.Indices {
		if v == idx {
			return true
		}
	}
	return false
}

// ParseLabelSet resolves a raw TOML label value. Accepted forms: absent
// (nil), the string "all", a single integer, or an integer list.
func ParseLabelSet(raw any) (LabelSet, error) {
	switch v := raw.(type) {
	case nil:
		return LabelSet{}, nil
	case string:
		if v == "all" {
			return LabelSet{All: true}, nil
		}
		return LabelSet{}, fmt.Errorf("string value must be \"all\", got %q", v)
	case int64:
		return LabelSet{Indices: []int{int(v)}}, nil
	case float64:
		return LabelSet{Indices: []int{int(v)}}, nil
	case []any:
		indices := make([]int, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case int64:
				indices = append(indices, int(n))
			case float64:
				indices = append(indices, int(n))
			default:
				return LabelSet{}, fmt.Errorf("index list may contain only integers, got %T", item)
			}
		}
		return LabelSet{Indices: indices}, nil
	default:
		return LabelSet{}, fmt.Errorf("unsupported label value type %T", raw)
	}
}

// ResolvedLabels returns the four label sets in classification priority
// order. Call only after Validate.
func (c *Config) ResolvedLabels() (kick, snare, transient, random LabelSet) {
	kick, _ = ParseLabelSet(c.Labels.Kick)
	snare, _ = ParseLabelSet(c.Labels.Snare)
	transient, _ = ParseLabelSet(c.Labels.Transient)
	random, _ = ParseLabelSet(c.Labels.Random)
	return kick, snare, transient, random
}
