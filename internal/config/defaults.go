// ABOUTME: Default values for patch configuration
// ABOUTME: Fills absent optional fields with the documented defaults
package config

import "github.com/ectokit/ectokit-go/pkg/slicing"

// Documented configuration defaults.
const (
	DefaultBPM           = 120
	DefaultVersion       = 1
	DefaultSpliceTrigger = 24
	DefaultBank          = "bank1"
	DefaultTargetSlices  = 16
)

// ApplyDefaults fills every absent optional field. After this call all
// pointer fields that have package-level defaults are non-nil; manual
// slice boundary fields are deliberately left alone so missing values
// surface as slice-configuration errors at plan time.
func (c *Config) ApplyDefaults() {
	if c.BPM == nil {
		c.BPM = intPtr(DefaultBPM)
	}
	if c.Output.Bank == "" {
		c.Output.Bank = DefaultBank
	}

	if c.Flags.PlayMode == nil {
		c.Flags.PlayMode = intPtr(0)
	}
	if c.Flags.OneShot == nil {
		c.Flags.OneShot = boolPtr(true)
	}
	if c.Flags.TempoMatch == nil {
		c.Flags.TempoMatch = boolPtr(true)
	}
	if c.Flags.Oversampling == nil {
		c.Flags.Oversampling = boolPtr(false)
	}
	if c.Flags.NumChannels == nil {
		c.Flags.NumChannels = intPtr(0)
	}
	if c.Flags.Version == nil {
		c.Flags.Version = intPtr(DefaultVersion)
	}
	if c.Flags.Reserved == nil {
		c.Flags.Reserved = intPtr(0)
	}
	if c.Flags.SpliceTrigger == nil {
		c.Flags.SpliceTrigger = intPtr(DefaultSpliceTrigger)
	}
	if c.Flags.SpliceVariable == nil {
		c.Flags.SpliceVariable = boolPtr(false)
	}

	if c.Slicing.Strategy == "" {
		c.Slicing.Strategy = slicing.StrategyTransient
	}
	if c.Slicing.TargetSlices == nil {
		c.Slicing.TargetSlices = intPtr(DefaultTargetSlices)
	}
	if c.Slicing.MinGapMS == nil {
		c.Slicing.MinGapMS = floatPtr(slicing.DefaultMinGapMS)
	}
	if c.Slicing.ThresholdDB == nil {
		c.Slicing.ThresholdDB = floatPtr(slicing.DefaultThresholdDB)
	}
	if c.Slicing.WindowMS == nil {
		c.Slicing.WindowMS = floatPtr(slicing.DefaultWindowMS)
	}
}

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
