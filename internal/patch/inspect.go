// ABOUTME: Dry-run slice planning for inspection
// ABOUTME: Produces the plan and classifications without writing output
package patch

import (
	"path/filepath"

	"github.com/ectokit/ectokit-go/internal/config"
	"github.com/ectokit/ectokit-go/pkg/slicing"
)

// Summary describes a plan without rendering it.
type Summary struct {
	PatchName  string
	Plan       *slicing.SlicePlan
	Types      []int8
	StartIndex int
	Variation  int
}

// Inspect loads the config and source audio and returns the slice plan
// that a build would use, with per-slice classifications.
func Inspect(cfgPath string) (*Summary, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	patchDir, err := filepath.Abs(filepath.Dir(cfgPath))
	if err != nil {
		return nil, err
	}
	patchName := cfg.PatchName
	if patchName == "" {
		patchName = filepath.Base(patchDir)
	}

	_, plan, _, err := loadAndPlan(cfg, patchDir)
	if err != nil {
		return nil, err
	}

	kick, snare, transient, random := cfg.ResolvedLabels()
	types := make([]int8, len(plan.Slices))
	for i := range plan.Slices {
		types[i] = sliceType(i, kick, snare, transient, random)
	}

	return &Summary{
		PatchName:  patchName,
		Plan:       plan,
		Types:      types,
		StartIndex: cfg.Output.StartIndex,
		Variation:  cfg.Output.Variation,
	}, nil
}
