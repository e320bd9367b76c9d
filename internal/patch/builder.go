// ABOUTME: Patch build orchestration
// ABOUTME: Config to staged slices, metadata records and the final archive
package patch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/ectokit/ectokit-go/internal/config"
	"github.com/ectokit/ectokit-go/internal/packaging"
	"github.com/ectokit/ectokit-go/pkg/audio"
	"github.com/ectokit/ectokit-go/pkg/render"
	"github.com/ectokit/ectokit-go/pkg/sampleinfo"
	"github.com/ectokit/ectokit-go/pkg/slicing"
)

// Result reports where a build committed its outputs.
type Result struct {
	PatchName string
	WavDir    string
	InfoDir   string
	ZipPath   string
	Rendered  []render.Rendered
	Plan      *slicing.SlicePlan
}

// Build runs one full patch build from a configuration file: load the
// source audio, plan slices, render them with their metadata records into
// a staging directory, and only then commit everything to wav/, info/ and
// patch.zip next to the config. Any failure leaves the patch directory
// untouched.
func Build(cfgPath string) (*Result, error) {
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

	lock := flock.New(filepath.Join(patchDir, ".ectokit.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock patch dir: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another build is running in %s", patchDir)
	}
	defer lock.Unlock()

	buf, plan, manual, err := loadAndPlan(cfg, patchDir)
	if err != nil {
		return nil, err
	}

	staging := filepath.Join(patchDir, ".staging-"+uuid.NewString())
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	rendered, err := render.Render(buf, plan, &render.FileSink{Dir: staging},
		cfg.Output.StartIndex, cfg.Output.Variation, renderOptions(cfg, manual))
	if err != nil {
		return nil, err
	}

	if err := encodeInfoRecords(cfg, plan, rendered, manual, staging); err != nil {
		return nil, err
	}

	result, err := commit(patchDir, patchName, cfg.Output.Bank, staging, rendered)
	if err != nil {
		return nil, err
	}
	result.Plan = plan

	log.Printf("Built patch %s: %d slices -> %s", patchName, len(rendered), result.ZipPath)
	return result, nil
}

// loadAndPlan loads the source buffer and derives the slice plan, manual
// when the config carries explicit slices, heuristic otherwise.
func loadAndPlan(cfg *config.Config, patchDir string) (*audio.Buffer, *slicing.SlicePlan, bool, error) {
	source := cfg.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(patchDir, source)
	}

	buf, err := audio.Load(source, *cfg.Flags.NumChannels == 0)
	if err != nil {
		return nil, nil, false, err
	}

	if len(cfg.Slices) > 0 {
		entries := make([]slicing.ManualSlice, len(cfg.Slices))
		for i, s := range cfg.Slices {
			entries[i] = slicing.ManualSlice{StartMS: s.StartMS, EndMS: s.EndMS}
		}
		plan, err := slicing.PlanManualSlices(entries, buf.SampleRate, buf.Frames(), buf.Mono())
		if err != nil {
			return nil, nil, false, err
		}
		return buf, plan, true, nil
	}

	plan, err := slicing.PlanSlices(buf, slicing.PlanOptions{
		Strategy:        cfg.Slicing.Strategy,
		TargetSlices:    *cfg.Slicing.TargetSlices,
		MinGapMS:        *cfg.Slicing.MinGapMS,
		ThresholdDB:     *cfg.Slicing.ThresholdDB,
		WindowMS:        *cfg.Slicing.WindowMS,
		ExplicitSeconds: cfg.Slicing.ExplicitSeconds,
	})
	if err != nil {
		return nil, nil, false, err
	}
	return buf, plan, false, nil
}

// renderOptions builds the per-slice render options. Heuristic plans use
// all-zero options.
func renderOptions(cfg *config.Config, manual bool) []render.Options {
	if !manual {
		return nil
	}
	opts := make([]render.Options, len(cfg.Slices))
	for i, s := range cfg.Slices {
		opts[i] = render.Options{GainDB: s.GainDB, FadeInMS: s.FadeInMS, FadeOutMS: s.FadeOutMS}
	}
	return opts
}

// encodeInfoRecords writes one .wav.info file per rendered slice into the
// staging directory.
func encodeInfoRecords(cfg *config.Config, plan *slicing.SlicePlan, rendered []render.Rendered, manual bool, staging string) error {
	flags := deviceFlags(cfg)
	kick, snare, transient, random := cfg.ResolvedLabels()

	for i, r := range rendered {
		var transients [][]int
		if manual {
			transients = manualTransients(cfg.Slices[i].TransientsMS, plan.SampleRate)
			if transients == nil {
				transients = [][]int{{}, {}, {}}
			}
		} else {
			transients = configTransients(cfg, i, plan.SampleRate)
		}

		content := sampleinfo.Content{
			SizeBytes:   uint32(r.PCMBytes),
			Flags:       flags,
			SliceStarts: []int32{0},
			SliceStops:  []int32{int32(plan.Slices[i].Length())},
			SliceTypes:  []int8{sliceType(i, kick, snare, transient, random)},
			Transients:  transients,
		}
		payload, err := sampleinfo.Encode(content)
		if err != nil {
			return fmt.Errorf("slice %s: %w", r.Name, err)
		}
		infoPath := filepath.Join(staging, r.Name+".info")
		if err := os.WriteFile(infoPath, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", infoPath, err)
		}
	}
	return nil
}

func deviceFlags(cfg *config.Config) sampleinfo.Flags {
	return sampleinfo.Flags{
		BPM:            *cfg.BPM,
		PlayMode:       *cfg.Flags.PlayMode,
		OneShot:        *cfg.Flags.OneShot,
		TempoMatch:     *cfg.Flags.TempoMatch,
		Oversampling:   *cfg.Flags.Oversampling,
		NumChannels:    *cfg.Flags.NumChannels,
		Version:        *cfg.Flags.Version,
		Reserved:       *cfg.Flags.Reserved,
		SpliceTrigger:  *cfg.Flags.SpliceTrigger,
		SpliceVariable: *cfg.Flags.SpliceVariable,
	}
}

// commit moves staged outputs into wav/ and info/ and writes the archive.
// Runs only after every slice rendered and encoded successfully.
func commit(patchDir, patchName, bank, staging string, rendered []render.Rendered) (*Result, error) {
	wavDir := filepath.Join(patchDir, "wav")
	infoDir := filepath.Join(patchDir, "info")
	for _, dir := range []string{wavDir, infoDir} {
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	var archived []string
	for _, r := range rendered {
		wavDest := filepath.Join(wavDir, r.Name)
		if err := os.Rename(filepath.Join(staging, r.Name), wavDest); err != nil {
			return nil, fmt.Errorf("failed to commit %s: %w", r.Name, err)
		}
		infoName := r.Name + ".info"
		infoDest := filepath.Join(infoDir, infoName)
		if err := os.Rename(filepath.Join(staging, infoName), infoDest); err != nil {
			return nil, fmt.Errorf("failed to commit %s: %w", infoName, err)
		}
		archived = append(archived, wavDest, infoDest)
	}

	zipPath := filepath.Join(patchDir, "patch.zip")
	if err := packaging.WriteArchive(zipPath, patchName, bank, archived); err != nil {
		return nil, err
	}

	return &Result{
		PatchName: patchName,
		WavDir:    wavDir,
		InfoDir:   infoDir,
		ZipPath:   zipPath,
		Rendered:  rendered,
	}, nil
}
