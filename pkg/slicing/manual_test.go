// ABOUTME: Tests for manual slice planning
// ABOUTME: Boundary validation, ordering, overlap rejection and clamping
package slicing

import (
	"errors"
	"testing"
)

func ms(v float64) *float64 { return &v }

func TestPlanManualSlices(t *testing.T) {
	entries := []ManualSlice{
		{StartMS: ms(0), EndMS: ms(100)},
		{StartMS: ms(100), EndMS: ms(250)},
	}

	// sr=1000 makes milliseconds equal samples
	plan, err := PlanManualSlices(entries, 1000, 1000, true)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if len(plan.Slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(plan.Slices))
	}
	if plan.Slices[0].Start != 0 || plan.Slices[0].Stop != 100 {
		t.Errorf("expected [0, 100), got [%d, %d)", plan.Slices[0].Start, plan.Slices[0].Stop)
	}
	if plan.Slices[1].Start != 100 || plan.Slices[1].Stop != 250 {
		t.Errorf("expected [100, 250), got [%d, %d)", plan.Slices[1].Start, plan.Slices[1].Stop)
	}
}

func TestPlanManualSlicesOverlap(t *testing.T) {
	entries := []ManualSlice{
		{StartMS: ms(0), EndMS: ms(100)},
		{StartMS: ms(50), EndMS: ms(150)},
	}

	_, err := PlanManualSlices(entries, 1000, 1000, true)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for overlapping slices, got %v", err)
	}
}

func TestPlanManualSlicesSorted(t *testing.T) {
	// Entries arrive out of order but are non-overlapping once sorted
	entries := []ManualSlice{
		{StartMS: ms(500), EndMS: ms(700)},
		{StartMS: ms(0), EndMS: ms(400)},
	}

	plan, err := PlanManualSlices(entries, 1000, 1000, true)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if plan.Slices[0].Start != 0 || plan.Slices[1].Start != 500 {
		t.Errorf("expected sorted starts 0 and 500, got %d and %d",
			plan.Slices[0].Start, plan.Slices[1].Start)
	}
}

func TestPlanManualSlicesMissingFields(t *testing.T) {
	var cfgErr *ConfigError

	_, err := PlanManualSlices([]ManualSlice{{EndMS: ms(100)}}, 1000, 1000, true)
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError for missing start_ms, got %v", err)
	}

	_, err = PlanManualSlices([]ManualSlice{{StartMS: ms(0)}}, 1000, 1000, true)
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError for missing end_ms, got %v", err)
	}
}

func TestPlanManualSlicesInverted(t *testing.T) {
	entries := []ManualSlice{{StartMS: ms(200), EndMS: ms(100)}}

	_, err := PlanManualSlices(entries, 1000, 1000, true)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for end <= start, got %v", err)
	}
}

func TestPlanManualSlicesClamping(t *testing.T) {
	entries := []ManualSlice{{StartMS: ms(800), EndMS: ms(5000)}}

	plan, err := PlanManualSlices(entries, 1000, 1000, true)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	if plan.Slices[0].Stop != 1000 {
		t.Errorf("expected stop clamped to 1000, got %d", plan.Slices[0].Stop)
	}
}

func TestPlanManualSlicesEmptyBuffer(t *testing.T) {
	entries := []ManualSlice{{StartMS: ms(0), EndMS: ms(100)}}

	_, err := PlanManualSlices(entries, 1000, 0, true)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for empty buffer, got %v", err)
	}
}

func TestPlanManualSlicesEmpty(t *testing.T) {
	_, err := PlanManualSlices(nil, 1000, 1000, true)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for empty slice list, got %v", err)
	}
}
