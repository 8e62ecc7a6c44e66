package estimate_test

import (
	"os"
	"path/filepath"
	"testing"

	"finishingtouch/intake-service/internal/estimate"
)

func TestLoadRates_EmptyPathUsesDefaults(t *testing.T) {
	r, err := estimate.LoadRates("")
	if err != nil {
		t.Fatalf("LoadRates(\"\") returned error: %v", err)
	}
	if r.Version == "" {
		t.Error("default rates should carry a version")
	}
	if r.Organizing.Hourly != 65 {
		t.Errorf("organizing hourly = %d, want 65", r.Organizing.Hourly)
	}
}

func TestLoadRates_OverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	override := []byte("version: \"2026-01-test\"\ncleaning:\n  deep: 0.30\n")
	if err := os.WriteFile(path, override, 0o600); err != nil {
		t.Fatalf("write temp rates: %v", err)
	}

	r, err := estimate.LoadRates(path)
	if err != nil {
		t.Fatalf("LoadRates returned error: %v", err)
	}
	if r.Version != "2026-01-test" {
		t.Errorf("version = %q, want 2026-01-test", r.Version)
	}
	if r.Cleaning.Deep != 0.30 {
		t.Errorf("cleaning deep rate = %v, want 0.30", r.Cleaning.Deep)
	}
	// Untouched fields keep their defaults.
	if r.Holiday.Hourly != 85 {
		t.Errorf("holiday hourly = %d, want 85", r.Holiday.Hourly)
	}
}

func TestLoadRates_MissingFile(t *testing.T) {
	if _, err := estimate.LoadRates("/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing rates file")
	}
}

func TestHoursLabel(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{2.0, "Small (≈2–2.5 hr)"},
		{2.5, "Small (≈2–2.5 hr)"},
		{4.0, "Medium (≈3–4 hr)"},
		{5.5, "Large (≈5–6 hr)"},
		{8.0, "XL (6.5+ hr)"},
	}
	for _, c := range cases {
		if got := estimate.HoursLabel(c.hours); got != c.want {
			t.Errorf("HoursLabel(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}
