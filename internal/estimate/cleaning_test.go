package estimate_test

import (
	"testing"

	"finishingtouch/intake-service/internal/estimate"
)

// ── NormalizeSqft ──────────────────────────────────────────────────────────

func TestNormalizeSqft(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2300", 2300},
		{" 850 ", 850},
		{"<1000", 800},
		{"1000–2000", 1500},
		{"1000-2000", 1500},
		{"2000–3000", 2500},
		{"3000-4000", 3500},
		{"4000+", 4200},
		{"a few rooms", 1500}, // unrecognized text falls back to the middle tier
		{"", 0},
	}
	for _, c := range cases {
		if got := estimate.NormalizeSqft(c.in); got != c.want {
			t.Errorf("NormalizeSqft(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

// ── Pricing ────────────────────────────────────────────────────────────────

func TestEstimateCleaning_DeepClean2000(t *testing.T) {
	r := estimate.DefaultRates()
	got := r.EstimateCleaning(estimate.Intake{
		"sqft":    "2000",
		"service": "Deep Clean",
		"beds":    "3",
		"baths":   "2",
	})

	// 2000 sqft × 0.24 (deep = base 0.20 × 1.20); 3 beds / 2 baths add nothing.
	if got.Price != 480 {
		t.Errorf("price = %d, want 480", got.Price)
	}
	// 2000/700 × 1.35 = 3.857 → 4.0 solo hours, one cleaner.
	if got.SoloHours != 4.0 {
		t.Errorf("soloHours = %v, want 4.0", got.SoloHours)
	}
	if got.Crew != 1 {
		t.Errorf("crew = %d, want 1", got.Crew)
	}
	if got.TeamHours != 4.0 {
		t.Errorf("teamHours = %v, want 4.0", got.TeamHours)
	}
}

func TestEstimateCleaning_FrequencyRates(t *testing.T) {
	r := estimate.DefaultRates()
	cases := []struct {
		frequency string
		want      int
	}{
		{"Weekly", 140},
		{"Biweekly", 160},
		{"Monthly", 180},
		{"One-time", 200},
		{"", 200},
	}
	for _, c := range cases {
		got := r.EstimateCleaning(estimate.Intake{
			"sqft":      "1000",
			"service":   "Standard Cleaning",
			"frequency": c.frequency,
		})
		if got.Price != c.want {
			t.Errorf("frequency %q: price = %d, want %d", c.frequency, got.Price, c.want)
		}
	}
}

func TestEstimateCleaning_StructuralFees(t *testing.T) {
	r := estimate.DefaultRates()
	got := r.EstimateCleaning(estimate.Intake{
		"sqft":        "1000",
		"service":     "Standard Cleaning",
		"beds":        "5",
		"baths":       "4",
		"other_rooms": "2",
		"stories":     "2",
		"pets":        "Yes",
	})

	// 200 base + 2×25 beds + 2×35 baths + 2×20 rooms + 25 story + 30 pets.
	if got.Price != 415 {
		t.Errorf("price = %d, want 415", got.Price)
	}
}

func TestEstimateCleaning_AddonAccumulation(t *testing.T) {
	r := estimate.DefaultRates()
	base := r.EstimateCleaning(estimate.Intake{"sqft": "700", "service": "Standard"})
	both := r.EstimateCleaning(estimate.Intake{
		"sqft":    "700",
		"service": "Standard",
		"addons":  "please do the oven and fridge",
	})

	if diff := both.Price - base.Price; diff != 70 {
		t.Errorf("oven+fridge surcharge = %d, want 70 (35 each)", diff)
	}
	if diff := both.SoloHours - base.SoloHours; diff != 1.0 {
		t.Errorf("oven+fridge hour bump = %v, want 1.0", diff)
	}

	// "windows" contains the keyword "window" too — both fees apply.
	overlap := r.EstimateCleaning(estimate.Intake{
		"sqft":    "700",
		"service": "Standard",
		"addons":  "interior windows",
	})
	if diff := overlap.Price - base.Price; diff != 100 {
		t.Errorf("windows surcharge = %d, want 100 (overlapping keywords both count)", diff)
	}
}

// ── Crew sizing ────────────────────────────────────────────────────────────

func TestEstimateCleaning_CrewSteps(t *testing.T) {
	r := estimate.DefaultRates()
	cases := []struct {
		sqft     string
		wantSolo float64
		wantCrew int
		wantTeam float64
	}{
		{"2800", 4.0, 1, 4.0},
		{"3500", 5.0, 2, 2.5},
		{"5600", 8.0, 3, 2.5},
		{"7700", 11.0, 4, 3.0},
	}
	for _, c := range cases {
		got := r.EstimateCleaning(estimate.Intake{"sqft": c.sqft, "service": "Standard"})
		if got.SoloHours != c.wantSolo || got.Crew != c.wantCrew || got.TeamHours != c.wantTeam {
			t.Errorf("sqft %s: solo=%v crew=%d team=%v, want solo=%v crew=%d team=%v",
				c.sqft, got.SoloHours, got.Crew, got.TeamHours, c.wantSolo, c.wantCrew, c.wantTeam)
		}
	}
}

// ── Degradation and determinism ────────────────────────────────────────────

func TestEstimateCleaning_MissingSqft(t *testing.T) {
	r := estimate.DefaultRates()
	got := r.EstimateCleaning(estimate.Intake{"service": "Deep Clean"})
	if got.Price != 0 || got.SoloHours != 0 || got.TeamHours != 0 {
		t.Errorf("missing sqft should yield a zero estimate, got %+v", got)
	}
	if got.Crew != 1 {
		t.Errorf("crew = %d, want 1", got.Crew)
	}
}

func TestEstimateCleaning_Deterministic(t *testing.T) {
	r := estimate.DefaultRates()
	in := estimate.Intake{
		"sqft": "3100", "service": "Move-Out Clean", "beds": "4",
		"baths": "3", "stories": "2", "addons": "baseboards, laundry",
	}
	first := r.EstimateCleaning(in)
	second := r.EstimateCleaning(in)
	if first != second {
		t.Errorf("estimator is not deterministic: %+v vs %+v", first, second)
	}
	if first.TeamHours > first.SoloHours {
		t.Errorf("teamHours %v exceeds soloHours %v", first.TeamHours, first.SoloHours)
	}
	if first.Price < 0 {
		t.Errorf("price %d is negative", first.Price)
	}
}
