package estimate_test

import (
	"encoding/json"
	"testing"

	"finishingtouch/intake-service/internal/estimate"
)

func TestParseServiceType(t *testing.T) {
	cases := []struct {
		raw  string
		want estimate.ServiceType
		ok   bool
	}{
		{"cleaning", estimate.ServiceCleaning, true},
		{"Cleaning", estimate.ServiceCleaning, true},
		{"ORGANIZING", estimate.ServiceOrganizing, true},
		{"decor", estimate.ServiceDecor, true},
		{"holiday", estimate.ServiceHoliday, true},
		{"plumbing", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := estimate.ParseServiceType(c.raw)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseServiceType(%q) = %v, %v; want %v", c.raw, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseServiceType(%q) accepted, want error", c.raw)
		}
	}
}

func TestIntakeAccessors(t *testing.T) {
	in := estimate.Intake{
		"sqft":  " 2100 ",
		"beds":  "three",
		"blank": "  ",
	}
	if got := in.Str("sqft", "0"); got != "2100" {
		t.Errorf("Str trimmed = %q, want %q", got, "2100")
	}
	if got := in.Str("blank", "fallback"); got != "fallback" {
		t.Errorf("Str blank = %q, want fallback", got)
	}
	if got := in.Num("sqft", 0); got != 2100 {
		t.Errorf("Num = %v, want 2100", got)
	}
	if got := in.Num("beds", 3); got != 3 {
		t.Errorf("Num unparsable = %v, want default 3", got)
	}
	if got := in.Num("missing", 1.5); got != 1.5 {
		t.Errorf("Num missing = %v, want default 1.5", got)
	}
}

func TestIntakeUnmarshalCoercesScalars(t *testing.T) {
	var in estimate.Intake
	raw := `{"beds": 3, "sqft": 1850.5, "pets": true, "mantle": false, "notes": "fragile ornaments", "skip": null}`
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := estimate.Intake{
		"beds":   "3",
		"sqft":   "1850.5",
		"pets":   "Yes",
		"mantle": "No",
		"notes":  "fragile ornaments",
	}
	if len(in) != len(want) {
		t.Fatalf("got %d fields, want %d: %v", len(in), len(want), in)
	}
	for k, v := range want {
		if in[k] != v {
			t.Errorf("field %q = %q, want %q", k, in[k], v)
		}
	}
}

func TestEstimateDispatch(t *testing.T) {
	r := estimate.DefaultRates()
	in := estimate.Intake{"sqft": "2000", "service": "Deep Clean"}

	if got := r.Estimate(estimate.ServiceCleaning, in); got != r.EstimateCleaning(in) {
		t.Errorf("dispatch cleaning diverges: %+v", got)
	}
	if got := r.Estimate(estimate.ServiceHoliday, estimate.Intake{}); got != r.EstimateHoliday(estimate.Intake{}) {
		t.Errorf("dispatch holiday diverges: %+v", got)
	}
}

func TestHint(t *testing.T) {
	in := estimate.Intake{"service": "Deep Clean"}
	got := estimate.Hint(estimate.ServiceCleaning, in, 3.5)
	if got != "Deep Clean — Medium (≈3–4 hr)" {
		t.Errorf("hint = %q", got)
	}

	got = estimate.Hint(estimate.ServiceHoliday, estimate.Intake{"holiday": "halloween"}, 2.0)
	if got != "Halloween — Small (≈2–2.5 hr)" {
		t.Errorf("holiday hint = %q", got)
	}
}
