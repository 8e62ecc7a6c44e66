package estimate

import (
	"math"
	"strings"
)

// sqftRangeMidpoints maps legacy dropdown range labels to approximate
// midpoints. New intakes submit a plain number; old saved links still carry
// the range strings (both en-dash and hyphen spellings).
var sqftRangeMidpoints = map[string]int{
	"<1000":     800,
	"1000–2000": 1500,
	"1000-2000": 1500,
	"2000–3000": 2500,
	"2000-3000": 2500,
	"3000–4000": 3500,
	"3000-4000": 3500,
	"4000+":     4200,
}

// NormalizeSqft interprets the sqft field either as a typed number ("2300")
// or as a legacy range label ("2000–3000"). Unrecognized non-empty input
// falls back to 1500; empty input means no size was given.
func NormalizeSqft(value string) int {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return 0
	}
	if isDigits(raw) {
		n := 0
		for _, c := range raw {
			n = n*10 + int(c-'0')
		}
		return n
	}
	if mid, ok := sqftRangeMidpoints[raw]; ok {
		return mid
	}
	return 1500
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// baseRate picks the per-sqft rate for the cleaning subtype. Standard
// recurring service earns a frequency discount; everything else is flat.
func (c CleaningRates) baseRate(service, frequency string) float64 {
	switch {
	case strings.Contains(service, "standard"):
		switch {
		case strings.Contains(frequency, "weekly") && !strings.Contains(frequency, "biweekly"):
			return c.StandardWeekly
		case strings.Contains(frequency, "biweekly"):
			return c.StandardBiweekly
		case strings.Contains(frequency, "monthly"):
			return c.StandardMonthly
		default:
			return c.StandardOneTime
		}
	case strings.Contains(service, "initial"):
		return c.Initial
	case strings.Contains(service, "deep"):
		return c.Deep
	case strings.Contains(service, "move"):
		return c.Move
	case strings.Contains(service, "airbnb"):
		return c.Airbnb
	}
	return c.Default
}

// EstimateCleaning prices a cleaning intake per square foot and sizes the
// crew from the solo-hour estimate.
//
// Without a usable square footage the whole estimate degrades to zero — the
// form enforces the field, so this only happens on hand-built requests.
func (r *Rates) EstimateCleaning(in Intake) Estimate {
	c := r.Cleaning

	sqft := NormalizeSqft(in["sqft"])
	service := strings.ToLower(in.Str("service", ""))
	frequency := strings.ToLower(in.Str("frequency", ""))
	beds := in.Num("beds", 0)
	baths := in.Num("baths", 0)
	otherRooms := in.Num("other_rooms", 0)
	twoStory := in.Str("stories", "1") == "2"
	pets := in.Str("pets", "No") == "Yes"
	addons := in.Str("addons", "")

	if sqft <= 0 {
		return Estimate{Crew: 1}
	}

	// Price: per-sqft base plus flat structural fees and add-on surcharges.
	price := float64(sqft) * c.baseRate(service, frequency)
	price += math.Max(0, beds-3) * float64(c.ExtraBedFee)
	price += math.Max(0, baths-2) * float64(c.ExtraBathFee)
	price += math.Max(0, otherRooms) * float64(c.OtherRoomFee)
	if twoStory {
		price += float64(c.TwoStoryFee)
	}
	if pets {
		price += float64(c.PetFee)
	}
	price += float64(AddonSurcharge(addons, c.AddonPrices))

	// Hours: base solo speed adjusted by the same structural factors, then
	// scaled by service intensity.
	solo := float64(sqft) / c.SqftPerHour
	solo += math.Max(0, beds-3) * 0.25
	solo += math.Max(0, baths-2) * 0.40
	if twoStory {
		solo += 0.25
	}
	solo += AddonHours(addons, c.AddonHours)

	if strings.Contains(service, "initial") {
		solo *= 1.15
	}
	if strings.Contains(service, "deep") {
		solo *= 1.35
	}
	if strings.Contains(service, "move") {
		solo *= 1.6
	}
	if strings.Contains(service, "airbnb") {
		solo *= 0.9 // usually lighter than a full deep clean
	}

	solo = roundHalf(solo)

	// Suggest cleaners so nobody is on site all day.
	crew := 1
	switch {
	case solo > 10:
		crew = 4
	case solo > 7:
		crew = 3
	case solo > 4:
		crew = 2
	}

	return Estimate{
		Price:     int(math.Round(price)),
		SoloHours: solo,
		TeamHours: roundHalf(solo / float64(crew)),
		Crew:      crew,
	}
}
