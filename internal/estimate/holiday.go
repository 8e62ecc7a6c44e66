package estimate

import (
	"math"
	"strings"
)

// treeHours returns the install hours for count trees: a base for the
// tallest tree plus an increment per additional tree, bumped by styling
// level and ribbon work.
func (h HolidayRates) treeHours(count float64, tallest, style, ribbon string) float64 {
	trees := math.Max(0, count)
	if trees == 0 {
		return 0
	}

	tier, ok := h.Trees[tallest]
	if !ok {
		tier = h.Trees[h.DefaultTier]
	}

	hours := tier.Base + math.Max(0, trees-1)*tier.Additional

	styled := strings.ToLower(style)
	switch {
	case strings.Contains(styled, "full design"):
		hours += 1.4
	case strings.Contains(styled, "refresh"):
		hours += 0.6
	}

	if ribbon == "Yes" {
		hours += 0.4 * trees
	}

	return hours
}

// EstimateHoliday builds install hours from per-element terms, skewed by an
// occasion multiplier table, then bills them at the holiday hourly rate.
// This is the one service where price is hours × rate by design — holiday
// work carries no flat market quote.
func (r *Rates) EstimateHoliday(in Intake) Estimate {
	h := r.Holiday

	occasion := strings.ToLower(in.Str("holiday", "christmas"))
	occ := h.Occasions[occasion] // zero value means no skew

	solo := h.treeHours(
		in.Num("trees", 0),
		in.Str("tallest", h.DefaultTier),
		in.Str("tree_style", "Ready: ornaments & lights on hand"),
		in.Str("tree_ribbon", "No"),
	)

	solo += math.Max(0, in.Num("wreaths", 0)) * h.PerWreath * mult(occ.Wreath)
	solo += math.Max(0, in.Num("garland_sections", 0)) * h.PerGarland * mult(occ.Garland)
	solo += math.Max(0, in.Num("stair_sections", 0)) * h.PerStairs * mult(occ.Stairs)
	if in.Str("mantle", "No") == "Yes" {
		solo += h.PerMantle * mult(occ.Mantle)
	}
	solo += math.Max(0, in.Num("tablescapes", 0)) * h.PerTablescape * mult(occ.Tablescape)

	storage := strings.ToLower(in.Str("storage", "Garage/closet (easy)"))
	switch {
	case strings.Contains(storage, "attic"):
		solo += 0.5
	case strings.Contains(storage, "offsite"):
		solo += 1.0
	}

	tripsStr := in.Str("shopping_trips", "0")
	trips := in.Num("shopping_trips", 0)
	if tripsStr == "3+" {
		trips = 3
	}
	solo += math.Max(0, trips)

	solo *= mult(occ.Overall)

	// Half-hour setup/walkthrough buffer, job minimum, quarter-hour grain.
	solo = roundQuarter(math.Max(h.MinHours, solo+0.5))
	teamHours := roundQuarter(solo / 2)

	est := Estimate{
		Price:     int(math.Round(float64(h.Hourly) * solo)),
		SoloHours: solo,
		TeamHours: teamHours,
		Crew:      2,
	}

	if in.Str("teardown", "No") == "Yes" {
		est.TeardownHours = roundQuarter(math.Max(1, solo*h.TeardownFactor))
		est.TeardownPrice = int(math.Round(float64(h.Hourly) * est.TeardownHours))
	}

	return est
}
