package estimate

import "math"

// EstimateOrganizing prices organizing as billable hours (spaces × tier
// hours, floored at the job minimum) times the hourly rate and team size,
// plus supply add-ons. The labor-hour estimate is a separate, finer model
// keyed on area and size.
func (r *Rates) EstimateOrganizing(in Intake) Estimate {
	o := r.Organizing

	spaces := math.Max(1, in.Num("spaces", 1))
	complexity := in.Str("complexity", "Moderate")
	team := math.Max(1, in.Num("team", 1))

	hoursEach, ok := o.HoursPerSpace[complexity]
	if !ok {
		hoursEach = 2
	}
	estHours := math.Max(o.MinHours, spaces*hoursEach)
	labor := estHours * float64(o.Hourly) * team
	price := int(math.Round(labor + float64(AddonSurcharge(in.Str("addons", ""), o.AddonPrices))))

	// Labor-hour model.
	area := in.Str("org_area", "Closet")
	size := in.Str("org_size", "Medium")
	solo := o.DefaultHours
	if sizes, ok := o.BaseHours[area]; ok {
		if h, ok := sizes[size]; ok {
			solo = h
		}
	}

	switch in.Str("org_clutter", "Moderate") {
	case "Light":
		solo *= 0.9
	case "Heavy":
		solo *= 1.35
	}

	switch in.Str("org_decision_speed", "Average") {
	case "Fast":
		solo *= 0.9
	case "Slow":
		solo *= 1.25
	}

	switch in.Str("org_volume", "Medium") {
	case "Medium":
		solo += 0.5
	case "High":
		solo += 1.0
	}

	switch in.Str("org_containers", "None") {
	case "Some (up to 10)":
		solo += 0.5
	case "Many (10+)":
		solo += 1.0
	}

	switch in.Str("org_access", "Easy (ground floor)") {
	case "Stairs":
		solo += 0.5
	case "Tight spaces / HOA constraints":
		solo += 0.75
	}

	switch in.Str("org_haul", "None") {
	case "1–3 bags/boxes":
		solo += 0.5
	case "4–8 bags/boxes":
		solo += 1.0
	case "Carload+":
		solo += 1.5
	}

	// The hour model assumes a two-organizer crew when none was given even
	// though billing defaults to one.
	crew := int(math.Max(1, in.Num("team", 2)))
	solo = roundHalf(solo)

	return Estimate{
		Price:     price,
		SoloHours: solo,
		TeamHours: roundHalf(solo / float64(crew)),
		Crew:      crew,
	}
}
