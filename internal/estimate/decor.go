package estimate

import (
	"math"
	"strings"
)

// EstimateDecor prices decor/staging per room with add-on surcharges. Hours
// scale a per-room base by scope and staging occupancy, then add sourcing,
// install, shopping, and access terms. Decor work is always quoted for a
// two-stylist crew.
func (r *Rates) EstimateDecor(in Intake) Estimate {
	d := r.Decor

	count := math.Max(1, in.Num("count", 1))

	priceRoom := in.Str("room", "Living Room")
	base, ok := d.RoomPrices[priceRoom]
	if !ok {
		base = d.DefaultRoomPrice
	}
	price := int(math.Round(float64(base)*count + float64(AddonSurcharge(in.Str("addons", ""), d.AddonPrices))))

	hoursRoom := in.Str("decor_room", "Living Room")
	perRoom, ok := d.RoomHours[hoursRoom]
	if !ok {
		perRoom = d.DefaultRoomHours
	}
	solo := perRoom * count

	switch in.Str("decor_scope", "Light refresh (styling)") {
	case "Refresh + small sourcing":
		solo *= 1.3
	case "Full design (sourcing + install)":
		solo *= 1.8
	}

	decorType := in.Str("decor_type", "Interior Decorating (refresh)")
	if strings.Contains(decorType, "Staging — Occupied") {
		solo *= 1.2
	}
	if strings.Contains(decorType, "Staging — Vacant") {
		solo *= 1.6
	}

	switch in.Str("decor_furniture", "No") {
	case "Yes — a few pieces":
		solo += 1.0
	case "Yes — multiple pieces":
		solo += 2.0
	}

	switch in.Str("decor_install", "Light (art, textiles)") {
	case "Moderate (art + small furniture)":
		solo += 1.0
	case "Heavy (multiple furniture + window treatments)":
		solo += 2.0
	}

	if trips := in.Num("decor_shopping", 0); trips > 0 {
		solo += trips
	}

	switch in.Str("decor_access", "Easy") {
	case "Stairs / elevator":
		solo += 0.5
	case "HOA / tight timing":
		solo += 0.75
	}

	solo = roundHalf(solo)

	return Estimate{
		Price:     price,
		SoloHours: solo,
		TeamHours: roundHalf(solo / 2),
		Crew:      2,
	}
}
