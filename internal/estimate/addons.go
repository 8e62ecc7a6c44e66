package estimate

import "strings"

// AddonSurcharge sums the fee of every keyword whose text appears in the
// free-form add-ons field (case-insensitive substring match). Overlapping
// keywords are not deduplicated: "fridge" and "refrigerator" both contribute
// when both substrings are present.
func AddonSurcharge(text string, fees map[string]int) int {
	lower := strings.ToLower(text)
	total := 0
	for keyword, fee := range fees {
		if strings.Contains(lower, keyword) {
			total += fee
		}
	}
	return total
}

// AddonHours is AddonSurcharge for hour bumps instead of dollar fees.
func AddonHours(text string, bumps map[string]float64) float64 {
	lower := strings.ToLower(text)
	total := 0.0
	for keyword, bump := range bumps {
		if strings.Contains(lower, keyword) {
			total += bump
		}
	}
	return total
}
