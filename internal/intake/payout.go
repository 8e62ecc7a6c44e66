package intake

import "math"

// SplitPayout divides a client-facing flat rate among contractor slots.
//
// The company keep is rounded off the top; the remaining pool is split by
// floor division with the remainder handed out one currency unit at a time
// to the lowest-numbered slots. The returned pays always sum to exactly
// flatRate − keep, and no two slots differ by more than one unit.
func SplitPayout(flatRate, contractorsNeeded, companyCutPct int) (keep int, pays []int) {
	n := contractorsNeeded
	if n < 1 {
		n = 1
	}

	keep = int(math.Round(float64(flatRate) * float64(companyCutPct) / 100))
	pool := flatRate - keep
	if pool < 0 {
		pool = 0
	}

	base := pool / n
	remainder := pool % n

	pays = make([]int, n)
	for i := range pays {
		pays[i] = base
		if i < remainder {
			pays[i]++
		}
	}
	return keep, pays
}
