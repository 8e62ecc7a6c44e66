package intake_test

import (
	"testing"

	"finishingtouch/intake-service/internal/intake"
)

func TestSplitPayout_DocumentedScenario(t *testing.T) {
	keep, pays := intake.SplitPayout(100, 3, 30)

	if keep != 30 {
		t.Errorf("keep = %d, want 30", keep)
	}
	want := []int{24, 23, 23}
	if len(pays) != len(want) {
		t.Fatalf("len(pays) = %d, want %d", len(pays), len(want))
	}
	for i := range want {
		if pays[i] != want[i] {
			t.Errorf("pays[%d] = %d, want %d", i, pays[i], want[i])
		}
	}
}

func TestSplitPayout_EvenSplit(t *testing.T) {
	_, pays := intake.SplitPayout(200, 2, 30)
	// pool = 140, split cleanly.
	if pays[0] != 70 || pays[1] != 70 {
		t.Errorf("pays = %v, want [70 70]", pays)
	}
}

func TestSplitPayout_SingleSlot(t *testing.T) {
	keep, pays := intake.SplitPayout(480, 1, 30)
	if keep != 144 {
		t.Errorf("keep = %d, want 144", keep)
	}
	if len(pays) != 1 || pays[0] != 336 {
		t.Errorf("pays = %v, want [336]", pays)
	}
}

func TestSplitPayout_ZeroAndTinyRates(t *testing.T) {
	_, pays := intake.SplitPayout(0, 3, 30)
	for i, p := range pays {
		if p != 0 {
			t.Errorf("pays[%d] = %d, want 0", i, p)
		}
	}

	// Pool smaller than the slot count: one unit each until exhausted.
	_, pays = intake.SplitPayout(3, 4, 30)
	// keep = round(0.9) = 1, pool = 2.
	want := []int{1, 1, 0, 0}
	for i := range want {
		if pays[i] != want[i] {
			t.Errorf("pays[%d] = %d, want %d", i, pays[i], want[i])
		}
	}
}

func TestSplitPayout_InvalidSlotCountFloorsAtOne(t *testing.T) {
	_, pays := intake.SplitPayout(100, 0, 30)
	if len(pays) != 1 || pays[0] != 70 {
		t.Errorf("pays = %v, want [70]", pays)
	}
}

// Exhaustive small-range property check: the pool is always fully
// distributed and no two slots differ by more than one unit.
func TestSplitPayout_Properties(t *testing.T) {
	for flatRate := 0; flatRate <= 500; flatRate += 7 {
		for n := 1; n <= 6; n++ {
			keep, pays := intake.SplitPayout(flatRate, n, 30)

			sum, min, max := 0, pays[0], pays[0]
			for _, p := range pays {
				sum += p
				if p < min {
					min = p
				}
				if p > max {
					max = p
				}
			}

			if sum != flatRate-keep {
				t.Errorf("flatRate=%d n=%d: sum(pays)=%d, want %d", flatRate, n, sum, flatRate-keep)
			}
			if max-min > 1 {
				t.Errorf("flatRate=%d n=%d: pay spread %d exceeds 1 (%v)", flatRate, n, max-min, pays)
			}
			for i := 1; i < len(pays); i++ {
				if pays[i] > pays[i-1] {
					t.Errorf("flatRate=%d n=%d: remainder must favor lower slots, got %v", flatRate, n, pays)
				}
			}
		}
	}
}
