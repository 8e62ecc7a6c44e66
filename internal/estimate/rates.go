// Canonical rate tables. The historical front-end carried several divergent
// inline copies of these constants; this file is the single versioned source
// of truth. A YAML file can override it at startup (RATES_FILE).
package estimate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rates bundles every tunable pricing constant, keyed by service type.
type Rates struct {
	Version    string          `yaml:"version"`
	Cleaning   CleaningRates   `yaml:"cleaning"`
	Organizing OrganizingRates `yaml:"organizing"`
	Decor      DecorRates      `yaml:"decor"`
	Holiday    HolidayRates    `yaml:"holiday"`
}

// CleaningRates prices cleaning per square foot, by service subtype and
// recurring frequency, with flat structural fees on top.
type CleaningRates struct {
	StandardWeekly   float64 `yaml:"standardWeekly"`
	StandardBiweekly float64 `yaml:"standardBiweekly"`
	StandardMonthly  float64 `yaml:"standardMonthly"`
	StandardOneTime  float64 `yaml:"standardOneTime"`
	Initial          float64 `yaml:"initial"`
	Deep             float64 `yaml:"deep"`
	Move             float64 `yaml:"move"`
	Airbnb           float64 `yaml:"airbnb"`
	Default          float64 `yaml:"default"`

	ExtraBedFee  int `yaml:"extraBedFee"`  // per bedroom beyond 3
	ExtraBathFee int `yaml:"extraBathFee"` // per bathroom beyond 2
	OtherRoomFee int `yaml:"otherRoomFee"`
	TwoStoryFee  int `yaml:"twoStoryFee"`
	PetFee       int `yaml:"petFee"`

	AddonPrices map[string]int     `yaml:"addonPrices"`
	AddonHours  map[string]float64 `yaml:"addonHours"`

	SqftPerHour float64 `yaml:"sqftPerHour"` // solo speed for a detailed clean
}

// OrganizingRates prices organizing hourly with a job minimum.
type OrganizingRates struct {
	Hourly        int                           `yaml:"hourly"`
	MinHours      float64                       `yaml:"minHours"`
	HoursPerSpace map[string]float64            `yaml:"hoursPerSpace"` // by complexity tier
	AddonPrices   map[string]int                `yaml:"addonPrices"`
	BaseHours     map[string]map[string]float64 `yaml:"baseHours"` // area -> size -> hours
	DefaultHours  float64                       `yaml:"defaultHours"`
}

// DecorRates prices decor/staging per room.
type DecorRates struct {
	RoomPrices       map[string]int     `yaml:"roomPrices"`
	DefaultRoomPrice int                `yaml:"defaultRoomPrice"`
	AddonPrices      map[string]int     `yaml:"addonPrices"`
	RoomHours        map[string]float64 `yaml:"roomHours"`
	DefaultRoomHours float64            `yaml:"defaultRoomHours"`
}

// TreeHours holds per-tree install hours for a tallest-height tier.
type TreeHours struct {
	Base       float64 `yaml:"base"`       // first tree
	Additional float64 `yaml:"additional"` // each tree after the first
}

// OccasionMultipliers skews element hours per occasion. A zero value means
// "unset" and is treated as 1.0.
type OccasionMultipliers struct {
	Overall    float64 `yaml:"overall"`
	Wreath     float64 `yaml:"wreath"`
	Garland    float64 `yaml:"garland"`
	Tablescape float64 `yaml:"tablescape"`
	Mantle     float64 `yaml:"mantle"`
	Stairs     float64 `yaml:"stairs"`
}

// HolidayRates prices holiday decorating hourly, built up from per-element
// install hours.
type HolidayRates struct {
	Hourly   int     `yaml:"hourly"`
	MinHours float64 `yaml:"minHours"`

	Trees       map[string]TreeHours `yaml:"trees"` // by tallest-height tier
	DefaultTier string               `yaml:"defaultTier"`

	PerWreath     float64 `yaml:"perWreath"`
	PerGarland    float64 `yaml:"perGarland"`
	PerStairs     float64 `yaml:"perStairs"`
	PerMantle     float64 `yaml:"perMantle"`
	PerTablescape float64 `yaml:"perTablescape"`

	Occasions map[string]OccasionMultipliers `yaml:"occasions"`

	TeardownFactor float64 `yaml:"teardownFactor"` // share of install hours
}

// DefaultRates returns the built-in canonical tables.
func DefaultRates() *Rates {
	return &Rates{
		Version: "2025-08",
		Cleaning: CleaningRates{
			StandardWeekly:   0.14,
			StandardBiweekly: 0.16,
			StandardMonthly:  0.18,
			StandardOneTime:  0.20,
			Initial:          0.20,
			Deep:             0.24,
			Move:             0.32,
			Airbnb:           0.25,
			Default:          0.20,

			ExtraBedFee:  25,
			ExtraBathFee: 35,
			OtherRoomFee: 20,
			TwoStoryFee:  25,
			PetFee:       30,

			// Substring keywords matched against the free-text add-ons
			// field. Overlapping synonyms (fridge/refrigerator,
			// windows/window) each count when both substrings appear.
			AddonPrices: map[string]int{
				"oven":         35,
				"fridge":       35,
				"refrigerator": 35,
				"windows":      50,
				"window":       50,
				"baseboards":   45,
				"laundry":      30,
			},
			AddonHours: map[string]float64{
				"oven":         0.5,
				"fridge":       0.5,
				"refrigerator": 0.5,
				"windows":      1.0,
				"window":       1.0,
				"baseboards":   1.0,
				"laundry":      0.75,
			},

			SqftPerHour: 700,
		},
		Organizing: OrganizingRates{
			Hourly:   65,
			MinHours: 3,
			HoursPerSpace: map[string]float64{
				"Light":    1,
				"Moderate": 2,
				"Heavy":    3,
			},
			AddonPrices: map[string]int{
				"bins":        25,
				"labels":      20,
				"bins/labels": 40,
			},
			BaseHours: map[string]map[string]float64{
				"Closet":                  {"Small": 2, "Medium": 3, "Large": 4},
				"Pantry":                  {"Small": 2, "Medium": 3, "Large": 4},
				"Kitchen":                 {"Small": 3, "Medium": 4.5, "Large": 6},
				"Bedroom":                 {"Small": 2.5, "Medium": 3.5, "Large": 5},
				"Bathroom":                {"Small": 1.5, "Medium": 2.5, "Large": 3.5},
				"Garage":                  {"Small": 3, "Medium": 5, "Large": 7},
				"Laundry Room":            {"Small": 2, "Medium": 3, "Large": 4},
				"Office":                  {"Small": 2.5, "Medium": 4, "Large": 5.5},
				"Playroom":                {"Small": 2.5, "Medium": 4, "Large": 5.5},
				"Whole Home (multi-area)": {"Small": 6, "Medium": 8, "Large": 12},
			},
			DefaultHours: 3.5,
		},
		Decor: DecorRates{
			RoomPrices: map[string]int{
				"Living Room": 500,
				"Bedroom":     400,
				"Dining Room": 450,
				"Home Office": 450,
			},
			DefaultRoomPrice: 450,
			AddonPrices: map[string]int{
				"moodboard":         75,
				"sourcing":          150,
				"shopping":          150,
				"install":           250,
				"install day":       250,
				"window treatments": 200,
				"art hanging":       100,
			},
			RoomHours: map[string]float64{
				"Living Room":    3,
				"Bedroom":        2.5,
				"Dining Room":    2.5,
				"Home Office":    2.5,
				"Kitchen / Nook": 2.5,
				"Entryway":       1.5,
				"Multiple Rooms": 3,
			},
			DefaultRoomHours: 2.5,
		},
		Holiday: HolidayRates{
			Hourly:   85,
			MinHours: 3,
			Trees: map[string]TreeHours{
				"≤6 ft":     {Base: 1.5, Additional: 1.2},
				"7–8 ft":    {Base: 2.7, Additional: 1.9},
				"9–10 ft":   {Base: 3.6, Additional: 2.5},
				"11–12+ ft": {Base: 4.6, Additional: 3.1},
			},
			DefaultTier:   "7–8 ft",
			PerWreath:     0.30,
			PerGarland:    0.50,
			PerStairs:     0.75,
			PerMantle:     0.60,
			PerTablescape: 0.40,
			Occasions: map[string]OccasionMultipliers{
				"halloween": {
					Overall: 1.05, Wreath: 1.10, Garland: 1.10,
					Tablescape: 1.10, Mantle: 1.15, Stairs: 1.05,
				},
				"thanksgiving": {Tablescape: 1.20, Mantle: 1.05},
				"valentines":   {Tablescape: 1.15, Mantle: 1.05, Garland: 0.95},
				"galentines":   {Tablescape: 1.15, Mantle: 1.05, Garland: 0.95},
				"july4":        {Wreath: 0.95, Tablescape: 1.05},
				"4th of july":  {Wreath: 0.95, Tablescape: 1.05},
				"easter":       {Tablescape: 1.15, Wreath: 1.05, Garland: 1.05},
				"other":        {Overall: 1.05},
			},
			TeardownFactor: 0.6,
		},
	}
}

// LoadRates reads a YAML rates file layered over the defaults: any field the
// file sets replaces the built-in value, everything else keeps the default.
func LoadRates(path string) (*Rates, error) {
	r := DefaultRates()
	if path == "" {
		return r, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates file: %w", err)
	}
	if err := yaml.Unmarshal(raw, r); err != nil {
		return nil, fmt.Errorf("parse rates file %s: %w", path, err)
	}
	return r, nil
}

// mult treats an unset (zero) occasion multiplier as 1.0.
func mult(m float64) float64 {
	if m == 0 {
		return 1.0
	}
	return m
}
