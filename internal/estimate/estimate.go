// Package estimate contains the pure pricing and labor-hour logic for the
// intake service. It is transport- and storage-agnostic: every estimator is a
// deterministic function from an Intake to an Estimate, with no I/O.
//
// Price and hours are computed independently on purpose. Price is a
// market-competitive flat quote shown to the client; hours drive internal
// crew sizing. The two must never be conflated in client-facing output
// (holiday is the one hourly-billed exception).
package estimate

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ServiceType identifies one of the four offered service families.
type ServiceType string

const (
	ServiceCleaning   ServiceType = "cleaning"
	ServiceOrganizing ServiceType = "organizing"
	ServiceDecor      ServiceType = "decor"
	ServiceHoliday    ServiceType = "holiday"
)

// ParseServiceType converts a raw string to a ServiceType, returning an
// error for unknown values. Matching is case-insensitive.
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case ServiceCleaning, ServiceOrganizing, ServiceDecor, ServiceHoliday:
		return st, nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

// Intake is the raw client-submitted form data for one service request.
// There is no fixed schema: keys depend on the service type and missing or
// non-numeric values degrade to defaults rather than failing.
type Intake map[string]string

// Str returns the trimmed value for key, or def when absent/blank.
func (in Intake) Str(key, def string) string {
	v := strings.TrimSpace(in[key])
	if v == "" {
		return def
	}
	return v
}

// Num returns the numeric value for key. Absent, blank, or unparsable
// values degrade to def.
func (in Intake) Num(key string, def float64) float64 {
	raw := strings.TrimSpace(in[key])
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// UnmarshalJSON accepts any scalar JSON value per field, coercing
// numbers and booleans to their string form so callers can post
// {"beds": 3} and {"pets": true} as written on the intake forms.
func (in *Intake) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m := make(Intake, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			m[k] = t
		case float64:
			m[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			if t {
				m[k] = "Yes"
			} else {
				m[k] = "No"
			}
		case nil:
			// absent and null read the same
		default:
			b, _ := json.Marshal(v)
			m[k] = string(b)
		}
	}
	*in = m
	return nil
}

// Estimate is the computed quote for one intake.
//
// Invariants: Price and all hour figures are non-negative, and
// TeamHours <= SoloHours.
type Estimate struct {
	Price         int     `json:"price"`
	SoloHours     float64 `json:"soloHours"`
	TeamHours     float64 `json:"teamHours"`
	Crew          int     `json:"crew"`
	TeardownHours float64 `json:"teardownHours,omitempty"`
	TeardownPrice int     `json:"teardownPrice,omitempty"`
}

// Estimate dispatches to the per-service-type estimator.
func (r *Rates) Estimate(svc ServiceType, in Intake) Estimate {
	switch svc {
	case ServiceCleaning:
		return r.EstimateCleaning(in)
	case ServiceOrganizing:
		return r.EstimateOrganizing(in)
	case ServiceDecor:
		return r.EstimateDecor(in)
	case ServiceHoliday:
		return r.EstimateHoliday(in)
	}
	return Estimate{Crew: 1}
}

// roundHalf rounds to the nearest 0.5 hour.
func roundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}

// roundQuarter rounds to the nearest 0.25 hour, floored at zero.
func roundQuarter(x float64) float64 {
	return math.Max(0, math.Round(x*4)/4)
}
