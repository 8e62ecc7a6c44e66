package estimate

import (
	"fmt"
	"strings"
)

// HoursLabel buckets a team-hour figure into the size label shown to
// clients. No dollar amounts appear here on purpose.
func HoursLabel(teamHours float64) string {
	switch {
	case teamHours <= 2.5:
		return "Small (≈2–2.5 hr)"
	case teamHours <= 4:
		return "Medium (≈3–4 hr)"
	case teamHours <= 6:
		return "Large (≈5–6 hr)"
	}
	return "XL (6.5+ hr)"
}

// Hint returns the client-facing size hint for a service type and intake.
func Hint(svc ServiceType, in Intake, teamHours float64) string {
	switch svc {
	case ServiceCleaning:
		service := in.Str("service", "Cleaning")
		return fmt.Sprintf("%s — %s", service, HoursLabel(teamHours))
	case ServiceOrganizing:
		area := in.Str("org_area", "Space")
		size := in.Str("org_size", "Medium")
		return fmt.Sprintf("%s Organizing — %s, %s", area, size, HoursLabel(teamHours))
	case ServiceDecor:
		room := in.Str("decor_room", in.Str("room", "Room"))
		scope := in.Str("decor_scope", "Refresh")
		return fmt.Sprintf("%s — %s (%s)", room, scope, HoursLabel(teamHours))
	case ServiceHoliday:
		return fmt.Sprintf("%s — %s", capitalize(in.Str("holiday", "Christmas")), HoursLabel(teamHours))
	}
	return HoursLabel(teamHours)
}

// DefaultSummary builds the board-facing one-liner used when the caller
// supplies none.
func DefaultSummary(svc ServiceType, in Intake, est Estimate) string {
	label := HoursLabel(est.TeamHours)
	switch svc {
	case ServiceCleaning:
		service := in.Str("service", "cleaning")
		prefix := ""
		if beds, ok := in["beds"]; ok {
			prefix = beds + " bed / "
		}
		if baths, ok := in["baths"]; ok {
			prefix += baths + " bath"
		}
		return fmt.Sprintf("%s — %s · est %s", prefix, service, label)
	case ServiceOrganizing:
		area := in.Str("org_area", in.Str("area", "Organizing"))
		return fmt.Sprintf("%s — %s · est %s", area, in.Str("org_size", "Medium"), label)
	case ServiceDecor:
		room := in.Str("room", "Decor")
		return fmt.Sprintf("%s — %s · est %s", room, in.Str("decor_scope", "refresh"), label)
	case ServiceHoliday:
		occ := ""
		if o := in.Str("occasion", ""); o != "" {
			occ = fmt.Sprintf(" (%s)", o)
		}
		return fmt.Sprintf("Holiday/Event%s — est %s", occ, label)
	}
	return "Service"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
