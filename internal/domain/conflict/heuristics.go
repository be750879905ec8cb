package conflict

import (
	"time"

	"interview-scheduler/internal/domain/interval"
)

// Advisory strings surfaced by the off-hours heuristics. Warnings only;
// they never block a booking and never appear as conflicts.
const (
	WarnLunchHours    = "scheduled during typical lunch hours (12pm-1pm)"
	WarnBeforeHours   = "scheduled before typical business hours (before 9am)"
	WarnAfterHours    = "scheduled after typical business hours (after 5pm)"
	WarnFridayPM      = "scheduled on Friday afternoon"
	WarnMondayMorning = "scheduled early Monday morning"
)

// AdvisoryWarnings evaluates a proposed interval against business-hours
// conventions. Pure and participant-agnostic; each rule fires
// independently, so several warnings may apply to one interval.
func AdvisoryWarnings(proposed interval.Interval) []string {
	var warnings []string

	start := proposed.Start()
	hour := start.Hour()

	if hour == 12 || straddlesNoon(proposed) {
		warnings = append(warnings, WarnLunchHours)
	}
	if hour < 9 {
		warnings = append(warnings, WarnBeforeHours)
	}
	if hour >= 17 {
		warnings = append(warnings, WarnAfterHours)
	}
	if start.Weekday() == time.Friday && hour >= 15 {
		warnings = append(warnings, WarnFridayPM)
	}
	if start.Weekday() == time.Monday && hour < 10 {
		warnings = append(warnings, WarnMondayMorning)
	}

	return warnings
}

func straddlesNoon(iv interval.Interval) bool {
	start := iv.Start()
	noon := time.Date(start.Year(), start.Month(), start.Day(), 12, 0, 0, 0, start.Location())
	return start.Before(noon) && iv.End().After(noon)
}
