package usecase

import (
	"context"
	"time"

	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"
)

// Slot search bounds: up to 7 calendar days from the preferred start's
// day inclusive, weekdays only, one-hour slots starting 09:00..16:00
// so the last slot ends at 17:00.
const (
	searchDays    = 7
	firstSlotHour = 9
	lastSlotHour  = 16
)

// FindAvailableSlots greedily probes candidate slots nearest the
// preferred start first (day-then-hour ascending) and keeps the ones
// with neither conflicts nor advisory warnings.
func (c *checkerImpl) FindAvailableSlots(ctx context.Context, participants []string, preferredStart time.Time, maxSuggestions int) ([]interval.Interval, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if maxSuggestions <= 0 {
		maxSuggestions = c.cfg.MaxSuggestions
	}
	return c.findSlots(ctx, participants, preferredStart, maxSuggestions, ""), nil
}

func (c *checkerImpl) findSlots(ctx context.Context, participants []string, preferredStart time.Time, maxSuggestions int, excludeID string) []interval.Interval {
	day := time.Date(
		preferredStart.Year(), preferredStart.Month(), preferredStart.Day(),
		0, 0, 0, 0, preferredStart.Location(),
	)

	var found []interval.Interval
	for offset := 0; offset < searchDays; offset++ {
		candidate := day.AddDate(0, 0, offset)
		if candidate.Weekday() == time.Saturday || candidate.Weekday() == time.Sunday {
			continue
		}

		for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
			if ctx.Err() != nil {
				return found
			}

			start := time.Date(
				candidate.Year(), candidate.Month(), candidate.Day(),
				hour, 0, 0, 0, candidate.Location(),
			)
			slot, err := interval.FromStartDuration(start, time.Hour)
			if err != nil {
				continue
			}
			if c.slotIsFree(ctx, participants, slot, excludeID) {
				found = append(found, slot)
				if len(found) >= maxSuggestions {
					return found
				}
			}
		}
	}
	return found
}

// slotIsFree probes one candidate through the full aggregation path; a
// slot qualifies only when the probe yields no conflicts and no
// warnings at all, so a lunch-hour slot or one behind a degraded source
// is never suggested.
func (c *checkerImpl) slotIsFree(ctx context.Context, participants []string, slot interval.Interval, excludeID string) bool {
	builder := c.gather(ctx, participants, slot, excludeID)
	builder.AddWarnings(conflict.AdvisoryWarnings(slot))

	report := builder.Build()
	return !report.HasConflicts && len(report.Warnings) == 0
}
