package request

import (
	"time"

	"interview-scheduler/internal/domain/interval"
)

type CheckConflictsRequest struct {
	Participants    []string  `json:"participants" binding:"required"`
	Start           time.Time `json:"start" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
}

func (r CheckConflictsRequest) Proposed() (interval.Interval, error) {
	return interval.FromStartDuration(r.Start, time.Duration(r.DurationMinutes)*time.Minute)
}
