package request

import (
	"time"

	"interview-scheduler/internal/domain/booking"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/usecase"
)

type CreateInterviewRequest struct {
	Interviewers    []string  `json:"interviewers" binding:"required"`
	Candidate       string    `json:"candidate" binding:"required"`
	Start           time.Time `json:"start" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	Subject         string    `json:"subject"`
	Location        string    `json:"location"`
	MeetingLink     string    `json:"meeting_link"`
	ForceOverride   bool      `json:"force_override"`
}

func (r CreateInterviewRequest) ToDomain() (booking.Request, error) {
	proposed, err := interval.FromStartDuration(r.Start, time.Duration(r.DurationMinutes)*time.Minute)
	if err != nil {
		return booking.Request{}, err
	}
	return booking.Request{
		Interviewers:  r.Interviewers,
		Candidate:     r.Candidate,
		Proposed:      proposed,
		Subject:       r.Subject,
		Location:      r.Location,
		MeetingLink:   r.MeetingLink,
		ForceOverride: r.ForceOverride,
	}, nil
}

type RescheduleInterviewRequest struct {
	Start           *time.Time `json:"start,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Location        *string    `json:"location,omitempty"`
	MeetingLink     *string    `json:"meeting_link,omitempty"`
	ForceOverride   bool       `json:"force_override"`
}

func (r RescheduleInterviewRequest) ToPatch() usecase.ReschedulePatch {
	return usecase.ReschedulePatch{
		Start:           r.Start,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		MeetingLink:     r.MeetingLink,
		ForceOverride:   r.ForceOverride,
	}
}
