package usecase

import (
	"context"
	"fmt"
	"time"

	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/pkg/errs"
)

// ConflictSource answers one question: given a participant identity and
// a time window, which commitments overlap that window?
type ConflictSource interface {
	Type() conflict.Source
	FindConflicts(ctx context.Context, participant string, window interval.Interval, excludeID string) ([]conflict.Conflict, error)
}

// LeaveSource reports approved time-off as hard conflicts.
type LeaveSource struct {
	store LeaveStore
}

func NewLeaveSource(store LeaveStore) *LeaveSource {
	return &LeaveSource{store: store}
}

func (s *LeaveSource) Type() conflict.Source {
	return conflict.SourceLeave
}

func (s *LeaveSource) FindConflicts(ctx context.Context, participant string, window interval.Interval, _ string) ([]conflict.Conflict, error) {
	records, err := s.store.ApprovedLeave(ctx, participant)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read approved leave")
	}

	var conflicts []conflict.Conflict
	for _, rec := range records {
		iv, ok := conflict.WithinWindow(rec.Start, rec.End, window)
		if !ok {
			continue
		}
		conflicts = append(conflicts, conflict.Conflict{
			Source:       conflict.SourceLeave,
			Title:        "Approved leave",
			Interval:     iv,
			Participants: []string{participant},
			Severity:     conflict.SeverityHard,
		})
	}
	return conflicts, nil
}

// BookingSource reports already-scheduled interviews as hard conflicts.
// excludeID skips the booking being re-checked during a reschedule.
type BookingSource struct {
	store BookingStore
}

func NewBookingSource(store BookingStore) *BookingSource {
	return &BookingSource{store: store}
}

func (s *BookingSource) Type() conflict.Source {
	return conflict.SourceInternalBooking
}

func (s *BookingSource) FindConflicts(ctx context.Context, participant string, window interval.Interval, excludeID string) ([]conflict.Conflict, error) {
	records, err := s.store.ActiveBookingsFor(ctx, participant)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read active bookings")
	}

	var conflicts []conflict.Conflict
	for _, rec := range records {
		if excludeID != "" && rec.ID.String() == excludeID {
			continue
		}
		end := rec.Start.Add(minutes(rec.DurationMinutes))
		iv, ok := conflict.WithinWindow(rec.Start, end, window)
		if !ok {
			continue
		}
		conflicts = append(conflicts, conflict.Conflict{
			Source:       conflict.SourceInternalBooking,
			Title:        fmt.Sprintf("Interview: %s", rec.SubjectTitle),
			Interval:     iv,
			Participants: []string{participant},
			Severity:     conflict.SeverityHard,
		})
	}
	return conflicts, nil
}

// ExternalSource reports remote calendar events. Free/transparent
// events and events the participant declined are ignored; a tentative
// response downgrades the conflict to soft.
type ExternalSource struct {
	calendar ExternalCalendar
}

func NewExternalSource(calendar ExternalCalendar) *ExternalSource {
	return &ExternalSource{calendar: calendar}
}

func (s *ExternalSource) Type() conflict.Source {
	return conflict.SourceExternalCalendar
}

func (s *ExternalSource) FindConflicts(ctx context.Context, participant string, window interval.Interval, _ string) ([]conflict.Conflict, error) {
	events, err := s.calendar.ListEvents(ctx, participant, window)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list external calendar events")
	}

	var conflicts []conflict.Conflict
	for _, ev := range events {
		if ev.Transparency == TransparencyTransparent {
			continue
		}
		response := ev.AttendeeResponses[participant]
		if response == ResponseDeclined {
			continue
		}

		iv, ok := conflict.WithinWindow(ev.Start, ev.End, window)
		if !ok {
			continue
		}

		severity := conflict.SeverityHard
		if response == ResponseTentative {
			severity = conflict.SeveritySoft
		}

		title := ev.Title
		if title == "" {
			title = "Calendar event"
		}
		conflicts = append(conflicts, conflict.Conflict{
			Source:       conflict.SourceExternalCalendar,
			Title:        title,
			Interval:     iv,
			Participants: []string{participant},
			Severity:     severity,
		})
	}
	return conflicts, nil
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
