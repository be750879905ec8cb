package booking

import (
	"errors"
	"time"

	"interview-scheduler/internal/domain/interval"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("interview is already cancelled")
	ErrInvalidStatus    = errors.New("invalid interview status")
)

// Interview is the persisted booking record, the source of truth a
// calendar event is synced from.
type Interview struct {
	id              uuid.UUID
	candidate       string
	interviewers    []string
	slot            interval.Interval
	subject         string
	location        string
	meetingLink     string
	status          Status
	externalEventID string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewInterview(req Request, now time.Time) (*Interview, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &Interview{
		id:           uuid.New(),
		candidate:    req.Candidate,
		interviewers: append([]string(nil), req.Interviewers...),
		slot:         req.Proposed,
		subject:      req.Subject,
		location:     req.Location,
		meetingLink:  req.MeetingLink,
		status:       StatusScheduled,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructInterview(
	id uuid.UUID,
	candidate string,
	interviewers []string,
	slot interval.Interval,
	subject, location, meetingLink string,
	status Status,
	externalEventID string,
	createdAt, updatedAt time.Time,
) *Interview {
	return &Interview{
		id:              id,
		candidate:       candidate,
		interviewers:    interviewers,
		slot:            slot,
		subject:         subject,
		location:        location,
		meetingLink:     meetingLink,
		status:          status,
		externalEventID: externalEventID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Reschedule moves the interview to a new slot and optionally updates
// location and meeting link. The caller must have re-checked conflicts
// against the new slot first.
func (i *Interview) Reschedule(slot interval.Interval, location, meetingLink string, now time.Time) error {
	if i.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	i.slot = slot
	i.location = location
	i.meetingLink = meetingLink
	i.updatedAt = now
	return nil
}

func (i *Interview) Cancel(now time.Time) error {
	if i.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	i.status = StatusCancelled
	i.updatedAt = now
	return nil
}

func (i *Interview) AttachExternalEvent(eventID string) {
	i.externalEventID = eventID
}

func (i *Interview) IsActive() bool {
	return i.status == StatusScheduled
}

// Participants returns every identity attached to the interview,
// interviewers first.
func (i *Interview) Participants() []string {
	out := make([]string, 0, len(i.interviewers)+1)
	out = append(out, i.interviewers...)
	out = append(out, i.candidate)
	return out
}

func (i *Interview) ID() uuid.UUID           { return i.id }
func (i *Interview) Candidate() string       { return i.candidate }
func (i *Interview) Interviewers() []string  { return i.interviewers }
func (i *Interview) Slot() interval.Interval { return i.slot }
func (i *Interview) Subject() string         { return i.subject }
func (i *Interview) Location() string        { return i.location }
func (i *Interview) MeetingLink() string     { return i.meetingLink }
func (i *Interview) Status() Status          { return i.status }
func (i *Interview) ExternalEventID() string { return i.externalEventID }
func (i *Interview) CreatedAt() time.Time    { return i.createdAt }
func (i *Interview) UpdatedAt() time.Time    { return i.updatedAt }
