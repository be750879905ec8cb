package usecase

import (
	"context"
	"time"

	"interview-scheduler/internal/domain/booking"
	"interview-scheduler/internal/domain/interval"

	"github.com/google/uuid"
)

// Collaborator snapshots keep the use cases off the infra row types.

// LeaveRecord is one approved time-off entry from the HR record store.
type LeaveRecord struct {
	Start time.Time
	End   time.Time
}

// BookingRecord is a confirmed interview a participant is already a
// party to.
type BookingRecord struct {
	ID              uuid.UUID
	Start           time.Time
	DurationMinutes int
	SubjectTitle    string
}

// CalendarEvent is one entry from a participant's remote calendar feed.
type CalendarEvent struct {
	ID                string
	Title             string
	Start             time.Time
	End               time.Time
	Transparency      string
	AttendeeResponses map[string]string
}

// Contact is a notification recipient.
type Contact struct {
	Email string
	Name  string
}

// Calendar event transparency and attendee response values, as the
// remote feed reports them.
const (
	TransparencyTransparent = "transparent"

	ResponseDeclined  = "declined"
	ResponseTentative = "tentative"
)

// LeaveStore reads approved time-off from the HR record store.
// Unapproved or pending leave is never returned.
type LeaveStore interface {
	ApprovedLeave(ctx context.Context, participant string) ([]LeaveRecord, error)
}

// BookingStore is the interview booking source of truth.
type BookingStore interface {
	ActiveBookingsFor(ctx context.Context, participant string) ([]BookingRecord, error)
	Create(ctx context.Context, iv *booking.Interview) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Interview, error)
	Update(ctx context.Context, iv *booking.Interview) error
}

// AdminDirectory lists users holding an administrative role.
type AdminDirectory interface {
	Admins(ctx context.Context) ([]Contact, error)
}

// ExternalCalendar queries a participant's remote calendar feed.
// Best-effort: implementations return ErrCalendarNotConfigured style
// errors rather than panicking, and the checker degrades those to
// warnings.
type ExternalCalendar interface {
	ListEvents(ctx context.Context, participant string, window interval.Interval) ([]CalendarEvent, error)
}

// CalendarSync mirrors booked interviews into the outbound calendar
// system. All operations are best-effort; failures are surfaced as
// warnings, never as booking failures.
type CalendarSync interface {
	CreateEvent(ctx context.Context, iv *booking.Interview) (eventID string, err error)
	UpdateEvent(ctx context.Context, eventID string, iv *booking.Interview) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// NotificationTransport delivers a pre-rendered alert. Fire-and-forget
// from the decision engine's perspective.
type NotificationTransport interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
