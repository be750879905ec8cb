package usecase

import (
	"context"
	"log/slog"
	"time"

	"interview-scheduler/internal/domain/booking"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/infra"
	"interview-scheduler/internal/pkg/clock"
	"interview-scheduler/internal/pkg/errs"
	"interview-scheduler/internal/pkg/metrics"
	"interview-scheduler/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errs.New("interview not found")
	ErrPersistenceFailed = errs.New("failed to persist interview")
)

const warnCalendarSyncFailed = "external calendar sync failed; the booking is confirmed but no calendar event was created"

// ReschedulePatch carries the fields an update may change; nil means
// keep the current value.
type ReschedulePatch struct {
	Start           *time.Time
	DurationMinutes *int
	Location        *string
	MeetingLink     *string
	ForceOverride   bool
}

// Scheduler is the booking decision engine: the only component with
// side effects. Persistence failure is fatal to an attempt; calendar
// sync and notification failures never undo a committed decision.
type Scheduler interface {
	Decide(ctx context.Context, req booking.Request, actingUser string) (booking.Decision, error)
	Reschedule(ctx context.Context, id uuid.UUID, p ReschedulePatch, actingUser string) (booking.Decision, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*booking.Interview, error)
}

type schedulerImpl struct {
	checker  ConflictChecker
	store    BookingStore
	sync     CalendarSync
	notifier Notifier
	clock    clock.Clock
	metrics  *metrics.Manager
}

func NewScheduler(
	checker ConflictChecker,
	store BookingStore,
	calendarSync CalendarSync,
	notifier Notifier,
	clk clock.Clock,
	m *metrics.Manager,
) Scheduler {
	return &schedulerImpl{
		checker:  checker,
		store:    store,
		sync:     calendarSync,
		notifier: notifier,
		clock:    clk,
		metrics:  m,
	}
}

func (s *schedulerImpl) Decide(ctx context.Context, req booking.Request, actingUser string) (booking.Decision, error) {
	if err := req.Validate(); err != nil {
		return booking.Decision{}, err
	}

	report, err := s.checker.CheckConflicts(ctx, req.Participants(), req.Proposed, "")
	if err != nil {
		return booking.Decision{}, err
	}

	hard := report.HardConflicts()
	if len(hard) > 0 && !req.ForceOverride {
		// The report carries conflicts and suggested slots so the
		// caller can re-prompt or explicitly override.
		s.metrics.Decision(booking.OutcomeRejectedPendingConfirmation.String())
		return booking.Decision{
			Outcome: booking.OutcomeRejectedPendingConfirmation,
			Report:  report,
		}, nil
	}

	iv, err := booking.NewInterview(req, s.clock.Now())
	if err != nil {
		return booking.Decision{}, err
	}
	if err := s.store.Create(ctx, iv); err != nil {
		return booking.Decision{}, errs.Wrap(ErrPersistenceFailed, err.Error())
	}

	warnings := s.syncCreate(ctx, iv)

	outcome := booking.OutcomeAccepted
	forced := false
	if len(hard) > 0 {
		outcome = booking.OutcomeAcceptedWithOverride
		forced = true
	}
	s.metrics.Decision(outcome.String())

	if forced || len(report.SoftConflicts()) > 0 {
		s.notifier.Notify(ctx, report.Conflicts, NotificationContext{
			Interviewers: req.Interviewers,
			Candidate:    req.Candidate,
			Proposed:     req.Proposed,
			Subject:      req.Subject,
		}, forced, actingUser)
	}

	return booking.Decision{
		Outcome:  outcome,
		Report:   report,
		Booking:  iv,
		Warnings: warnings,
	}, nil
}

func (s *schedulerImpl) Reschedule(ctx context.Context, id uuid.UUID, p ReschedulePatch, actingUser string) (booking.Decision, error) {
	iv, err := s.findActive(ctx, id)
	if err != nil {
		return booking.Decision{}, err
	}

	newSlot, err := patchedSlot(iv.Slot(), p)
	if err != nil {
		return booking.Decision{}, err
	}

	report, err := s.checker.CheckConflicts(ctx, iv.Participants(), newSlot, iv.ID().String())
	if err != nil {
		return booking.Decision{}, err
	}

	hard := report.HardConflicts()
	if len(hard) > 0 && !p.ForceOverride {
		s.metrics.Decision(booking.OutcomeRejectedPendingConfirmation.String())
		return booking.Decision{
			Outcome: booking.OutcomeRejectedPendingConfirmation,
			Report:  report,
		}, nil
	}

	location := patch.Coalesce(p.Location, iv.Location())
	meetingLink := patch.Coalesce(p.MeetingLink, iv.MeetingLink())
	if err := iv.Reschedule(newSlot, location, meetingLink, s.clock.Now()); err != nil {
		return booking.Decision{}, err
	}
	if err := s.store.Update(ctx, iv); err != nil {
		return booking.Decision{}, errs.Wrap(ErrPersistenceFailed, err.Error())
	}

	warnings := s.syncUpdate(ctx, iv)

	outcome := booking.OutcomeAccepted
	forced := false
	if len(hard) > 0 {
		outcome = booking.OutcomeAcceptedWithOverride
		forced = true
	}
	s.metrics.Decision(outcome.String())

	if forced || len(report.SoftConflicts()) > 0 {
		s.notifier.Notify(ctx, report.Conflicts, NotificationContext{
			Interviewers: iv.Interviewers(),
			Candidate:    iv.Candidate(),
			Proposed:     newSlot,
			Subject:      iv.Subject(),
		}, forced, actingUser)
	}

	return booking.Decision{
		Outcome:  outcome,
		Report:   report,
		Booking:  iv,
		Warnings: warnings,
	}, nil
}

// Cancel tears down the booking record and, independently of any
// conflict checking, deletes the synced external event best-effort.
func (s *schedulerImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	iv, err := s.findActive(ctx, id)
	if err != nil {
		return err
	}
	if err := iv.Cancel(s.clock.Now()); err != nil {
		return err
	}
	if err := s.store.Update(ctx, iv); err != nil {
		return errs.Wrap(ErrPersistenceFailed, err.Error())
	}

	if eventID := iv.ExternalEventID(); eventID != "" {
		if err := s.sync.DeleteEvent(ctx, eventID); err != nil {
			slog.Warn("failed to delete external calendar event",
				"interview_id", iv.ID().String(),
				"event_id", eventID,
				"error", err.Error())
			s.metrics.CalendarSyncFailed()
		}
	}
	return nil
}

func (s *schedulerImpl) Get(ctx context.Context, id uuid.UUID) (*booking.Interview, error) {
	iv, err := s.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find interview")
	}
	return iv, nil
}

func (s *schedulerImpl) findActive(ctx context.Context, id uuid.UUID) (*booking.Interview, error) {
	iv, err := s.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find interview")
	}
	if !iv.IsActive() {
		return nil, booking.ErrAlreadyCancelled
	}
	return iv, nil
}

// syncCreate mirrors the committed booking into the external calendar.
// Best-effort: the booking record is the source of truth, so a sync
// failure is logged and surfaced as a warning, never rolled back.
func (s *schedulerImpl) syncCreate(ctx context.Context, iv *booking.Interview) []string {
	eventID, err := s.sync.CreateEvent(ctx, iv)
	if err != nil {
		slog.Warn("failed to create external calendar event",
			"interview_id", iv.ID().String(),
			"error", err.Error())
		s.metrics.CalendarSyncFailed()
		return []string{warnCalendarSyncFailed}
	}

	iv.AttachExternalEvent(eventID)
	if err := s.store.Update(ctx, iv); err != nil {
		// The event exists remotely; losing the link is recoverable
		// and must not fail the committed booking.
		slog.Warn("failed to record external event id",
			"interview_id", iv.ID().String(),
			"event_id", eventID,
			"error", err.Error())
	}
	return nil
}

func (s *schedulerImpl) syncUpdate(ctx context.Context, iv *booking.Interview) []string {
	if iv.ExternalEventID() == "" {
		return s.syncCreate(ctx, iv)
	}
	if err := s.sync.UpdateEvent(ctx, iv.ExternalEventID(), iv); err != nil {
		slog.Warn("failed to update external calendar event",
			"interview_id", iv.ID().String(),
			"event_id", iv.ExternalEventID(),
			"error", err.Error())
		s.metrics.CalendarSyncFailed()
		return []string{warnCalendarSyncFailed}
	}
	return nil
}

func patchedSlot(current interval.Interval, p ReschedulePatch) (interval.Interval, error) {
	start := patch.Coalesce(p.Start, current.Start())
	duration := current.Duration()
	if p.DurationMinutes != nil {
		duration = time.Duration(*p.DurationMinutes) * time.Minute
	}
	return interval.FromStartDuration(start, duration)
}
