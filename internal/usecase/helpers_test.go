//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-scheduler/internal/domain/booking"
	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/infra"
	"interview-scheduler/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start time.Time, d time.Duration) interval.Interval {
	t.Helper()
	iv, err := interval.FromStartDuration(start, d)
	require.NoError(t, err)
	return iv
}

// Collaborator stubs. Each keeps per-participant fixtures plus an
// optional forced error.

type stubLeaveStore struct {
	records map[string][]usecase.LeaveRecord
	err     error
}

func (s *stubLeaveStore) ApprovedLeave(_ context.Context, participant string) ([]usecase.LeaveRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[participant], nil
}

type stubBookingStore struct {
	records map[string][]usecase.BookingRecord
	err     error

	byID      map[uuid.UUID]*booking.Interview
	createErr error
	findErr   error
	updateErr error
	created   []*booking.Interview
	updated   []*booking.Interview
}

func (s *stubBookingStore) ActiveBookingsFor(_ context.Context, participant string) ([]usecase.BookingRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[participant], nil
}

func (s *stubBookingStore) Create(_ context.Context, iv *booking.Interview) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, iv)
	if s.byID == nil {
		s.byID = make(map[uuid.UUID]*booking.Interview)
	}
	s.byID[iv.ID()] = iv
	return nil
}

// FindByID fails the way the pgx-backed store does: a kinded
// repository error, never a usecase sentinel.
func (s *stubBookingStore) FindByID(_ context.Context, id uuid.UUID) (*booking.Interview, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	iv, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("interview not found", errors.New("no rows in result set"), infra.KindNotFound)
	}
	return iv, nil
}

func (s *stubBookingStore) Update(_ context.Context, iv *booking.Interview) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, iv)
	return nil
}

type stubExternalCalendar struct {
	events map[string][]usecase.CalendarEvent
	err    error
}

func (s *stubExternalCalendar) ListEvents(_ context.Context, participant string, _ interval.Interval) ([]usecase.CalendarEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.events[participant], nil
}

type stubAdminDirectory struct {
	admins []usecase.Contact
	err    error
}

func (s *stubAdminDirectory) Admins(_ context.Context) ([]usecase.Contact, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admins, nil
}

type sentAlert struct {
	recipient string
	subject   string
	body      string
}

type recordingTransport struct {
	sent    []sentAlert
	failFor map[string]error
}

func (r *recordingTransport) Send(_ context.Context, recipient, subject, body string) error {
	if err, ok := r.failFor[recipient]; ok {
		return err
	}
	r.sent = append(r.sent, sentAlert{recipient: recipient, subject: subject, body: body})
	return nil
}

func (r *recordingTransport) recipients() []string {
	out := make([]string, 0, len(r.sent))
	for _, a := range r.sent {
		out = append(out, a.recipient)
	}
	return out
}

type recordingSync struct {
	createCalls int
	updateCalls int
	deleteCalls int
	deletedIDs  []string
	createErr   error
	updateErr   error
	deleteErr   error
	nextEventID string
}

func (r *recordingSync) CreateEvent(_ context.Context, _ *booking.Interview) (string, error) {
	r.createCalls++
	if r.createErr != nil {
		return "", r.createErr
	}
	if r.nextEventID == "" {
		return "evt-1", nil
	}
	return r.nextEventID, nil
}

func (r *recordingSync) UpdateEvent(_ context.Context, _ string, _ *booking.Interview) error {
	r.updateCalls++
	return r.updateErr
}

func (r *recordingSync) DeleteEvent(_ context.Context, eventID string) error {
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedIDs = append(r.deletedIDs, eventID)
	return nil
}

type notifyCall struct {
	conflicts  []conflict.Conflict
	bctx       usecase.NotificationContext
	forced     bool
	actingUser string
}

type recordingNotifier struct {
	calls []notifyCall
}

func (r *recordingNotifier) Notify(_ context.Context, conflicts []conflict.Conflict, bctx usecase.NotificationContext, forced bool, actingUser string) {
	r.calls = append(r.calls, notifyCall{
		conflicts:  conflicts,
		bctx:       bctx,
		forced:     forced,
		actingUser: actingUser,
	})
}

// stubChecker returns a canned report without touching any source.
type stubChecker struct {
	report conflict.Report
	err    error
	calls  []stubCheckCall
}

type stubCheckCall struct {
	participants []string
	proposed     interval.Interval
	excludeID    string
}

func (s *stubChecker) CheckConflicts(_ context.Context, participants []string, proposed interval.Interval, excludeID string) (conflict.Report, error) {
	s.calls = append(s.calls, stubCheckCall{participants: participants, proposed: proposed, excludeID: excludeID})
	if s.err != nil {
		return conflict.Report{}, s.err
	}
	return s.report, nil
}

func (s *stubChecker) FindAvailableSlots(_ context.Context, _ []string, _ time.Time, _ int) ([]interval.Interval, error) {
	return nil, nil
}

func newChecker(leave usecase.LeaveStore, bookings usecase.BookingStore, external usecase.ExternalCalendar, cfg usecase.CheckerConfig) usecase.ConflictChecker {
	return usecase.NewConflictChecker(
		usecase.NewLeaveSource(leave),
		usecase.NewBookingSource(bookings),
		usecase.NewExternalSource(external),
		cfg,
		nil,
	)
}
