//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secondInterviewer = "panelist@example.com"

func notifierFixture(admins ...usecase.Contact) (*recordingTransport, usecase.Notifier) {
	transport := &recordingTransport{}
	return transport, usecase.NewNotifier(&stubAdminDirectory{admins: admins}, transport, nil)
}

func mixedConflicts(t *testing.T) []conflict.Conflict {
	t.Helper()
	return []conflict.Conflict{
		{
			Source:       conflict.SourceLeave,
			Title:        "Approved leave",
			Interval:     mustSlot(t, dayAt(tuesday, 10, 0), time.Hour),
			Participants: []string{interviewer},
			Severity:     conflict.SeverityHard,
		},
		{
			Source:       conflict.SourceExternalCalendar,
			Title:        "Maybe lunch",
			Interval:     mustSlot(t, dayAt(tuesday, 10, 0), time.Hour),
			Participants: []string{candidate},
			Severity:     conflict.SeveritySoft,
		},
	}
}

func bctx() usecase.NotificationContext {
	return usecase.NotificationContext{
		Interviewers: []string{interviewer, secondInterviewer},
		Candidate:    candidate,
		Subject:      "Backend engineer screen",
	}
}

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("unforced alerts interviewers with conflicts plus admins", func(t *testing.T) {
		transport, notifier := notifierFixture(usecase.Contact{Email: "admin@example.com"})

		notifier.Notify(ctx, mixedConflicts(t), bctx(), false, "scheduler@example.com")

		recipients := transport.recipients()
		assert.Contains(t, recipients, interviewer)
		assert.Contains(t, recipients, "admin@example.com")
		assert.NotContains(t, recipients, secondInterviewer, "no conflict attributed to them")
		assert.NotContains(t, recipients, candidate, "courtesy notice is forced-only")

		for _, alert := range transport.sent {
			assert.Equal(t, "Scheduling conflict detected: action required", alert.subject)
		}
	})

	t.Run("forced switches the variant and adds the candidate courtesy notice", func(t *testing.T) {
		transport, notifier := notifierFixture(usecase.Contact{Email: "admin@example.com"})

		notifier.Notify(ctx, mixedConflicts(t), bctx(), true, "scheduler@example.com")

		bySubject := map[string][]string{}
		for _, alert := range transport.sent {
			bySubject[alert.subject] = append(bySubject[alert.subject], alert.recipient)
		}

		assert.ElementsMatch(t,
			[]string{interviewer, "admin@example.com"},
			bySubject["Interview scheduled despite conflicts"])
		assert.Equal(t,
			[]string{candidate},
			bySubject["Interview scheduled despite a conflict on your calendar"])
	})

	t.Run("rendered body keeps hard and soft groups separate", func(t *testing.T) {
		transport, notifier := notifierFixture()

		notifier.Notify(ctx, mixedConflicts(t), bctx(), true, "scheduler@example.com")

		require.NotEmpty(t, transport.sent)
		body := transport.sent[0].body

		hardIdx := strings.Index(body, "Must resolve:")
		softIdx := strings.Index(body, "Warnings:")
		require.GreaterOrEqual(t, hardIdx, 0)
		require.GreaterOrEqual(t, softIdx, 0)
		assert.Less(t, hardIdx, softIdx)
		assert.Contains(t, body[hardIdx:softIdx], "Approved leave")
		assert.Contains(t, body[softIdx:], "Maybe lunch")
		assert.Contains(t, body, "Override applied by: scheduler@example.com")
	})

	t.Run("delivery failure for one recipient does not stop the fan-out", func(t *testing.T) {
		transport := &recordingTransport{failFor: map[string]error{interviewer: errors.New("mailbox full")}}
		notifier := usecase.NewNotifier(
			&stubAdminDirectory{admins: []usecase.Contact{{Email: "admin@example.com"}}},
			transport, nil)

		notifier.Notify(ctx, mixedConflicts(t), bctx(), false, "")

		assert.Equal(t, []string{"admin@example.com"}, transport.recipients())
	})

	t.Run("empty conflict set sends nothing", func(t *testing.T) {
		transport, notifier := notifierFixture(usecase.Contact{Email: "admin@example.com"})

		notifier.Notify(ctx, nil, bctx(), false, "")
		assert.Empty(t, transport.sent)
	})

	t.Run("admin directory failure only drops the admin alerts", func(t *testing.T) {
		transport := &recordingTransport{}
		notifier := usecase.NewNotifier(&stubAdminDirectory{err: errors.New("directory down")}, transport, nil)

		notifier.Notify(ctx, mixedConflicts(t), bctx(), false, "")
		assert.Equal(t, []string{interviewer}, transport.recipients())
	})
}
