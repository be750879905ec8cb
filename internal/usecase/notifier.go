package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/pkg/metrics"
)

// Alert subject lines. The variant depends on whether the booking went
// through despite hard conflicts.
const (
	subjectActionRequired = "Scheduling conflict detected: action required"
	subjectForcedOverride = "Interview scheduled despite conflicts"
	subjectCourtesyNotice = "Interview scheduled despite a conflict on your calendar"

	alertTimeFormat = "Mon, 02 Jan 2006 15:04"
)

// NotificationContext is the booking the alerts are about.
type NotificationContext struct {
	Interviewers []string
	Candidate    string
	Proposed     interval.Interval
	Subject      string
}

// Notifier fans conflict alerts out to the affected parties. It never
// reports failure to its caller: delivery problems are logged and
// counted, and booking success does not depend on them.
type Notifier interface {
	Notify(ctx context.Context, conflicts []conflict.Conflict, bctx NotificationContext, forced bool, actingUser string)
}

type notifierImpl struct {
	admins    AdminDirectory
	transport NotificationTransport
	metrics   *metrics.Manager
}

func NewNotifier(admins AdminDirectory, transport NotificationTransport, m *metrics.Manager) Notifier {
	return &notifierImpl{
		admins:    admins,
		transport: transport,
		metrics:   m,
	}
}

func (n *notifierImpl) Notify(ctx context.Context, conflicts []conflict.Conflict, bctx NotificationContext, forced bool, actingUser string) {
	if len(conflicts) == 0 {
		return
	}

	subject := subjectActionRequired
	if forced {
		subject = subjectForcedOverride
	}
	body := renderConflictSummary(conflicts, bctx, forced, actingUser)

	// Direct parties to the booking with at least one conflict of
	// their own.
	for _, interviewer := range bctx.Interviewers {
		if anyAttributedTo(conflicts, interviewer) {
			n.send(ctx, interviewer, subject, body)
		}
	}

	// Administrators always get the summary, whoever the conflict
	// belongs to.
	admins, err := n.admins.Admins(ctx)
	if err != nil {
		slog.Warn("failed to resolve administrative recipients", "error", err.Error())
	}
	for _, admin := range admins {
		n.send(ctx, admin.Email, subject, body)
	}

	// On a forced booking the candidate gets a courtesy notice when
	// the meeting proceeded despite a conflict on their own calendar.
	if forced && bctx.Candidate != "" && anyAttributedTo(conflicts, bctx.Candidate) {
		n.send(ctx, bctx.Candidate, subjectCourtesyNotice, body)
	}
}

func (n *notifierImpl) send(ctx context.Context, recipient, subject, body string) {
	if err := n.transport.Send(ctx, recipient, subject, body); err != nil {
		slog.Warn("failed to deliver conflict alert",
			"recipient", recipient,
			"error", err.Error())
		n.metrics.NotificationFailed()
		return
	}
	n.metrics.NotificationSent()
}

func anyAttributedTo(conflicts []conflict.Conflict, participant string) bool {
	for _, c := range conflicts {
		if c.AttributedTo(participant) {
			return true
		}
	}
	return false
}

// renderConflictSummary produces the alert body. Hard and soft
// conflicts stay in separate groups; the severity split is never
// flattened.
func renderConflictSummary(conflicts []conflict.Conflict, bctx NotificationContext, forced bool, actingUser string) string {
	hard, soft := conflict.SplitBySeverity(conflicts)

	var b strings.Builder
	if bctx.Subject != "" {
		fmt.Fprintf(&b, "Interview: %s\n", bctx.Subject)
	}
	fmt.Fprintf(&b, "Proposed time: %s to %s\n",
		bctx.Proposed.Start().Format(alertTimeFormat),
		bctx.Proposed.End().Format(alertTimeFormat))
	if forced {
		b.WriteString("The booking was confirmed despite the conflicts below.\n")
		if actingUser != "" {
			fmt.Fprintf(&b, "Override applied by: %s\n", actingUser)
		}
	} else {
		b.WriteString("The proposed time collides with existing commitments and needs attention.\n")
	}

	if len(hard) > 0 {
		b.WriteString("\nMust resolve:\n")
		writeConflictLines(&b, hard)
	}
	if len(soft) > 0 {
		b.WriteString("\nWarnings:\n")
		writeConflictLines(&b, soft)
	}
	return b.String()
}

func writeConflictLines(b *strings.Builder, conflicts []conflict.Conflict) {
	for _, c := range conflicts {
		fmt.Fprintf(b, "- %s: %s (%s to %s) affecting %s\n",
			c.Source.String(),
			c.Title,
			c.Interval.Start().Format(alertTimeFormat),
			c.Interval.End().Format(alertTimeFormat),
			strings.Join(c.Participants, ", "))
	}
}

