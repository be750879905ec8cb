package booking

import "interview-scheduler/internal/domain/conflict"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled:
		return true
	default:
		return false
	}
}

// Outcome is the decision reached for a single booking attempt.
type Outcome string

const (
	OutcomeAccepted                    Outcome = "accepted"
	OutcomeRejectedPendingConfirmation Outcome = "rejected_pending_confirmation"
	OutcomeAcceptedWithOverride        Outcome = "accepted_with_override"
)

func (o Outcome) String() string {
	return string(o)
}

// Decision carries the outcome of one booking attempt together with the
// conflict report that produced it. Created synchronously per attempt
// and never stored.
type Decision struct {
	Outcome  Outcome
	Report   conflict.Report
	Booking  *Interview
	Warnings []string
}

func (d Decision) Booked() bool {
	return d.Outcome == OutcomeAccepted || d.Outcome == OutcomeAcceptedWithOverride
}
