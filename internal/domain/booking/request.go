package booking

import (
	"errors"

	"interview-scheduler/internal/domain/interval"
)

var (
	ErrNoInterviewers  = errors.New("at least one interviewer is required")
	ErrNoCandidate     = errors.New("candidate identity is required")
	ErrInvalidProposed = errors.New("proposed interval is invalid")
)

// Request is the immutable input to one booking attempt. Participant
// identities are opaque contact identifiers; they are the join key
// across every conflict source.
type Request struct {
	Interviewers  []string
	Candidate     string
	Proposed      interval.Interval
	Subject       string
	Location      string
	MeetingLink   string
	ForceOverride bool
}

func (r Request) Validate() error {
	if len(r.Interviewers) == 0 {
		return ErrNoInterviewers
	}
	if r.Candidate == "" {
		return ErrNoCandidate
	}
	if r.Proposed.IsZero() {
		return ErrInvalidProposed
	}
	return nil
}

// Participants returns every identity whose calendar the proposed slot
// must be checked against, interviewers first.
func (r Request) Participants() []string {
	out := make([]string, 0, len(r.Interviewers)+1)
	out = append(out, r.Interviewers...)
	if r.Candidate != "" {
		out = append(out, r.Candidate)
	}
	return out
}
