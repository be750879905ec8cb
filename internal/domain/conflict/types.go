package conflict

import (
	"interview-scheduler/internal/domain/interval"
)

// Source identifies which commitment store a conflict was discovered in.
type Source string

const (
	SourceLeave            Source = "leave"
	SourceInternalBooking  Source = "internal_booking"
	SourceExternalCalendar Source = "external_calendar"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceLeave, SourceInternalBooking, SourceExternalCalendar:
		return true
	default:
		return false
	}
}

type Severity string

const (
	// SeverityHard blocks a booking unless explicitly overridden.
	SeverityHard Severity = "hard"
	// SeveritySoft is advisory and never blocks a booking.
	SeveritySoft Severity = "soft"
)

func (s Severity) String() string {
	return string(s)
}

// Conflict is a commitment that collides with a proposed interview slot.
// It is a transient report artifact, built per conflict-check call and
// never persisted.
type Conflict struct {
	Source       Source
	Title        string
	Interval     interval.Interval
	Participants []string
	Severity     Severity
}

// AttributedTo reports whether the conflict belongs to the given
// participant identity.
func (c Conflict) AttributedTo(participant string) bool {
	for _, p := range c.Participants {
		if p == participant {
			return true
		}
	}
	return false
}
