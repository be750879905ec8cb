package response

import (
	"time"

	"interview-scheduler/internal/domain/booking"

	"github.com/google/uuid"
)

type InterviewResponse struct {
	ID              uuid.UUID    `json:"id"`
	Candidate       string       `json:"candidate"`
	Interviewers    []string     `json:"interviewers"`
	Slot            SlotResponse `json:"slot"`
	Subject         string       `json:"subject,omitempty"`
	Location        string       `json:"location,omitempty"`
	MeetingLink     string       `json:"meeting_link,omitempty"`
	Status          string       `json:"status"`
	ExternalEventID string       `json:"external_event_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type DecisionResponse struct {
	Outcome   string                 `json:"outcome"`
	Report    ConflictReportResponse `json:"report"`
	Interview *InterviewResponse     `json:"interview,omitempty"`
	Warnings  []string               `json:"warnings,omitempty"`
}

func FromInterview(iv *booking.Interview) *InterviewResponse {
	if iv == nil {
		return nil
	}
	return &InterviewResponse{
		ID:              iv.ID(),
		Candidate:       iv.Candidate(),
		Interviewers:    iv.Interviewers(),
		Slot:            FromSlot(iv.Slot()),
		Subject:         iv.Subject(),
		Location:        iv.Location(),
		MeetingLink:     iv.MeetingLink(),
		Status:          iv.Status().String(),
		ExternalEventID: iv.ExternalEventID(),
		CreatedAt:       iv.CreatedAt(),
		UpdatedAt:       iv.UpdatedAt(),
	}
}

func FromDecision(d booking.Decision) DecisionResponse {
	return DecisionResponse{
		Outcome:   d.Outcome.String(),
		Report:    FromReport(d.Report),
		Interview: FromInterview(d.Booking),
		Warnings:  d.Warnings,
	}
}
