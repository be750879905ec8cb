package response

import (
	"time"

	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ConflictItemResponse struct {
	Source       string       `json:"source"`
	Title        string       `json:"title"`
	Slot         SlotResponse `json:"slot"`
	Participants []string     `json:"participants"`
	Severity     string       `json:"severity"`
}

type ConflictReportResponse struct {
	HasConflicts   bool                   `json:"has_conflicts"`
	Conflicts      []ConflictItemResponse `json:"conflicts"`
	Warnings       []string               `json:"warnings"`
	SuggestedSlots []SlotResponse         `json:"suggested_slots"`
}

func FromSlot(iv interval.Interval) SlotResponse {
	return SlotResponse{Start: iv.Start(), End: iv.End()}
}

func FromConflict(c conflict.Conflict) ConflictItemResponse {
	return ConflictItemResponse{
		Source:       c.Source.String(),
		Title:        c.Title,
		Slot:         FromSlot(c.Interval),
		Participants: c.Participants,
		Severity:     c.Severity.String(),
	}
}

func FromReport(r conflict.Report) ConflictReportResponse {
	resp := ConflictReportResponse{
		HasConflicts:   r.HasConflicts,
		Conflicts:      make([]ConflictItemResponse, len(r.Conflicts)),
		Warnings:       r.Warnings,
		SuggestedSlots: make([]SlotResponse, len(r.SuggestedSlots)),
	}
	for i, c := range r.Conflicts {
		resp.Conflicts[i] = FromConflict(c)
	}
	for i, s := range r.SuggestedSlots {
		resp.SuggestedSlots[i] = FromSlot(s)
	}
	return resp
}
